package configure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/config"
	"github.com/spf13/cobra"
)

type Params struct {
	Init  bool `short:"i" help:"Write the default config file." default:"false"`
	Force bool `help:"With --init, overwrite an existing config file." default:"false"`
	Path  bool `short:"p" help:"Only print the config file path." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "config",
		Short: "Show or initialize the config file",
		Long: `Print the effective configuration as JSON.

The file lives at $XDG_CONFIG_HOME/dit/config.json (~/.config/dit/config.json),
or wherever $DIT_CONFIG points.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "config: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdout io.Writer) error {
	path := config.ConfigPath()

	if params.Path {
		fmt.Fprintln(stdout, path)
		return nil
	}

	if params.Init {
		if _, err := os.Stat(path); err == nil && !params.Force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Save(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, err := cfg.Playback.RenderConfig(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
