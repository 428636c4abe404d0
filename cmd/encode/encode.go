package encode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/morse"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

type Params struct {
	Text []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads one message per line from stdin."`
	Clip bool     `short:"c" help:"Read the text from the clipboard." default:"false"`
	Copy bool     `short:"y" help:"Also copy the Morse code to the clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "encode",
		Short:       "Encode text as Morse code",
		Long:        "Convert text to Morse code. Letters A-Z, digits and spaces are supported; a space becomes '/'.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "encode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout io.Writer) error {
	messages, err := common.Messages(params.Text, params.Clip, stdin)
	if err != nil {
		return err
	}

	var lines []string
	for _, msg := range messages {
		code, err := morse.Encode(msg)
		if err != nil {
			return err
		}
		lines = append(lines, code)
	}

	for _, line := range lines {
		if err := common.PrintSymbols(stdout, line); err != nil {
			return err
		}
	}

	if params.Copy {
		if err := clipboardWriteAll(strings.Join(lines, "\n")); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}
	}
	return nil
}
