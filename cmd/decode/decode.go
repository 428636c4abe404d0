package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/morse"
	"github.com/spf13/cobra"
)

type Params struct {
	Code []string `pos:"true" optional:"true" help:"Morse code to decode, codes separated by spaces and words by '/'. If none provided, reads from stdin."`
	Clip bool     `short:"c" help:"Read the code from the clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "decode",
		Short:       "Decode Morse code to text",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "decode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout io.Writer) error {
	messages, err := common.Messages(params.Code, params.Clip, stdin)
	if err != nil {
		return err
	}
	for _, msg := range messages {
		text, err := morse.Decode(msg)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, text)
	}
	return nil
}
