package table

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/morse"
	"github.com/gigurra/dit/cmd/common/render"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type Params struct {
	Format string `short:"f" optional:"true" help:"Output format: table, markdown or csv." default:"table"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "table",
		Short:       "Show the Morse alphabet",
		Long:        "Print every supported character with its Morse code and its length in units, including the gap after it.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "table: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdout io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Char", "Code", "Units"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Units", Align: text.AlignRight},
	})

	timing := render.DefaultTiming()
	for _, e := range morse.Entries() {
		t.AppendRow(table.Row{charLabel(e.Char), e.Code, Units(e.Code+morse.Delimiter, timing)})
	}

	switch params.Format {
	case "table", "":
		t.Render()
	case "markdown":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	default:
		return fmt.Errorf("unknown format %q", params.Format)
	}
	return nil
}

func charLabel(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}

// Units is how long symbols take to play under timing, tones and gaps
// included.
func Units(symbols string, timing render.Timing) int {
	total := 0
	for _, r := range symbols {
		a := timing.Action(render.Classify(r))
		total += a.ToneUnits + a.PauseUnits
	}
	return total
}
