package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gigurra/dit/cmd/common/render"
)

func TestUnits(t *testing.T) {
	timing := render.DefaultTiming()
	tests := []struct {
		symbols  string
		expected int
	}{
		{". ", 4},   // E: dot, gap, delimiter
		{"- ", 6},   // T
		{"... ", 8}, // S
		{"/ ", 5},   // word separator
		{"", 0},
	}
	for _, tt := range tests {
		if got := Units(tt.symbols, timing); got != tt.expected {
			t.Errorf("Units(%q) = %d, want %d", tt.symbols, got, tt.expected)
		}
	}
}

func TestRun_Formats(t *testing.T) {
	for _, format := range []string{"table", "markdown", "csv"} {
		t.Run(format, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := Run(&Params{Format: format}, &stdout); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			out := stdout.String()
			for _, want := range []string{".-", "-----", "space", "/"} {
				if !strings.Contains(out, want) {
					t.Errorf("Output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	var stdout bytes.Buffer
	if err := Run(&Params{Format: "xml"}, &stdout); err == nil {
		t.Error("Expected error for unknown format")
	}
}
