package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gigurra/dit/cmd/common/morse"
)

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		params   Params
		expected string
		wantErr  bool
	}{
		{
			name:     "Args",
			params:   Params{Text: []string{"sos"}},
			expected: "... --- ... \n",
		},
		{
			name:     "Args joined with spaces",
			params:   Params{Text: []string{"hi", "there"}},
			expected: ".... .. / - .... . .-. . \n",
		},
		{
			name:     "Stdin lines",
			input:    "e\nt\n",
			expected: ". \n- \n",
		},
		{
			name:    "Unsupported character",
			params:  Params{Text: []string{"ok?"}},
			wantErr: true,
		},
		{
			name:    "Unsupported character on later line",
			input:   "fine\nnot fine!\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := Run(&tt.params, strings.NewReader(tt.input), &stdout)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, morse.ErrUnsupportedCharacter) {
					t.Errorf("Run() error = %v, want ErrUnsupportedCharacter", err)
				}
				if stdout.Len() != 0 {
					t.Errorf("Expected no partial output, got %q", stdout.String())
				}
				return
			}
			if got := stdout.String(); got != tt.expected {
				t.Errorf("Run() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEncodeCommand_Copy(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	var stdout bytes.Buffer
	if err := Run(&Params{Copy: true}, strings.NewReader("e\nt\n"), &stdout); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if copied != ". \n- " {
		t.Errorf("Copied %q", copied)
	}
}
