package common

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
)

var clipboardReadAll = clipboard.ReadAll

// Messages returns what a command should work on: the joined args when
// present, else the clipboard when fromClipboard is set, else one message per
// line of stdin.
func Messages(args []string, fromClipboard bool, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	if fromClipboard {
		text, err := clipboardReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read from clipboard: %w", err)
		}
		return splitLines(text), nil
	}

	var messages []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		messages = append(messages, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return messages, nil
}

func splitLines(text string) []string {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
