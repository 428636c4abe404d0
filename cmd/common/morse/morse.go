// Package morse translates text to and from Morse symbol streams.
package morse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

const (
	// Delimiter follows every character code in an encoded stream.
	Delimiter = " "
	// WordSeparator is the code emitted for a space in the input.
	WordSeparator = "/"
)

var (
	ErrUnsupportedCharacter = errors.New("character not supported")
	ErrUnknownCode          = errors.New("unknown morse code")
)

// UnsupportedCharacterError reports the first input rune that has no code.
type UnsupportedCharacterError struct {
	Char     rune
	Position int
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrUnsupportedCharacter, e.Char, e.Position)
}

func (e *UnsupportedCharacterError) Unwrap() error {
	return ErrUnsupportedCharacter
}

var toMorse = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	' ': WordSeparator,
}

// The table is injective, so inverting it loses nothing.
var fromMorse = lo.Invert(toMorse)

// Entry is one row of the alphabet.
type Entry struct {
	Char rune
	Code string
}

// Lookup returns the code for r, case-insensitively.
func Lookup(r rune) (string, bool) {
	code, ok := toMorse[unicode.ToUpper(r)]
	return code, ok
}

// Entries lists the alphabet: letters, then digits, then the word separator.
func Entries() []Entry {
	var chars []rune
	for r := 'A'; r <= 'Z'; r++ {
		chars = append(chars, r)
	}
	for r := '0'; r <= '9'; r++ {
		chars = append(chars, r)
	}
	chars = append(chars, ' ')

	return lo.Map(chars, func(r rune, _ int) Entry {
		return Entry{Char: r, Code: toMorse[r]}
	})
}

// Encode converts message into a symbol stream where every character code is
// followed by Delimiter. The whole call fails on the first rune without a
// code; no partial output is returned.
func Encode(message string) (string, error) {
	var sb strings.Builder
	for i, r := range []rune(message) {
		code, ok := Lookup(r)
		if !ok {
			return "", &UnsupportedCharacterError{Char: r, Position: i}
		}
		sb.WriteString(code)
		sb.WriteString(Delimiter)
	}
	return sb.String(), nil
}

// Decode is the inverse table lookup of Encode. Codes are separated by any
// whitespace and WordSeparator decodes to a space.
func Decode(symbols string) (string, error) {
	var sb strings.Builder
	for _, code := range strings.Fields(symbols) {
		r, ok := fromMorse[code]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownCode, code)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
