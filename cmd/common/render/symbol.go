package render

// Symbol is one classified character of a Morse symbol stream.
type Symbol int

const (
	SymbolUnknown Symbol = iota
	SymbolDot
	SymbolDash
	SymbolWordGap
	SymbolCharGap
)

func (s Symbol) String() string {
	switch s {
	case SymbolDot:
		return "dot"
	case SymbolDash:
		return "dash"
	case SymbolWordGap:
		return "word-gap"
	case SymbolCharGap:
		return "char-gap"
	default:
		return "unknown"
	}
}

// Classify maps a stream character to its symbol.
func Classify(r rune) Symbol {
	switch r {
	case '.':
		return SymbolDot
	case '-':
		return SymbolDash
	case '/':
		return SymbolWordGap
	case ' ':
		return SymbolCharGap
	default:
		return SymbolUnknown
	}
}

// Timing holds the length of every symbol in units.
type Timing struct {
	Dot        int `json:"dot"`
	Dash       int `json:"dash"`
	ElementGap int `json:"element_gap"`
	CharGap    int `json:"char_gap"`
	WordGap    int `json:"word_gap"`
}

// DefaultTiming: a dot is one unit, a dash three, each followed by a one unit
// gap. A delimiter adds two units and a word separator three.
func DefaultTiming() Timing {
	return Timing{
		Dot:        1,
		Dash:       3,
		ElementGap: 1,
		CharGap:    2,
		WordGap:    3,
	}
}

// Action is what a symbol does: sound for ToneUnits, then stay silent for
// PauseUnits.
type Action struct {
	ToneUnits  int
	PauseUnits int
}

// Action returns the dispatch for s under t. Unknown symbols do nothing.
func (t Timing) Action(s Symbol) Action {
	switch s {
	case SymbolDot:
		return Action{ToneUnits: t.Dot, PauseUnits: t.ElementGap}
	case SymbolDash:
		return Action{ToneUnits: t.Dash, PauseUnits: t.ElementGap}
	case SymbolWordGap:
		return Action{PauseUnits: t.WordGap}
	case SymbolCharGap:
		return Action{PauseUnits: t.CharGap}
	default:
		return Action{}
	}
}
