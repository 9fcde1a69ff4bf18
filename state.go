package csvcut

// Quote is the only quoting byte the automaton recognises.
const Quote = '"'

// State is the quoting state of the automaton.
type State uint8

const (
	// StateDefault scans unquoted data, where delimiters and newlines are structural.
	StateDefault State = iota
	// StateQuoted is inside a quoted field; every byte except a quote is data.
	StateQuoted
	// StateAfterQuote follows a quote seen inside a quoted field. A second quote
	// makes the pair an escaped literal quote and re-enters StateQuoted.
	StateAfterQuote
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateQuoted:
		return "quoted"
	case StateAfterQuote:
		return "after_quote"
	default:
		return "unknown"
	}
}

// Action is the change a transition applies to the current column index.
type Action uint8

const (
	// ActionNone leaves the column index unchanged.
	ActionNone Action = iota
	// ActionNextColumn advances to the next column: c was a structural delimiter.
	ActionNextColumn
	// ActionNewRow resets the column index to zero: c was a structural newline.
	ActionNewRow
)

// Next returns the state following s after reading c, and the column action c
// triggers. It has no side effects. ErrUnknownState is returned for a State
// outside the three defined values.
func (s State) Next(c, delim byte) (State, Action, error) {
	switch s {
	case StateDefault:
		switch c {
		case Quote:
			return StateQuoted, ActionNone, nil
		case '\n':
			return StateDefault, ActionNewRow, nil
		case delim:
			return StateDefault, ActionNextColumn, nil
		}
		return StateDefault, ActionNone, nil
	case StateQuoted:
		if c == Quote {
			return StateAfterQuote, ActionNone, nil
		}
		return StateQuoted, ActionNone, nil
	case StateAfterQuote:
		// Anything but a second quote ends the quoted section, including bytes
		// that RFC 4180 would reject after a closing quote.
		switch c {
		case Quote:
			return StateQuoted, ActionNone, nil
		case '\n':
			return StateDefault, ActionNewRow, nil
		case delim:
			return StateDefault, ActionNextColumn, nil
		}
		return StateDefault, ActionNone, nil
	}
	return s, ActionNone, ErrUnknownState
}
