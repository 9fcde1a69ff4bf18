package csvcut

import "errors"

// Config is the validated configuration of a cut: the delimiter byte and the
// columns to keep. It is built once before streaming and never changes.
type Config struct {
	Delimiter byte
	Columns   *Selection
}

// ParseArgs builds a Config from the positional arguments of the csvcut
// command, the program name excluded: a delimiter token, of which only the
// first byte is used, followed by one or more column indices.
func ParseArgs(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, newError(KindMissingArgs, "usage: csvcut <delimiter> <column>...", ErrMissingArgs)
	}
	if args[0] == "" {
		return nil, newError(KindDelimiter, "invalid delimiter", &ArgError{Position: 1, Arg: args[0], Err: ErrEmptyDelimiter})
	}

	sel, err := ParseColumns(args[1:])
	if err != nil {
		var ae *ArgError
		if errors.As(err, &ae) {
			// Report the position within the full argument list.
			ae.Position++
		}
		return nil, newError(KindColumn, "invalid column", err)
	}

	return &Config{Delimiter: args[0][0], Columns: sel}, nil
}

// NewCutter returns a Cutter for c.
func (c *Config) NewCutter(opts ...Option) *Cutter {
	return NewCutter(c.Delimiter, c.Columns, opts...)
}
