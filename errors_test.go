package csvcut

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodesAreDistinct(t *testing.T) {
	t.Parallel()

	kinds := []Kind{KindInternal, KindMissingArgs, KindDelimiter, KindColumn, KindWrite, KindRead}
	seen := map[int]Kind{ExitOK: -1}
	for _, k := range kinds {
		code := k.ExitCode()
		prev, dup := seen[code]
		assert.False(t, dup, "%v shares exit code %d with %v", k, code, prev)
		seen[code] = k
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "write", err: newError(KindWrite, "w", io.ErrShortWrite), want: ExitWrite},
		{name: "wrappedRead", err: fmt.Errorf("run: %w", newError(KindRead, "r", io.ErrUnexpectedEOF)), want: ExitRead},
		{name: "bareSentinel", err: ErrColumnRange, want: ExitColumn},
		{name: "argError", err: &ArgError{Position: 1, Err: ErrEmptyDelimiter}, want: ExitDelimiter},
		{name: "foreign", err: errors.New("other"), want: ExitInternal},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	err := newError(KindColumn, "invalid column", &ArgError{Position: 2, Arg: "x", Err: ErrColumnSyntax})
	assert.Equal(t, `csvcut: invalid column: argument 2 ("x"): csvcut: the column argument is not an unsigned integer`, err.Error())
	assert.Equal(t, "csvcut: bare", newError(KindInternal, "bare", nil).Error())
	assert.Equal(t, "column", KindColumn.String())

	var nilErr *Error
	assert.Empty(t, nilErr.Error())
	assert.NoError(t, nilErr.Unwrap())
}
