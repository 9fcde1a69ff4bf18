package csvcut

import (
	"bytes"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func FuzzCutterConsistency(f *testing.F) {
	seeds := []struct {
		input string
		col   uint16
	}{
		{"", 0},
		{"a,b,c\n", 2},
		{"a,\"b,b\",c\n", 1},
		{"a,\"b\nc\",d\n", 0},
		{"\"unterminated\n", 0},
		{"a\"b,c\n", 1},
		{"one\r\ntwo\r\n", 0},
		{"x,\"a\"\"b\",y\n", 1},
	}
	for _, seed := range seeds {
		f.Add(seed.input, seed.col)
	}

	f.Fuzz(func(t *testing.T, input string, col uint16) {
		if len(input) > 1<<12 {
			t.Skip()
		}
		sel, err := NewSelection(int(col) % MaxColumns)
		require.NoError(t, err)

		whole, errWhole := cutWith(input, sel)
		bytewise, errBytewise := cutWith(input, sel, WithBufferSize(1))
		require.NoError(t, errWhole, "input=%q", truncateForMessage(input))
		require.NoError(t, errBytewise, "input=%q", truncateForMessage(input))
		require.Equal(t, whole, bytewise, "chunking changed output for input=%q", truncateForMessage(input))

		// Keeping every column reproduces the input.
		all := &Selection{}
		for i := 0; i <= strings.Count(input, ","); i++ {
			all.set(i)
		}
		same, err := cutWith(input, all)
		require.NoError(t, err)
		require.Equal(t, input, same, "keeping all columns changed the input")
	})
}

func cutWith(input string, sel *Selection, opts ...Option) (string, error) {
	var out bytes.Buffer
	err := NewCutter(',', sel, opts...).Cut(iotest.HalfReader(strings.NewReader(input)), &out)
	return out.String(), err
}

func truncateForMessage(s string) string {
	const limit = 128
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
