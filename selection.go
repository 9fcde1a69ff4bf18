package csvcut

import (
	"errors"
	"math/bits"
	"strconv"
)

// MaxColumns bounds the column indices a Selection can hold. Input columns at
// or beyond it are never written.
const MaxColumns = 128 * 1024

const wordBits = 64

// Selection is a fixed-capacity set of 0-based column indices. The zero value
// is an empty set ready to use.
type Selection struct {
	words [MaxColumns / wordBits]uint64
	first int
	count int
}

// NewSelection returns a Selection holding cols.
func NewSelection(cols ...int) (*Selection, error) {
	s := &Selection{}
	for _, col := range cols {
		if err := s.Add(col); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ParseColumns builds a Selection from decimal column arguments such as the
// trailing positional arguments of the csvcut command. Failures are reported
// as *ArgError with Position counted from 1 within args.
func ParseColumns(args []string) (*Selection, error) {
	s := &Selection{}
	for i, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, &ArgError{Position: i + 1, Arg: arg, Err: ErrColumnRange}
			}
			return nil, &ArgError{Position: i + 1, Arg: arg, Err: ErrColumnSyntax}
		}
		if n >= MaxColumns {
			return nil, &ArgError{Position: i + 1, Arg: arg, Err: ErrColumnRange}
		}
		s.set(int(n))
	}
	return s, nil
}

// Add marks col as selected. It returns ErrColumnRange when col is negative or
// not below MaxColumns.
func (s *Selection) Add(col int) error {
	if col < 0 || col >= MaxColumns {
		return ErrColumnRange
	}
	s.set(col)
	return nil
}

func (s *Selection) set(col int) {
	w, b := col/wordBits, uint(col%wordBits)
	if s.words[w]&(1<<b) != 0 {
		return
	}
	s.words[w] |= 1 << b
	if s.count == 0 || col < s.first {
		s.first = col
	}
	s.count++
}

// Has reports whether col is selected. Indices outside [0, MaxColumns) are
// never selected.
func (s *Selection) Has(col int) bool {
	if col < 0 || col >= MaxColumns {
		return false
	}
	return s.words[col/wordBits]&(1<<uint(col%wordBits)) != 0
}

// First returns the smallest selected column; ok is false for an empty set.
func (s *Selection) First() (col int, ok bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.first, true
}

// Len returns the number of selected columns.
func (s *Selection) Len() int {
	return s.count
}

// Columns returns the selected columns in ascending order.
func (s *Selection) Columns() []int {
	cols := make([]int, 0, s.count)
	for w, word := range s.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			cols = append(cols, w*wordBits+b)
			word &= word - 1
		}
	}
	return cols
}
