package csvcut

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// BufferSize is the default size of the input and output chunk buffers.
const BufferSize = 16 << 10 // 16384 bytes

// Recorder receives per-chunk counters from a Cutter. metrics.Collector
// implements it on top of Prometheus counters.
type Recorder interface {
	RecordChunk(read, written, rows int)
}

// Option configures a Cutter.
type Option func(*Cutter)

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Cutter) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRecorder reports the bytes read, bytes written and rows completed for every input chunk to r.
func WithRecorder(r Recorder) Option {
	return func(c *Cutter) {
		c.stats = r
	}
}

// WithBufferSize overrides BufferSize for both chunk buffers. Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(c *Cutter) {
		if n > 0 {
			c.bufSize = n
		}
	}
}

// Cutter streams CSV data and keeps only the selected columns. It owns the
// whole parser context: automaton state, current column, and both chunk
// buffers. A Cutter is not safe for concurrent use.
type Cutter struct {
	delim byte
	sel   *Selection

	state  State
	column int

	bufSize int
	in      []byte
	out     *output

	log   *zap.Logger
	stats Recorder
}

// NewCutter returns a Cutter splitting fields on delim and keeping the columns in sel.
// A nil sel keeps no column, so only row separators are written.
func NewCutter(delim byte, sel *Selection, opts ...Option) *Cutter {
	if sel == nil {
		sel = &Selection{}
	}
	c := &Cutter{
		delim:   delim,
		sel:     sel,
		bufSize: BufferSize,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.in = make([]byte, c.bufSize)
	return c
}

// Reset replaces the delimiter and selection while keeping the buffers and options.
func (c *Cutter) Reset(delim byte, sel *Selection) {
	if sel == nil {
		sel = &Selection{}
	}
	c.delim = delim
	c.sel = sel
	c.state = StateDefault
	c.column = 0
}

// State returns the automaton state reached by the last byte processed.
func (c *Cutter) State() State {
	return c.state
}

// Column returns the current 0-based column index.
func (c *Cutter) Column() int {
	return c.column
}

// Cut reads r until io.EOF, writes the selected bytes to w and flushes w's
// buffer. The automaton starts every call in StateDefault at column 0.
// Read failures are returned as KindRead without flushing, write failures as
// KindWrite; neither is retried.
func (c *Cutter) Cut(r io.Reader, w io.Writer) error {
	if c.out == nil {
		c.out = newOutput(w, c.bufSize)
	} else {
		c.out.reset(w)
	}
	c.state = StateDefault
	c.column = 0

	first, _ := c.sel.First()
	c.log.Debug("cut started",
		zap.String("delimiter", string(c.delim)),
		zap.Int("columns", c.sel.Len()),
		zap.Int("first_column", first))

	var rows int
	var read int64
	for {
		n, err := r.Read(c.in)
		if n > 0 {
			read += int64(n)
			done, perr := c.process(c.in[:n])
			rows += done
			if perr != nil {
				c.log.Debug("cut aborted", zap.Int64("bytes_read", read), zap.Error(perr))
				return perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			c.log.Debug("cut aborted", zap.Int64("bytes_read", read), zap.Error(err))
			return newError(KindRead, "unable to read input", err)
		}
	}

	if err := c.out.flush(); err != nil {
		return err
	}
	c.log.Debug("cut finished",
		zap.Int64("bytes_read", read),
		zap.Int64("bytes_written", c.out.written),
		zap.Int("rows", rows))
	return nil
}

// process runs the automaton over chunk and writes contiguous runs of kept
// bytes. It returns the number of row separators seen.
func (c *Cutter) process(chunk []byte) (int, error) {
	before := c.out.written
	rows := 0
	run := -1

	for i, b := range chunk {
		next, action, err := c.state.Next(b, c.delim)
		if err != nil {
			return rows, newError(KindInternal, fmt.Sprintf("state %d at column %d", c.state, c.column), err)
		}
		c.state = next

		switch action {
		case ActionNextColumn:
			c.column++
		case ActionNewRow:
			c.column = 0
			rows++
		}

		if c.sel.Keep(b, c.delim, c.column, action) {
			if run < 0 {
				run = i
			}
			continue
		}
		if run >= 0 {
			if err := c.out.write(chunk[run:i]); err != nil {
				return rows, err
			}
			run = -1
		}
	}
	if run >= 0 {
		if err := c.out.write(chunk[run:]); err != nil {
			return rows, err
		}
	}

	if c.stats != nil {
		c.stats.RecordChunk(len(chunk), int(c.out.written-before), rows)
	}
	return rows, nil
}
