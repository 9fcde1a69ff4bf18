package csvcut

import (
	"bufio"
	"errors"
	"io"
)

var errOutputNoTarget = errors.New("csvcut: output destination cannot be nil")

// output buffers selected bytes on their way to the destination. The first
// failure is kept and returned by every later call.
type output struct {
	dst *bufio.Writer

	written int64
	err     error
}

func newOutput(w io.Writer, size int) *output {
	if w == nil {
		panic(errOutputNoTarget.Error())
	}
	return &output{dst: bufio.NewWriterSize(w, size)}
}

// reset points the buffer at w, dropping pending bytes and any stored error.
func (o *output) reset(w io.Writer) {
	if w == nil {
		panic(errOutputNoTarget.Error())
	}
	o.dst.Reset(w)
	o.written = 0
	o.err = nil
}

// write copies p into the buffer. bufio reports a short write from the
// destination as io.ErrShortWrite.
func (o *output) write(p []byte) error {
	if o.err != nil {
		return o.err
	}
	if len(p) == 0 {
		return nil
	}
	n, err := o.dst.Write(p)
	o.written += int64(n)
	if err != nil {
		o.err = newError(KindWrite, "unable to write on output", err)
		return o.err
	}
	return nil
}

func (o *output) flush() error {
	if o.err != nil {
		return o.err
	}
	if err := o.dst.Flush(); err != nil {
		o.err = newError(KindWrite, "unable to write on output", err)
		return o.err
	}
	return nil
}
