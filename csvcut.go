// # CSVCut: A Streaming Column Extractor for Go
//
// CSVCut keeps a chosen set of columns from a character-separated-value stream and drops the rest. It reads its input once, in fixed-size chunks, and never holds more than one chunk of input and one chunk of output in memory, which makes it suitable for shell pipelines over unbounded data.
//
// # Features
//
// - Three-state quoting automaton (`State`) with a pure transition function, usable without any I/O.
// - Bounded column selection set (`Selection`) that rejects out-of-range columns before streaming starts.
// - Buffered `Cutter` that streams from an `io.Reader` to an `io.Writer` with a configurable single-byte delimiter.
// - Structured errors (`Error`, `ArgError`) with stable process exit codes via `ExitCode`.
// - Table-driven unit tests, a chunking fuzz target, and benchmarks against `encoding/csv`.
//
// # Getting Started
//
//	sel, err := csvcut.ParseColumns([]string{"0", "2"})
//	if err != nil {
//		return err
//	}
//	c := csvcut.NewCutter(',', sel)
//	if err := c.Cut(os.Stdin, os.Stdout); err != nil {
//		return err
//	}
//
// The command-line front end lives in `cmd/csvcut`.
package csvcut
