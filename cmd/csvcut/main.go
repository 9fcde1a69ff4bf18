package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oleg578/csvcut"
	"github.com/oleg578/csvcut/internal/logger"
)

const longHelp = `csvcut reads CSV data on standard input and writes the selected columns,
in ascending column order, to standard output.

The first argument is the delimiter; only its first byte is used. Every
following argument is a 0-based column index below %d. Quoted fields may
contain the delimiter, newlines and doubled quotes.

Example:
  printf 'name,age,city\nAlice,30,NYC\n' | csvcut , 0 2

Exit status:
  0  end of input reached
  1  missing arguments
  2  invalid delimiter
  3  internal error
  4  invalid or out-of-range column
  5  unable to write on standard output
  6  unable to read standard input`

func main() {
	log, err := logger.New(logger.Config{Level: "error"}, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(csvcut.ExitInternal)
	}
	os.Exit(run(newRootCmd(os.Stdin, os.Stdout, log), os.Args[1:], log))
}

// run executes cmd with args and returns the process exit code.
func run(cmd *cobra.Command, args []string, log *zap.Logger) int {
	defer func() { _ = log.Sync() }()

	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return csvcut.ExitOK
	}

	code := csvcut.ExitCode(err)
	log.Error("csvcut failed", zap.Error(err), zap.Int("exit_code", code))
	if errors.Is(err, csvcut.ErrMissingArgs) {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	}
	return code
}

func newRootCmd(stdin io.Reader, stdout io.Writer, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvcut <delimiter> <column>...",
		Short: "Extract columns from CSV data",
		Long:  fmt.Sprintf(longHelp, csvcut.MaxColumns),
		Args:  cobra.ArbitraryArgs,
		// Positional tokens such as "-" or "-1" must reach the argument checks unchanged.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := csvcut.ParseArgs(args)
			if err != nil {
				return err
			}
			return cut(cfg, stdin, stdout, log)
		},
	}
	// A hidden help flag keeps cobra from advertising -h, which is never parsed.
	cmd.Flags().BoolP("help", "h", false, "help for csvcut")
	_ = cmd.Flags().MarkHidden("help")
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	return cmd
}

func cut(cfg *csvcut.Config, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	return cfg.NewCutter(csvcut.WithLogger(log)).Cut(stdin, stdout)
}
