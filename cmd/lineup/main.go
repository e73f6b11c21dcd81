package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bjaus/lineup"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var verbosity = 0
var opts = defaultOptions()

var cmd = &cobra.Command{
	Use:   "lineup [file]",
	Short: "Re-emit delimited text items under a different layout",
	Long: `lineup splits its input into items with the IN format flags and writes
them back out with the OUT format flags: a new separator, optional
fixed-width padding per item, and optional grouping of N items per line.

Input comes from the file argument, or from stdin when no file is given.`,
	Example:          `  printf '001,01,1' | lineup --out-span 4 --out-pad _ --out-anchor right --out-separator '|'`,
	Args:             cobra.MaximumNArgs(1),
	PersistentPreRun: logging,
	RunE:             run,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func main() {
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")
	opts.register(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logging(cc *cobra.Command, args []string) {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	})))
}

func run(cc *cobra.Command, args []string) error {
	in, out, err := opts.resolve(cc.Flags())
	if err != nil {
		return err
	}

	src := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("unable to open input %s: %w", args[0], err)
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	slog.Debug("read input", "bytes", len(data))

	return lineup.Reformat(os.Stdout, string(data), in, out)
}
