// Command stringwars runs the comparison groups against the dataset named
// by STRINGWARS_DATASET and prints one line per candidate.
package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jcalabro/stringwars"
)

type options struct {
	benchtime string
	logLevel  string
	logger    *slog.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "stringwars",
		Short:        "Compare string hashing, edit distance and search implementations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(stderr, opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.benchtime, "benchtime", "1s", "time or iteration count (e.g. 10s, 1000x) per candidate")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(
		groupCmd(opts, "hash", "Compare checksums and hash functions", stringwars.HashGroup),
		groupCmd(opts, "levenshtein", "Compare edit-distance implementations", stringwars.LevenshteinGroup),
		groupCmd(opts, "search", "Compare forward and reverse substring search",
			stringwars.SearchForwardGroup, stringwars.SearchReverseGroup),
		groupCmd(opts, "all", "Run every group", stringwars.Groups()...),
		listCmd(),
	)
	return root
}

func groupCmd(opts *options, use, short string, groups ...stringwars.Group) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, groups)
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups and their candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listGroups(cmd.OutOrStdout(), stringwars.Groups())
		},
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})), nil
}
