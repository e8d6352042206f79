package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/lmittmann/tint"
	"github.com/pborman/getopt/v2"
	"github.com/softixx/go-listops/pkg/utils"
)

var validOps = []string{"join", "split", "concat", "merge", "intersect", "diff", "symdiff", "dupes"}

// ops needing a second input list
var twoListOps = []string{"concat", "merge", "intersect", "diff", "symdiff"}

type Opts struct {
	op        string
	aPath     string
	bPath     string
	delimiter string
	dataDir   string
	outName   string
	json      bool
	appendOut bool
}

func ParseOpts(defaultDelimiter string, defaultDataDir string) Opts {
	if defaultDataDir == "" {
		defaultDataDir, _ = utils.TmpDirectory() // we don't care if err
	}

	// definition
	help := getopt.BoolLong("help", 'h', "Shows the help menu")
	op := getopt.StringLong("op", 'o', "", "Operation: join, split, concat, merge, intersect, diff, symdiff, dupes")
	aPath := getopt.StringLong("a", 'a', "", "Path of the first input list (one element per line)")
	bPath := getopt.StringLong("b", 'b', "", "Path of the second input list (required by concat, merge, intersect, diff, symdiff)")
	delimiter := getopt.StringLong("delimiter", 'd', defaultDelimiter, "Delimiter used by join and split")
	dataDir := getopt.StringLong("data-dir", 'D', defaultDataDir, "Path of the data folder for output files. Defaults to tmp directory")
	outName := getopt.StringLong("out", 'w', "", "Output list name, stored in the data folder as <name>.txt (or .json). If omitted, the result is printed to stdout")
	jsonOut := getopt.BoolLong("json", 'j', "Write the result as JSON instead of lines")
	appendOut := getopt.BoolLong("append", 'p', "Append the result to the output list instead of replacing it")

	// parsing
	getopt.Parse()

	if *help {
		getopt.Usage()
		os.Exit(0)
	}

	if !slices.Contains(validOps, *op) {
		slog.Error("You must set the --op flag to a valid operation.", "valid", validOps, "provided", *op)
		os.Exit(2)
	}

	if *aPath == "" {
		slog.Error("You must set the --a flag to an input list file.")
		os.Exit(2)
	}

	if slices.Contains(twoListOps, *op) && *bPath == "" {
		slog.Error("This operation requires the --b flag.", "op", *op)
		os.Exit(2)
	}

	if *appendOut && *outName == "" {
		slog.Error("The --append flag requires the --out flag.")
		os.Exit(2)
	}

	if *appendOut && *jsonOut {
		slog.Error("The --append flag only works with line output, not --json.")
		os.Exit(2)
	}

	absDataDir, err := filepath.Abs(*dataDir)
	if err != nil {
		tint.Err(err)
		os.Exit(1)
	}

	return Opts{
		op:        *op,
		aPath:     *aPath,
		bPath:     *bPath,
		delimiter: *delimiter,
		dataDir:   absDataDir,
		outName:   *outName,
		json:      *jsonOut,
		appendOut: *appendOut,
	}
}
