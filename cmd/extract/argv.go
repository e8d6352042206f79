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

var validModes = []string{"list", "options", "column", "selector"}

type Opts struct {
	url      string
	filePath string
	dirPath  string
	mode     string
	selector string
	column   int
	dedup    bool
	dataDir  string
	outName  string
}

func ParseOpts(defaultDataDir string) Opts {
	if defaultDataDir == "" {
		defaultDataDir, _ = utils.TmpDirectory() // we don't care if err
	}

	// definition
	help := getopt.BoolLong("help", 'h', "Shows the help menu")
	url := getopt.StringLong("url", 'u', "", "Url of the html page to extract from")
	filePath := getopt.StringLong("file", 'f', "", "Path of a local html file to extract from (alternative to --url)")
	dirPath := getopt.StringLong("dir", 'i', "", "Path of a folder: extract from every .html file in it, concatenated in file order (alternative to --url/--file)")
	mode := getopt.StringLong("mode", 'm', "list", "Extraction mode: list (ul/ol items), options (select options), column (table column), selector (custom css selector)")
	selector := getopt.StringLong("selector", 's', "", "Css selector, required when --mode selector")
	column := getopt.IntLong("column", 'c', 0, "Table column index, used when --mode column")
	dedup := getopt.BoolLong("dedup", 'q', "Remove duplicate elements from the extracted list")
	dataDir := getopt.StringLong("data-dir", 'D', defaultDataDir, "Path of the data folder for output files. Defaults to tmp directory")
	outName := getopt.StringLong("out", 'w', "", "Output list name, stored in the data folder as <name>.json. If omitted, the list is printed to stdout")

	// parsing
	getopt.Parse()

	if *help {
		getopt.Usage()
		os.Exit(0)
	}

	sources := 0
	for _, src := range []string{*url, *filePath, *dirPath} {
		if src != "" {
			sources++
		}
	}
	if sources != 1 {
		slog.Error("You must set exactly one of --url, --file and --dir.")
		os.Exit(2)
	}

	if !slices.Contains(validModes, *mode) {
		slog.Error("You must set the --mode flag to a valid mode.", "valid", validModes, "provided", *mode)
		os.Exit(2)
	}

	if *mode == "selector" && *selector == "" {
		slog.Error("Mode 'selector' requires the --selector flag.")
		os.Exit(2)
	}

	absDataDir, err := filepath.Abs(*dataDir)
	if err != nil {
		tint.Err(err)
		os.Exit(1)
	}

	absDirPath := ""
	if *dirPath != "" {
		absDirPath, err = filepath.Abs(*dirPath)
		if err != nil {
			tint.Err(err)
			os.Exit(1)
		}

		dirExists, err := utils.DoFolderExists(absDirPath)
		if !dirExists {
			slog.Error("You must set the --dir flag to an existing directory.")
			os.Exit(2)
		}
		if err != nil {
			tint.Err(err)
			os.Exit(1)
		}
	}

	return Opts{
		url:      *url,
		filePath: *filePath,
		dirPath:  absDirPath,
		mode:     *mode,
		selector: *selector,
		column:   *column,
		dedup:    *dedup,
		dataDir:  absDataDir,
		outName:  *outName,
	}
}
