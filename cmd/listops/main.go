package main

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/softixx/go-listops/pkg/config"
	"github.com/softixx/go-listops/pkg/constants"
	"github.com/softixx/go-listops/pkg/listops"
	"github.com/softixx/go-listops/pkg/logger"
	"github.com/softixx/go-listops/pkg/utils"
	"github.com/softixx/go-listops/pkg/writer"
)

func main() {
	slog.SetDefault(logger.GetDefaultLogger())

	cfg, err := config.ReadConfig()
	if err != nil {
		slog.Error("could not read config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.GetLogger(logger.ParseLevel(cfg.Log.Level)))

	opts := ParseOpts(cfg.Lists.Delimiter, cfg.Lists.DataDir)
	slog.Info("argv validation", "op", opts.op, "a", opts.aPath, "b", opts.bPath, "data_dir", opts.dataDir)

	// split consumes the raw file content, every other op a line list
	var a, b []string
	if opts.op != "split" {
		a = readList(opts.aPath)
	}
	if opts.bPath != "" {
		b = readList(opts.bPath)
	}

	switch opts.op {
	case "join":
		emitScalar(opts, listops.Join(a, opts.delimiter))
	case "split":
		source := strings.TrimRight(string(mustReadFile(opts.aPath)), "\n")
		emitList(opts, listops.Split(source, opts.delimiter))
	case "concat":
		emitList(opts, listops.Concat(a, b))
	case "merge":
		emitList(opts, listops.Merge(a, b))
	case "intersect":
		emitList(opts, listops.Intersection(a, b))
	case "diff":
		emitList(opts, listops.Difference(a, b))
	case "symdiff":
		emitList(opts, listops.FullDifference(a, b))
	case "dupes":
		emitScalar(opts, fmt.Sprintf("%t", listops.HasDuplicates(a)))
	}
}

func mustReadFile(p string) []byte {
	data, err := os.ReadFile(p)
	if err != nil {
		slog.Error("[listops] could not read input file", "path", p, "err", err)
		os.Exit(1)
	}

	return data
}

// readList loads an input list: .json files hold a JSON string array,
// anything else is read as one element per line.
func readList(p string) []string {
	absPath, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	w, err := writer.NewWriter[[]string](path.Dir(absPath))
	if err != nil {
		panic(err)
	}

	var list []string
	if strings.HasSuffix(absPath, ".json") {
		list, err = w.JsonRead(path.Base(absPath))
	} else {
		list, err = w.ReadLines(path.Base(absPath))
	}
	if err != nil {
		slog.Error("[listops] could not read input list", "path", p, "err", err)
		os.Exit(1)
	}

	slog.Debug("[listops] input list loaded", "path", p, "count", len(list))
	return list
}

func emitList(opts Opts, list []string) {
	if opts.outName == "" {
		for _, el := range list {
			fmt.Println(el)
		}
		return
	}

	ext := ".txt"
	if opts.json {
		ext = ".json"
	}
	fn := utils.MakeFilename(opts.outName, ext)

	outDir := path.Join(opts.dataDir, constants.OutputBaseFolder)
	w, err := writer.NewWriter[[]string](outDir)
	if err != nil {
		panic(err)
	}

	switch {
	case opts.json:
		err = w.JsonWrite(fn, list, true)
	case opts.appendOut:
		err = w.AppendLines(fn, list)
	default:
		err = w.WriteLines(fn, list)
	}
	if err != nil {
		slog.Error("[listops] error while writing result (PANIC)", "filename", fn)
		panic(err)
	}

	slog.Info("[listops] successful write", "filename", fn, "count", len(list))
}

func emitScalar(opts Opts, value string) {
	if opts.outName == "" {
		fmt.Println(value)
		return
	}

	emitList(opts, []string{value})
}
