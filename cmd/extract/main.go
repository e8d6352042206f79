package main

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/PuerkitoBio/goquery"
	"github.com/softixx/go-listops/pkg/config"
	"github.com/softixx/go-listops/pkg/constants"
	"github.com/softixx/go-listops/pkg/extract"
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

	opts := ParseOpts(cfg.Lists.DataDir)
	slog.Info("argv validation", "url", opts.url, "file", opts.filePath, "dir", opts.dirPath, "mode", opts.mode, "data_dir", opts.dataDir)

	var list []string
	if opts.dirPath != "" {
		list = extractDir(opts)
	} else {
		list = extractDoc(loadDoc(opts), opts)
	}

	slog.Info("[extract] extraction done", "mode", opts.mode, "count", len(list))

	if opts.dedup && listops.HasDuplicates(list) {
		before := len(list)
		list = listops.MergeAll(list)
		slog.Info("[extract] removed duplicates", "before", before, "after", len(list))
	}

	if opts.outName == "" {
		for _, el := range list {
			fmt.Println(el)
		}
		return
	}

	fn := utils.MakeFilename(opts.outName, ".json")
	outDir := path.Join(opts.dataDir, constants.OutputBaseFolder)
	w, err := writer.NewWriter[[]string](outDir)
	if err != nil {
		panic(err)
	}

	if err := w.JsonWrite(fn, list, true); err != nil {
		slog.Error("[extract] error while writing to fs (PANIC)", "filename", fn)
		panic(err)
	}

	slog.Info("[extract] successful write", "filename", fn)
}

func extractDoc(doc *goquery.Document, opts Opts) []string {
	switch opts.mode {
	case "list":
		return extract.ListItems(doc)
	case "options":
		return extract.Options(doc)
	case "column":
		return extract.TableColumn(doc, opts.column)
	case "selector":
		return extract.Items(doc, opts.selector)
	}

	return []string{}
}

// extractDir runs the extraction over every .html file in the folder and
// concatenates the per-file lists in file order.
func extractDir(opts Opts) []string {
	paths, err := utils.ListFilesWithExt(opts.dirPath, ".html")
	if err != nil {
		slog.Error("[extract] could not list html files", "dir", opts.dirPath, "err", err)
		os.Exit(1)
	}

	lists := make([][]string, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			slog.Error("[extract] could not read html file", "path", p, "err", err)
			os.Exit(1)
		}

		doc, err := extract.LoadLocalHtml(data)
		if err != nil {
			slog.Error("[extract] could not parse html file", "path", p, "err", err)
			os.Exit(1)
		}

		list := extractDoc(doc, opts)
		slog.Debug("[extract] file done", "path", p, "count", len(list))
		lists = append(lists, list)
	}

	return listops.ConcatAll(lists...)
}

func loadDoc(opts Opts) *goquery.Document {
	if opts.url != "" {
		doc, err := extract.LoadHttpHtml(opts.url)
		if err != nil {
			slog.Error("[extract] could not load html page", "url", opts.url, "err", err)
			os.Exit(1)
		}
		return doc
	}

	data, err := os.ReadFile(opts.filePath)
	if err != nil {
		slog.Error("[extract] could not read html file", "path", opts.filePath, "err", err)
		os.Exit(1)
	}

	doc, err := extract.LoadLocalHtml(data)
	if err != nil {
		slog.Error("[extract] could not parse html file", "path", opts.filePath, "err", err)
		os.Exit(1)
	}

	return doc
}
