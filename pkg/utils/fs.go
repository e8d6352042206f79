package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/softixx/go-listops/pkg/constants"
)

func DoFolderExists(absPath string) (bool, error) {
	stat, err := os.Stat(absPath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return false, nil
		default:
			return false, err
		}
	}

	return stat.IsDir(), nil
}

func CreateFolderIfNotExists(absPath string) error {
	path := absPath
	if !filepath.IsAbs(path) {
		slog.Warn("asking for absPath, provided a relative path", "provided", absPath)
		var err error
		path, err = filepath.Abs(absPath)
		if err != nil {
			return err
		}
	}

	exists, err := DoFolderExists(path)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return os.MkdirAll(path, os.ModePerm)
}

// ListFilesWithExt returns the absolute paths of the regular files in
// absPath whose name ends with ext (e.g. ".html", ".txt").
func ListFilesWithExt(absPath string, ext string) ([]string, error) {
	exists, err := DoFolderExists(absPath)
	if !exists || err != nil {
		return nil, fmt.Errorf("folder does not exist. Eventual error: %w", err)
	}

	entries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0)
	for _, file := range entries {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ext) {
			paths = append(paths, filepath.Join(absPath, file.Name()))
		}
	}

	return paths, nil
}

func TmpDirectory() (string, error) {
	tmpPath, err := filepath.Abs(constants.TmpDirectoryName)
	if err != nil {
		return "", err
	}

	err = CreateFolderIfNotExists(tmpPath)
	if err != nil {
		return "", err
	}

	return tmpPath, nil
}

// MakeFilename normalizes str into a lowercase, underscore-separated
// filename with the given extension.
func MakeFilename(str string, ext string) string {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)
	str = strings.ReplaceAll(str, " ", "_")
	return str + ext
}
