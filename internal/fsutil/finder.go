// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Entries lists the direct children of a directory that can hold suites:
// files ending with extension and sub-directories. Names starting with "."
// or "_" are ignored, as are the names in skip. Both lists are sorted.
func Entries(fs afero.Fs, dir, extension string, skip ...string) (files, dirs []string, err error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		skipped[name] = struct{}{}
	}

	for _, info := range infos {
		name := info.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		if _, ok := skipped[name]; ok {
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, name)
		} else if strings.HasSuffix(name, extension) {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	sort.Strings(dirs)
	return files, dirs, nil
}

// HasFiles reports whether dir or any of its sub-directories contains a file
// ending with extension, using the same naming rules as Entries.
func HasFiles(fs afero.Fs, dir, extension string) (bool, error) {
	files, dirs, err := Entries(fs, dir, extension)
	if err != nil {
		return false, err
	}
	if len(files) > 0 {
		return true, nil
	}
	for _, sub := range dirs {
		found, err := HasFiles(fs, filepath.Join(dir, sub), extension)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}
