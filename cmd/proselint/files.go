package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// proseExtensions are the file types the CLI lints when walking a directory.
var proseExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".json":     true,
	".yaml":     true,
	".yml":      true,
}

// expandPaths resolves the file and directory arguments into the list of
// prose files to lint. Directories are walked recursively; files given
// explicitly are always included regardless of extension.
func expandPaths(fs afero.Fs, args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := fs.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %v", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = afero.Walk(fs, arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if proseExtensions[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %v", arg, err)
		}
	}

	return files, nil
}
