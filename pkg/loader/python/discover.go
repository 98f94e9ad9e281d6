package python

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mwalther/importgraph/pkg/errors"
)

const initFile = "__init__.py"

// Discover walks a directory and returns the dotted names of every
// importable module beneath it, in lexical order.
//
// The top-level directory acts as a search root and needs no __init__.py;
// subdirectories are only descended into when they are packages (contain an
// __init__.py). A package contributes its own dotted name, each module file
// contributes one name, and __pycache__ is skipped.
//
// Use the returned names as trace roots with dir added as a search path.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}
	return collect(dir, nil)
}

func collect(dir string, parents []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading %s", dir)
	}

	// Non-root directories must be packages to be importable.
	if len(parents) > 0 && !hasInit(entries) {
		return nil, nil
	}

	var modules []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if name == "__pycache__" {
				continue
			}
			sub, err := collect(filepath.Join(dir, name), append(parents, name))
			if err != nil {
				return nil, err
			}
			modules = append(modules, sub...)
			continue
		}

		stem, ok := strings.CutSuffix(name, ".py")
		if !ok {
			continue
		}
		if stem == "__init__" {
			if len(parents) > 0 {
				modules = append(modules, strings.Join(parents, "."))
			}
			continue
		}
		modules = append(modules, strings.Join(append(parents, stem), "."))
	}
	return modules, nil
}

func hasInit(entries []os.DirEntry) bool {
	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() == initFile {
			return true
		}
	}
	return false
}
