// Package macro loads user-defined Starlark macro files. Each .star file
// becomes a namespace (from its filename) whose exported functions can call
// the fragment builtins to assemble SQL text.
package macro

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.starlark.net/starlark"
	"golang.org/x/sync/errgroup"
)

// Loader scans a directory for .star files and loads them as macro modules.
type Loader struct {
	dir         string
	predeclared starlark.StringDict
}

// NewLoader creates a macro loader for dir. predeclared holds the globals
// available to every macro file, typically the fragment builtins.
func NewLoader(dir string, predeclared starlark.StringDict) *Loader {
	return &Loader{dir: dir, predeclared: predeclared}
}

// Module represents a loaded Starlark macro file.
type Module struct {
	// Namespace is derived from the filename (e.g. "scd" from "scd.star").
	Namespace string

	// Path is the path to the .star file.
	Path string

	// Exports contains all exported values (names not starting with _).
	Exports starlark.StringDict
}

// Load scans the macro directory and loads all .star files concurrently.
// Modules are returned sorted by namespace for deterministic output. A
// missing directory is not an error; projects without macros are fine.
func (l *Loader) Load() ([]*Module, error) {
	info, err := os.Stat(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to access macros directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("macros path is not a directory: %s", l.dir)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*.star"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan macros directory: %w", err)
	}

	modules := make([]*Module, len(files))
	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			m, err := l.loadFile(file)
			if err != nil {
				return err
			}
			modules[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(modules, func(i, j int) bool { return modules[i].Namespace < modules[j].Namespace })
	return modules, nil
}

// loadFile executes a single .star file and extracts its exports.
func (l *Loader) loadFile(path string) (*Module, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from a glob within the macros directory
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}
	}

	namespace := strings.TrimSuffix(filepath.Base(path), ".star")
	if err := validateNamespace(namespace); err != nil {
		return nil, &LoadError{File: path, Message: err.Error()}
	}

	thread := &starlark.Thread{
		Name: fmt.Sprintf("load:%s", namespace),
		Print: func(_ *starlark.Thread, _ string) {
			// Ignore prints during macro loading
		},
	}

	globals, err := starlark.ExecFile(thread, path, content, l.predeclared) //nolint:staticcheck // SA1019: will migrate to ExecFileOptions later
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("Starlark execution error: %v", err)}
	}

	exports := make(starlark.StringDict)
	for name, value := range globals {
		if !strings.HasPrefix(name, "_") {
			exports[name] = value
		}
	}

	return &Module{Namespace: namespace, Path: path, Exports: exports}, nil
}

// validateNamespace checks if a namespace name is a valid identifier.
func validateNamespace(name string) error {
	if name == "" {
		return fmt.Errorf("namespace cannot be empty")
	}

	for i, r := range name {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return fmt.Errorf("namespace must start with letter or underscore: %s", name)
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return fmt.Errorf("namespace contains invalid character: %s", name)
			}
		}
	}

	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// LoadError represents an error loading a macro file.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("macros/%s: %s", filepath.Base(e.File), e.Message)
}
