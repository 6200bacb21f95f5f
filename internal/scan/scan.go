// Package scan discovers analysis folders under a root directory.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Default file names inside an analysis folder.
const (
	DefaultMarker     = "index.html"
	DefaultProvenance = "section09-provenance.html"
)

var (
	// ErrNotADirectory is returned when the root does not exist or is not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrNoAnalyses is returned when no subdirectory contains the marker file.
	ErrNoAnalyses = errors.New("no analysis directories found")
)

// Options names the files that identify and describe an analysis folder.
type Options struct {
	Marker     string
	Provenance string
}

func (o Options) withDefaults() Options {
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
	if o.Provenance == "" {
		o.Provenance = DefaultProvenance
	}
	return o
}

// Folder is one discovered analysis folder.
type Folder struct {
	Name string
	Path string
	// ProvenancePath is empty when the folder has no provenance file.
	ProvenancePath string
}

// HasProvenance reports whether a provenance file was found.
func (f Folder) HasProvenance() bool {
	return f.ProvenancePath != ""
}

// Scan returns the immediate, non-hidden subdirectories of root that contain
// the marker file, sorted by name.
func Scan(root string, opts Options) ([]Folder, error) {
	opts = opts.withDefaults()

	if err := checkDir(root); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var folders []Folder
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(root, name)
		if !isDir(path) || !isFile(filepath.Join(path, opts.Marker)) {
			continue
		}

		f := Folder{Name: name, Path: path}
		if prov := filepath.Join(path, opts.Provenance); isFile(prov) {
			f.ProvenancePath = prov
		}
		folders = append(folders, f)
	}

	if len(folders) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoAnalyses)
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Name < folders[j].Name
	})
	return folders, nil
}

// FindProjectFile returns the first markdown file in root, in directory
// listing order. os.ReadDir sorts by name, so with several files the
// alphabetically first one wins.
func FindProjectFile(root string) (string, bool, error) {
	if err := checkDir(root); err != nil {
		return "", false, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", root, err)
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		path := filepath.Join(root, e.Name())
		if isFile(path) {
			return path, true, nil
		}
	}
	return "", false, nil
}

func checkDir(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", root, ErrNotADirectory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotADirectory)
	}
	return nil
}

// isDir follows symlinks.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
