package templates

import (
	"io/fs"
	"os"
	"path/filepath"
)

// CategoryStatus is the on-disk state of one category directory.
type CategoryStatus struct {
	Category Category `json:"category" yaml:"category"`
	Path     string   `json:"path" yaml:"path"`
	Exists   bool     `json:"exists" yaml:"exists"`
	Files    int      `json:"files" yaml:"files"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Layout is the result of Inspect.
type Layout struct {
	Root          string           `json:"root" yaml:"root"`
	Manifest      string           `json:"manifest" yaml:"manifest"`
	Version       string           `json:"version,omitempty" yaml:"version,omitempty"`
	ManifestError string           `json:"manifest_error,omitempty" yaml:"manifest_error,omitempty"`
	Categories    []CategoryStatus `json:"categories" yaml:"categories"`
}

// OK reports whether every category directory exists and the manifest is readable.
func (l Layout) OK() bool {
	if l.ManifestError != "" {
		return false
	}
	for _, c := range l.Categories {
		if !c.Exists || c.Error != "" {
			return false
		}
	}
	return true
}

// Missing returns the categories whose directory is absent.
func (l Layout) Missing() []Category {
	var missing []Category
	for _, c := range l.Categories {
		if !c.Exists {
			missing = append(missing, c.Category)
		}
	}
	return missing
}

// Inspect checks the registry's paths against the filesystem.
// The Registry accessors themselves never do this; Inspect is for consumers
// that want to verify the bundle before copying from it.
func Inspect(r *Registry) Layout {
	l := Layout{
		Root:     r.TemplatesPath(),
		Manifest: r.ManifestPath(),
	}
	if m, err := ReadManifest(l.Manifest); err != nil {
		l.ManifestError = err.Error()
	} else {
		l.Version = m.Version
	}
	for _, c := range Categories() {
		l.Categories = append(l.Categories, inspectCategory(c, r.CategoryPath(c)))
	}
	return l
}

func inspectCategory(c Category, path string) CategoryStatus {
	st := CategoryStatus{Category: c, Path: path}
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return st
	}
	st.Exists = true
	err = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			st.Files++
		}
		return nil
	})
	if err != nil {
		st.Error = err.Error()
	}
	return st
}
