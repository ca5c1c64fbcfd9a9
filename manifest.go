package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Manifest is the subset of the package manifest the registry reads.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

var errMissingVersion = errors.New("missing version field")

// ReadManifest reads and decodes the JSON manifest at path.
// Every failure is returned as a *ManifestReadError.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the registry root
	if err != nil {
		return Manifest{}, &ManifestReadError{Path: path, Err: err}
	}
	return parseManifest(path, data)
}

// parseManifest looks fields up by their exact key. encoding/json would
// otherwise fold case and let "Version" or "VERSION" stand in for "version".
func parseManifest(path string, data []byte) (Manifest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Manifest{}, &ManifestReadError{Path: path, Err: err}
	}

	raw, ok := fields["version"]
	if !ok || string(raw) == "null" {
		return Manifest{}, &ManifestReadError{Path: path, Err: errMissingVersion}
	}

	var m Manifest
	for key, dst := range map[string]*string{
		"name":        &m.Name,
		"version":     &m.Version,
		"description": &m.Description,
	} {
		v, ok := fields[key]
		if !ok || string(v) == "null" {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return Manifest{}, &ManifestReadError{Path: path, Err: fmt.Errorf("field %q: %w", key, err)}
		}
	}
	return m, nil
}
