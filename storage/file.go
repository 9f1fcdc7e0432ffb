package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileAdapter persists artifacts to the local filesystem. The artifact is
// written to a temp file first and renamed into place on success.
type FileAdapter struct{}

// Keyword implements Adapter
func (FileAdapter) Keyword() string {
	return "file"
}

// Write implements Adapter. Options are either a path string or a mapping
// with a "path" entry.
func (FileAdapter) Write(artifact interface{}, options interface{}) error {
	path, err := stringOption(options, "path")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := encodeArtifact(f, artifact); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// stringOption extracts a string option that may be given either as a bare
// scalar or under the given key of a mapping.
func stringOption(options interface{}, key string) (string, error) {
	switch opts := options.(type) {
	case string:
		if opts == "" {
			return "", fmt.Errorf("empty %s option", key)
		}
		return opts, nil
	case map[string]interface{}:
		v, ok := opts[key]
		if !ok {
			return "", fmt.Errorf("missing %s option", key)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%s option must be a non-empty string", key)
		}
		return s, nil
	default:
		return "", fmt.Errorf("unsupported options type %T", options)
	}
}
