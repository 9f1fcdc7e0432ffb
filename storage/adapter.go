package storage

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultKeyword selects the adapter used when a configuration does not name one.
const DefaultKeyword = "file"

// Adapter is a named pluggable backend capable of persisting a model artifact.
// Adapters may be stateful, but that state is opaque to the pipeline.
type Adapter interface {
	// Keyword identifies the adapter; it is immutable.
	Keyword() string
	// Write persists the artifact using adapter-specific options.
	Write(artifact interface{}, options interface{}) error
}

// Encoder lets an artifact control its own serialization. Artifacts that do
// not implement it are JSON-encoded.
type Encoder interface {
	Encode(w io.Writer) error
}

// UnknownAdapterError indicates that a keyword has no registered backend.
type UnknownAdapterError struct {
	Keyword string
}

// UnknownAdapterError implements error
func (e UnknownAdapterError) Error() string {
	return fmt.Sprintf("no adapter registered for keyword %q", e.Keyword)
}

// WriteError indicates that a single adapter's write failed. It carries the
// adapter keyword and the underlying cause so the caller can decide whether
// to warn, log, or halt.
type WriteError struct {
	Keyword string
	Err     error
}

// WriteError implements error
func (e WriteError) Error() string {
	return fmt.Sprintf("adapter %s: write failed: %v", e.Keyword, e.Err)
}

// Unwrap returns the underlying cause.
func (e WriteError) Unwrap() error {
	return e.Err
}

func encodeArtifact(w io.Writer, artifact interface{}) error {
	if enc, ok := artifact.(Encoder); ok {
		return enc.Encode(w)
	}
	return json.NewEncoder(w).Encode(artifact)
}
