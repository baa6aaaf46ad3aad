// Package filesystem turns filesystem paths into [schema.Metadata] attribute
// records. Entries are inspected without following symbolic links, and any
// failure to inspect an entry degrades to a zeroed record instead of an error.
package filesystem

import (
	"log/slog"
	"strings"

	"github.com/desertwitch/direntfilter/internal/schema"
)

// GetMetadata returns the [schema.Metadata] for the entry at path. It never
// fails: a path that does not exist or cannot be inspected yields a record
// where only the name-derived fields are set.
func (f *Handler) GetMetadata(path string) *schema.Metadata {
	name := entryName(path)

	metadata := &schema.Metadata{
		Name:     name,
		IsHidden: strings.HasPrefix(name, "."),
	}

	if err := f.establishMetadata(path, metadata); err != nil {
		slog.Debug("Failure inspecting path (reported as zeroed record)",
			"path", path,
			"err", err,
		)

		return &schema.Metadata{
			Name:     metadata.Name,
			IsHidden: metadata.IsHidden,
		}
	}

	return metadata
}
