//go:build !unix

package filesystem

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/desertwitch/direntfilter/internal/schema"
)

type osProvider interface {
	Lstat(name string) (os.FileInfo, error)
}

// Handler is the principal implementation for the filesystem inspection.
//
// Without Unix semantics only the portable attributes are available, so all
// special file classifications, ownership and change/access times remain at
// their zero values. The link count of an existing entry is reported as 1.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

func (f *Handler) establishMetadata(path string, metadata *schema.Metadata) error {
	info, err := f.osHandler.Lstat(path)
	if err != nil {
		return fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	mode := info.Mode()

	metadata.IsFile = mode.IsRegular()
	metadata.IsDir = mode.IsDir()
	metadata.IsSymlink = mode&fs.ModeSymlink != 0
	metadata.IsReadonly = isReadonly(uint32(mode.Perm()))
	metadata.Len = handleSize(info.Size())
	metadata.Nlink = 1
	metadata.Mtime = handleTime(info.ModTime().Unix())

	return nil
}
