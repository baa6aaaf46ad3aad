//go:build unix

package filesystem

import (
	"fmt"

	"github.com/desertwitch/direntfilter/internal/schema"
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for the filesystem inspection.
type Handler struct {
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(unixHandler unixProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
	}
}

func (f *Handler) establishMetadata(path string, metadata *schema.Metadata) error {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	mode := uint32(stat.Mode) //nolint:unconvert

	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		metadata.IsFile = true
	case unix.S_IFDIR:
		metadata.IsDir = true
	case unix.S_IFLNK:
		metadata.IsSymlink = true
	case unix.S_IFBLK:
		metadata.IsBlockDevice = true
	case unix.S_IFCHR:
		metadata.IsCharDevice = true
	case unix.S_IFSOCK:
		metadata.IsSocket = true
	case unix.S_IFIFO:
		metadata.IsFIFO = true
	}

	metadata.IsReadonly = isReadonly(mode)
	metadata.Len = handleSize(stat.Size)
	metadata.Nlink = uint64(stat.Nlink) //nolint:unconvert
	metadata.Mode = mode
	metadata.UID = stat.Uid
	metadata.GID = stat.Gid
	metadata.Mtime = handleTime(int64(stat.Mtim.Sec)) //nolint:unconvert
	metadata.Atime = handleTime(int64(stat.Atim.Sec)) //nolint:unconvert
	metadata.Ctime = int64(stat.Ctim.Sec)             //nolint:unconvert

	return nil
}
