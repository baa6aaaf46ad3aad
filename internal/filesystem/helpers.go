package filesystem

import (
	"path/filepath"
	"strings"
)

const (
	unixWritePerms = 0o222
)

// entryName returns the final component of a path. Trailing separators and
// "." components are ignored, while a path ending in ".." or consisting only
// of separators has no final component and yields an empty name.
func entryName(path string) string {
	for {
		path = strings.TrimRight(path, string(filepath.Separator))
		if path == "" {
			return ""
		}

		switch base := filepath.Base(path); base {
		case "..":
			return ""

		case ".":
			path = path[:len(path)-1]

		default:
			return base
		}
	}
}

func isReadonly(mode uint32) bool {
	return mode&unixWritePerms == 0
}

func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}

func handleTime(sec int64) int64 {
	if sec < 0 {
		return 0
	}

	return sec
}
