// Package values maps [schema.Metadata] attribute records into the generic
// structured values consumed by the expression evaluator.
package values

import (
	"math"

	"github.com/desertwitch/direntfilter/internal/schema"
)

// Keys is the fixed set of keys of every structured value, in the order the
// attributes are declared on [schema.Metadata].
//
//nolint:gochecknoglobals
var Keys = []string{
	"name",
	"is_file",
	"is_dir",
	"is_symlink",
	"is_block_device",
	"is_char_device",
	"is_hidden",
	"is_readonly",
	"is_socket",
	"is_fifo",
	"len",
	"nlink",
	"mode",
	"uid",
	"gid",
	"mtime",
	"atime",
	"ctime",
}

// FromMetadata returns a new structured value for the given record. Values are
// either a string, a bool or an int64, as the evaluator knows only signed
// 64-bit integers. A nil record maps to the zero record, so the key set is
// never incomplete.
func FromMetadata(m *schema.Metadata) map[string]any {
	if m == nil {
		m = &schema.Metadata{}
	}

	return map[string]any{
		"name":            m.Name,
		"is_file":         m.IsFile,
		"is_dir":          m.IsDir,
		"is_symlink":      m.IsSymlink,
		"is_block_device": m.IsBlockDevice,
		"is_char_device":  m.IsCharDevice,
		"is_hidden":       m.IsHidden,
		"is_readonly":     m.IsReadonly,
		"is_socket":       m.IsSocket,
		"is_fifo":         m.IsFIFO,
		"len":             toInt(m.Len),
		"nlink":           toInt(m.Nlink),
		"mode":            int64(m.Mode),
		"uid":             int64(m.UID),
		"gid":             int64(m.GID),
		"mtime":           m.Mtime,
		"atime":           m.Atime,
		"ctime":           m.Ctime,
	}
}

// toInt converts an unsigned attribute, saturating at the largest int64 so
// that huge values never wrap into negative numbers.
func toInt(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(v)
}
