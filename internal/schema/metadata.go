package schema

// Metadata is the attribute record of a single filesystem entry. It always
// describes the entry itself, so a symbolic link is never followed to its
// target. A [Metadata] is recomputed for every input line and never shared.
//
// For entries that do not exist or cannot be inspected, all boolean fields are
// false and all numeric fields are zero. Only Name and IsHidden are populated,
// as they are derived from the path alone.
type Metadata struct {
	Name string

	IsFile        bool
	IsDir         bool
	IsSymlink     bool
	IsBlockDevice bool
	IsCharDevice  bool
	IsSocket      bool
	IsFIFO        bool
	IsHidden      bool
	IsReadonly    bool

	Len   uint64
	Nlink uint64
	Mode  uint32
	UID   uint32
	GID   uint32

	// Seconds since the Unix epoch.
	Mtime int64
	Atime int64
	Ctime int64
}
