//go:build !unix

package schema

import (
	"os"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Lstat wraps around [os.Lstat].
func (*OS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}
