//go:build unix

package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path string
		want string
	}{
		{"/mnt/data/file.txt", "file.txt"},
		{"file.txt", "file.txt"},
		{"/mnt/data/dir/", "dir"},
		{"/mnt/data/dir//", "dir"},
		{"/mnt/data/dir/.", "dir"},
		{"./.bashrc", ".bashrc"},
		{"/mnt/data/..", ""},
		{"..", ""},
		{".", ""},
		{"/", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, entryName(tc.path), "path: %q", tc.path)
	}
}

func TestHandleSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), handleSize(-1))
	assert.Equal(t, uint64(0), handleSize(0))
	assert.Equal(t, uint64(1024), handleSize(1024))
}

func TestIsReadonly(t *testing.T) {
	t.Parallel()

	assert.True(t, isReadonly(0o444))
	assert.True(t, isReadonly(0o555))
	assert.False(t, isReadonly(0o644))
	assert.False(t, isReadonly(0o464))
	assert.False(t, isReadonly(0o446))
}
