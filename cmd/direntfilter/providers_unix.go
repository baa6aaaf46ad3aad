//go:build unix

package main

import (
	"github.com/desertwitch/direntfilter/internal/filesystem"
	"github.com/desertwitch/direntfilter/internal/schema"
)

func newFilesystemHandler() *filesystem.Handler {
	return filesystem.NewHandler(&schema.Unix{})
}
