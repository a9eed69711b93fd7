// Package gos hides the file system from the frame sources: the web build has
// none, so image paths resolve to ErrNotExist there.
package gos

import (
	"errors"
	"time"
)

var ErrNotExist = errors.New("file does not exist (oswrap)")

// FileInfo
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Stat(name) (FileInfo, error)
// ReadFile(name) ([]byte, error)
// IsNotExist(err error) bool
