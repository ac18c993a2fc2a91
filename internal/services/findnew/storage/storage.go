// Package storage defines persistence contracts for the duplicate finder.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates no distance is stored for a pair.
var ErrNotFound = errors.New("record not found")

// FileStamp identifies one version of an image file on disk.
type FileStamp struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// PairKey identifies one comparison. Editing either file changes its stamp
// and so misses any distance recorded for the previous contents. Tool names
// the diff executable, since distances from different tools do not mix.
type PairKey struct {
	Tool string
	New  FileStamp
	Old  FileStamp
}

// DistanceStore persists perceptual distances between image pairs.
type DistanceStore interface {
	GetDistance(ctx context.Context, key PairKey) (float64, error)
	PutDistance(ctx context.Context, key PairKey, distance float64) error
}
