package watch

import (
	"context"
	"time"

	"github.com/grephuman/grephuman/pkg/storage"
)

// FileSource emits a mutation event whenever the watched file's mtime or
// size changes. It stands in for structural mutation observation when the
// document lives on disk and is rewritten by another process.
type FileSource struct {
	path     string
	interval time.Duration
	store    *storage.Storage
	events   chan struct{}
}

// NewFileSource polls path at the given interval.
func NewFileSource(path string, interval time.Duration) *FileSource {
	return &FileSource{
		path:     path,
		interval: interval,
		store:    &storage.Storage{},
		events:   make(chan struct{}, 1),
	}
}

// Events returns the mutation signal channel. It is closed when Run
// returns.
func (f *FileSource) Events() <-chan struct{} {
	return f.events
}

// Run polls until ctx is cancelled. A change while a previous signal is
// still pending is coalesced; the watcher debounces anyway.
func (f *FileSource) Run(ctx context.Context) {
	defer close(f.events)

	var last *storage.FileStats
	if stats, err := f.store.GetFileStats(f.path); err == nil {
		last = stats
	}

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats, err := f.store.GetFileStats(f.path)
			if err != nil {
				continue
			}
			if last != nil && stats.ModTime.Equal(last.ModTime) && stats.SizeBytes == last.SizeBytes {
				continue
			}
			last = stats
			select {
			case f.events <- struct{}{}:
			default:
			}
		}
	}
}
