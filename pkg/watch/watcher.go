// Package watch re-runs labeling while a document keeps changing. A Source
// signals batches of mutations; the watcher debounces those signals so each
// burst of churn produces exactly one relabel pass after the document
// settles.
package watch

import (
	"context"
	"time"

	"github.com/grephuman/grephuman/pkg/debounce"
)

// Source emits one signal per observed batch of document mutations.
type Source interface {
	Events() <-chan struct{}
}

// Watcher couples a mutation source to a relabel callback through a
// debouncer.
type Watcher struct {
	debouncer *debounce.Debouncer
	relabel   func()
}

// New builds a watcher firing relabel after window of mutation silence.
func New(window time.Duration, relabel func()) *Watcher {
	return &Watcher{
		debouncer: debounce.New(window),
		relabel:   relabel,
	}
}

// Run consumes mutation events until ctx is cancelled or the source closes
// its channel. Each event (re)schedules the deferred relabel; only the
// trailing edge of a burst fires.
func (w *Watcher) Run(ctx context.Context, src Source) {
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			w.debouncer.Stop()
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			w.debouncer.Schedule(w.relabel)
		}
	}
}
