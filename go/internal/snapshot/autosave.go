package snapshot

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Snapshotter defines what the autosaver needs from the championship
// registry.
type Snapshotter interface {
	Snapshot() *Document
}

// Autosaver periodically saves the championship and performs one final save
// when its context is cancelled, covering the save-on-exit hook. The clock is
// injected so tests can drive ticks with a fake clock.
type Autosaver struct {
	store    *Store
	source   Snapshotter
	clock    clockwork.Clock
	interval time.Duration
}

// NewAutosaver creates an autosaver saving source to store every interval.
func NewAutosaver(store *Store, source Snapshotter, clock clockwork.Clock, interval time.Duration) *Autosaver {
	return &Autosaver{
		store:    store,
		source:   source,
		clock:    clock,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled, saving on every tick and once more on
// the way out.
func (a *Autosaver) Run(ctx context.Context) {
	ticker := a.clock.NewTicker(a.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", a.interval).Msg("autosaver started")
	for {
		select {
		case <-ctx.Done():
			a.saveOnce()
			log.Info().Msg("autosaver stopped, final snapshot saved")
			return
		case <-ticker.Chan():
			a.saveOnce()
		}
	}
}

// saveOnce saves a snapshot; failures are logged and never escalate, a
// broken disk must not take the championship down.
func (a *Autosaver) saveOnce() {
	doc := a.source.Snapshot()
	if err := a.store.Save(doc); err != nil {
		log.Warn().Err(err).Str("path", a.store.Path()).Msg("snapshot save failed")
		return
	}
	log.Debug().Str("path", a.store.Path()).Msg("snapshot saved")
}
