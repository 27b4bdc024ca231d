package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"survey-builder/internal/domain/form"
)

// StatusWorker periodically moves scheduled forms forward along
// upcoming, live, closed as their dates pass. It never moves a form back and
// never touches drafts, so statuses set by callers are kept.
type StatusWorker struct {
	store    *form.Store
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewStatusWorker(store *form.Store, interval time.Duration, logger *zap.Logger) *StatusWorker {
	return &StatusWorker{
		store:    store,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (w *StatusWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("status worker started", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("status worker stopped")
			return
		case <-ticker.C:
			if n := w.Sync(); n > 0 {
				w.logger.Info("form statuses refreshed", zap.Int("changed", n))
			}
		}
	}
}

// Sync advances every form whose dates put it further along than its stored
// status and returns how many forms changed. A form updated since the
// snapshot was taken is skipped.
func (w *StatusWorker) Sync() int {
	now := w.now()
	changed := 0
	for _, f := range w.store.List() {
		if f.Status == form.StatusDraft {
			continue
		}
		derived := form.DeriveStatus(f.StartDate, f.EndDate, now)
		if _, ok := w.store.AdvanceStatus(f.ID, f.Status, derived); ok {
			changed++
		}
	}
	return changed
}
