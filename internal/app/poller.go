package app

import (
	"context"
	"time"

	"github.com/five82/todo/internal/logging"
	"github.com/five82/todo/internal/state"
	"github.com/five82/todo/internal/todoapi"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the API keeps failing. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, api todoapi.TaskAPI, log logging.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, api, log); err != nil {
				failures++
			} else {
				failures = 0
			}
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff. It never returns less than base, so an interval already above
// the cap is left alone.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if base >= maxBackoff {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func refresh(ctx context.Context, store *state.Store, api todoapi.TaskAPI, log logging.Logger) error {
	tasks, err := api.ListTasks(ctx).Unpack()
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Update(nil, err)
		log.Warning("poller", "list tasks failed: %v", err)
		return err
	}
	store.Update(tasks, nil)
	log.Debug("poller", "refreshed %d tasks", len(tasks))
	return nil
}
