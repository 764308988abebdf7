// Package state holds the latest task list shared between the poller and the UI.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/todo/internal/todoapi"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Tasks               []todoapi.TaskDto
	HasTasks            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Counts returns the number of open and finished tasks.
func (s Snapshot) Counts() (open, finished int) {
	for _, t := range s.Tasks {
		if t.IsFinished {
			finished++
		} else {
			open++
		}
	}
	return open, finished
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored task list. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(tasks []todoapi.TaskDto, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Tasks = cloneTasks(tasks)
	s.snapshot.HasTasks = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Tasks = cloneTasks(s.snapshot.Tasks)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTasks(tasks []todoapi.TaskDto) []todoapi.TaskDto {
	if len(tasks) == 0 {
		return nil
	}
	dup := make([]todoapi.TaskDto, len(tasks))
	copy(dup, tasks)
	return dup
}
