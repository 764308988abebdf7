package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/five82/todo/internal/logging"
	"github.com/five82/todo/internal/state"
	"github.com/five82/todo/internal/todoapi"
	"github.com/five82/todo/internal/todoapi/mock"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_NeverShorterThanBase(t *testing.T) {
	for _, base := range []time.Duration{30 * time.Second, time.Minute, 5 * time.Minute} {
		for _, failures := range []int{0, 1, 3, 10} {
			if got := calculateBackoff(failures, base); got != base {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", failures, base, got, base)
			}
		}
	}
	for failures := 0; failures <= 20; failures++ {
		if got := calculateBackoff(failures, 20*time.Second); got < 20*time.Second {
			t.Errorf("calculateBackoff(%d, 20s) = %v, shorter than the base interval", failures, got)
		}
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 100; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestRefresh_StoresTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockTaskAPI(ctrl)
	tasks := []todoapi.TaskDto{todoapi.NewTaskDto("1", "1", "a", false)}
	api.EXPECT().ListTasks(gomock.Any()).Return(todoapi.Success(tasks)).Times(1)

	var store state.Store
	err := refresh(context.Background(), &store, api, logging.Nop{})

	require.NoError(t, err)
	snap := store.Snapshot()
	assert.True(t, snap.HasTasks)
	assert.Equal(t, tasks, snap.Tasks)
}

func TestRefresh_RecordsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockTaskAPI(ctrl)
	api.EXPECT().ListTasks(gomock.Any()).
		Return(todoapi.Failure[[]todoapi.TaskDto](todoapi.UnknownAPIError{Code: 500})).Times(1)

	var store state.Store
	err := refresh(context.Background(), &store, api, logging.Nop{})

	assert.Equal(t, todoapi.UnknownAPIError{Code: 500}, err)
	snap := store.Snapshot()
	assert.Equal(t, 1, snap.ConsecutiveFailures)
	assert.ErrorIs(t, snap.LastError, todoapi.UnknownAPIError{Code: 500})
}

func TestStartPoller_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockTaskAPI(ctrl)
	called := make(chan struct{}, 16)
	api.EXPECT().ListTasks(gomock.Any()).DoAndReturn(func(context.Context) todoapi.Result[[]todoapi.TaskDto] {
		called <- struct{}{}
		return todoapi.Success([]todoapi.TaskDto{})
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	var store state.Store
	StartPoller(ctx, &store, api, logging.Nop{}, time.Hour)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not refresh")
	}
	cancel()

	require.Eventually(t, func() bool { return store.Snapshot().HasTasks }, time.Second, 10*time.Millisecond)
}
