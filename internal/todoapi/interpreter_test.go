package todoapi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_NotFoundWinsOverBody(t *testing.T) {
	res := Interpret[TaskDto](http.StatusNotFound, []byte(`{"id":"1"}`), decodeTask)

	assert.Equal(t, ErrItemNotFound, res.Err())
	_, ok := res.Value()
	assert.False(t, ok)
}

func TestInterpret_SuccessRange(t *testing.T) {
	for _, status := range []int{200, 201, 204, 299} {
		res := Interpret[TaskDto](status, []byte(`{"id":"1","userId":"1","title":"t","completed":true}`), decodeTask)
		task, err := res.Unpack()
		require.NoError(t, err, "status %d", status)
		assert.Equal(t, NewTaskDto("1", "1", "t", true), task)
	}
}

func TestInterpret_NilDecoderYieldsUnit(t *testing.T) {
	res := Interpret[Deleted](http.StatusOK, nil, nil)

	v, ok := res.Value()
	assert.True(t, ok)
	assert.Equal(t, Deleted{}, v)
	assert.Nil(t, res.Err())
}

func TestInterpret_DecodeFailureKeepsStatus(t *testing.T) {
	decode := Decoder[int](func([]byte) (int, error) { return 0, errors.New("boom") })

	res := Interpret(http.StatusAccepted, []byte("x"), decode)

	assert.Equal(t, UnknownAPIError{Code: http.StatusAccepted}, res.Err())
}

func TestInterpret_OtherStatuses(t *testing.T) {
	called := false
	decode := Decoder[int](func([]byte) (int, error) {
		called = true
		return 1, nil
	})
	for _, status := range []int{100, 199, 300, 304, 400, 403, 405, 500, 503, 599} {
		res := Interpret(status, nil, decode)
		assert.Equal(t, UnknownAPIError{Code: status}, res.Err(), "status %d", status)
	}
	assert.False(t, called, "decoder must only run for 2xx")
}

func TestInterpret_EmptyListBody(t *testing.T) {
	tasks, err := Interpret[[]TaskDto](http.StatusOK, []byte("[]"), decodeTaskList).Unpack()

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Len(t, tasks, 0)
}

func TestInterpret_EmptyBodyForTaskIsUnknown(t *testing.T) {
	res := Interpret[TaskDto](http.StatusOK, nil, decodeTask)

	assert.Equal(t, UnknownAPIError{Code: http.StatusOK}, res.Err())
}
