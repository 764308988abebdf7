package todoapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// TaskDto is a single task as exposed to callers of the client.
type TaskDto struct {
	ID         string
	UserID     string
	Title      string
	IsFinished bool
}

// NewTaskDto builds a TaskDto. Values are taken as-is; the remote service is
// the source of truth for validity.
func NewTaskDto(id, userID, title string, isFinished bool) TaskDto {
	return TaskDto{
		ID:         id,
		UserID:     userID,
		Title:      title,
		IsFinished: isFinished,
	}
}

// Deleted marks a successful delete.
type Deleted struct{}

// taskPayload mirrors the JSON task object on the wire.
type taskPayload struct {
	ID        flexString `json:"id"`
	UserID    flexString `json:"userId"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
}

func payloadFromTask(t TaskDto) taskPayload {
	return taskPayload{
		ID:        flexString(t.ID),
		UserID:    flexString(t.UserID),
		Title:     t.Title,
		Completed: t.IsFinished,
	}
}

func (p taskPayload) task() TaskDto {
	return NewTaskDto(string(p.ID), string(p.UserID), p.Title, p.Completed)
}

// flexString accepts a JSON string or number and keeps its text form.
// Services disagree on whether ids are strings or integers.
type flexString string

func (s flexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	if trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*s = flexString(n.String())
	return nil
}

func encodeTask(t TaskDto) ([]byte, error) {
	return json.Marshal(payloadFromTask(t))
}

// errNullBody rejects a JSON null where an object or array is required.
var errNullBody = errors.New("response body is null")

func decodeTask(body []byte) (TaskDto, error) {
	var payload *taskPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return TaskDto{}, err
	}
	if payload == nil {
		return TaskDto{}, errNullBody
	}
	return payload.task(), nil
}

func decodeTaskList(body []byte) ([]TaskDto, error) {
	var payload []taskPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	// Only a literal [] is an empty list; null leaves the slice nil.
	if payload == nil {
		return nil, errNullBody
	}
	tasks := make([]TaskDto, 0, len(payload))
	for _, p := range payload {
		tasks = append(tasks, p.task())
	}
	return tasks, nil
}
