package todoapi

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -destination=mock/client.go -package=mock . TaskAPI

// TaskAPI is the set of operations offered by the todo service.
// It is implemented by *Client and can be mocked in tests.
type TaskAPI interface {
	ListTasks(ctx context.Context) Result[[]TaskDto]
	GetTaskByID(ctx context.Context, id string) Result[TaskDto]
	AddTask(ctx context.Context, task TaskDto) Result[TaskDto]
	UpdateTask(ctx context.Context, task TaskDto) Result[TaskDto]
	DeleteTaskByID(ctx context.Context, id string) Result[Deleted]
}

// Ensure Client implements TaskAPI at compile time.
var _ TaskAPI = (*Client)(nil)

const (
	todosPath        = "/todos"
	defaultUserAgent = "todo/0.1"
	requestTimeout   = 10 * time.Second
)

// Client talks to the todo HTTP API. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	exec *Executor
}

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// Option customises NewClient.
type Option func(*clientOptions)

// WithHTTPClient replaces the transport. WithTimeout is ignored when set.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTimeout sets the timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// NewClient builds a Client for the given base endpoint, e.g.
// "https://jsonplaceholder.typicode.com" or "127.0.0.1:3000".
func NewClient(baseEndpoint string, opts ...Option) (*Client, error) {
	o := clientOptions{timeout: requestTimeout, userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}
	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: o.timeout}
	}
	exec, err := NewExecutor(baseEndpoint, hc, o.userAgent)
	if err != nil {
		return nil, err
	}
	return &Client{exec: exec}, nil
}

// ListTasks fetches every task. A literal [] is a successful empty slice;
// a null body is an UnknownAPIError like any other malformed body.
func (c *Client) ListTasks(ctx context.Context) Result[[]TaskDto] {
	return call[[]TaskDto](ctx, c, http.MethodGet, todosPath, nil, decodeTaskList)
}

// GetTaskByID fetches one task.
func (c *Client) GetTaskByID(ctx context.Context, id string) Result[TaskDto] {
	return call[TaskDto](ctx, c, http.MethodGet, taskPath(id), nil, decodeTask)
}

// AddTask creates a task and returns the service's representation of it,
// which may carry a reassigned id.
func (c *Client) AddTask(ctx context.Context, task TaskDto) Result[TaskDto] {
	body, err := encodeTask(task)
	if err != nil {
		return Failure[TaskDto](&TransportError{Op: "encode request", Err: err})
	}
	return call[TaskDto](ctx, c, http.MethodPost, todosPath, body, decodeTask)
}

// UpdateTask replaces the task stored under task.ID.
func (c *Client) UpdateTask(ctx context.Context, task TaskDto) Result[TaskDto] {
	body, err := encodeTask(task)
	if err != nil {
		return Failure[TaskDto](&TransportError{Op: "encode request", Err: err})
	}
	return call[TaskDto](ctx, c, http.MethodPut, taskPath(task.ID), body, decodeTask)
}

// DeleteTaskByID removes a task. Success carries the Deleted marker.
func (c *Client) DeleteTaskByID(ctx context.Context, id string) Result[Deleted] {
	return call[Deleted](ctx, c, http.MethodDelete, taskPath(id), nil, nil)
}

func call[T any](ctx context.Context, c *Client, method, path string, body []byte, decode Decoder[T]) Result[T] {
	if c == nil || c.exec == nil {
		return Failure[T](&TransportError{Op: method + " " + path, Err: errNilClient})
	}
	resp, err := c.exec.Execute(ctx, method, path, nil, body)
	if err != nil {
		if transport, ok := err.(*TransportError); ok {
			return Failure[T](transport)
		}
		return Failure[T](&TransportError{Op: "execute request", Err: err})
	}
	return Interpret(resp.StatusCode, resp.Body, decode)
}

func taskPath(id string) string {
	return todosPath + "/" + id
}
