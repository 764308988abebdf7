// Package todoapi provides an HTTP client for a remote todo collection.
//
// # Overview
//
// The client issues GET/POST/PUT/DELETE requests against the /todos
// endpoints of a JSON API (jsonplaceholder.typicode.com by default), decodes
// task records and turns every non-success outcome into one of a small, closed
// set of error values. Outcomes are returned as data: no operation panics or
// returns a bare transport error to the caller.
//
// # Architecture
//
// The package is split by responsibility:
//
//   - types.go: TaskDto and the wire payload (completed ↔ IsFinished)
//   - errors.go: the APIError taxonomy
//   - result.go: Result[T], the success-or-error container
//   - executor.go: one HTTP round trip against the base endpoint
//   - interpreter.go: status/body classification and decoding
//   - client.go: the public operations
//
// # Client Usage
//
//	client, err := todoapi.NewClient("https://jsonplaceholder.typicode.com")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	tasks, err := client.ListTasks(ctx).Unpack()
//	if err != nil {
//		log.Printf("list failed: %v", err)
//	}
//
//	res := client.GetTaskByID(ctx, "1")
//	if todoapi.IsNotFound(res.Err()) {
//		// 404
//	}
//
// # API Endpoints
//
//   - GET /todos: every task, as a JSON array
//   - GET /todos/{id}: one task, or 404
//   - POST /todos: create from a JSON task body
//   - PUT /todos/{id}: replace from a JSON task body
//   - DELETE /todos/{id}: remove, or 404
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json (and Content-Type when a body is sent)
//   - Include User-Agent: todo/0.1
//   - Perform exactly one round trip; nothing is retried or cached
//
// # Error Handling
//
// Status codes are classified in this order:
//
//   - 404: ErrItemNotFound, whatever the body
//   - 200-299: decoded value, or UnknownAPIError{Code} if the body is malformed
//   - anything else: UnknownAPIError{Code}
//
// Failures before a status is received (connection refused, timeout, DNS)
// are reported as *TransportError, which unwraps to the underlying error.
//
// # Thread Safety
//
// Client holds only its base endpoint and transport. It is safe for
// concurrent use; calls share no mutable state.
package todoapi
