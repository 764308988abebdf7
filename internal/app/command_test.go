package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/five82/todo/internal/exitcode"
	"github.com/five82/todo/internal/logging"
	"github.com/five82/todo/internal/todoapi"
	"github.com/five82/todo/internal/todoapi/mock"
)

func runWith(t *testing.T, setup func(api *mock.MockTaskAPI), args ...string) (int, string, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockTaskAPI(ctrl)
	if setup != nil {
		setup(api)
	}
	var stdout, stderr bytes.Buffer
	code := runCommand(context.Background(), api, logging.Nop{}, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCommand_List(t *testing.T) {
	code, out, _ := runWith(t, func(api *mock.MockTaskAPI) {
		api.EXPECT().ListTasks(gomock.Any()).Return(todoapi.Success([]todoapi.TaskDto{
			todoapi.NewTaskDto("1", "1", "delectus aut autem", false),
			todoapi.NewTaskDto("2", "1", "quis ut nam", true),
		})).Times(1)
	}, "list")

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "[ ]    1  delectus aut autem\n[x]    2  quis ut nam\n2 tasks, 1 finished\n", out)
}

func TestRunCommand_GetNotFound(t *testing.T) {
	code, out, errOut := runWith(t, func(api *mock.MockTaskAPI) {
		api.EXPECT().GetTaskByID(gomock.Any(), "99").
			Return(todoapi.Failure[todoapi.TaskDto](todoapi.ErrItemNotFound)).Times(1)
	}, "get", "99")

	assert.Equal(t, exitcode.UserError, code)
	assert.Empty(t, out)
	assert.Equal(t, "todo: task not found\n", errOut)
}

func TestRunCommand_AddSendsTask(t *testing.T) {
	code, out, _ := runWith(t, func(api *mock.MockTaskAPI) {
		api.EXPECT().AddTask(gomock.Any(), todoapi.NewTaskDto("", "4", "Write docs", true)).
			Return(todoapi.Success(todoapi.NewTaskDto("201", "4", "Write docs", true))).Times(1)
	}, "add", "-user", "4", "-done", "Write", "docs")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "created task 201\n")
	assert.Contains(t, out, "[x]  201  Write docs\n")
}

func TestRunCommand_AddRequiresTitle(t *testing.T) {
	code, _, errOut := runWith(t, nil, "add", "   ")

	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, errOut, "usage: todo")
}

func TestRunCommand_DoneFetchesThenUpdates(t *testing.T) {
	code, out, _ := runWith(t, func(api *mock.MockTaskAPI) {
		gomock.InOrder(
			api.EXPECT().GetTaskByID(gomock.Any(), "3").
				Return(todoapi.Success(todoapi.NewTaskDto("3", "1", "fugiat", false))),
			api.EXPECT().UpdateTask(gomock.Any(), todoapi.NewTaskDto("3", "1", "fugiat", true)).
				Return(todoapi.Success(todoapi.NewTaskDto("3", "1", "fugiat", true))),
		)
	}, "done", "3")

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "[x]    3  fugiat\n", out)
}

func TestRunCommand_RemoveReportsBackendError(t *testing.T) {
	code, _, errOut := runWith(t, func(api *mock.MockTaskAPI) {
		api.EXPECT().DeleteTaskByID(gomock.Any(), "1").
			Return(todoapi.Failure[todoapi.Deleted](todoapi.UnknownAPIError{Code: 500})).Times(1)
	}, "rm", "1")

	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "todo: api returned status 500\n", errOut)
}

func TestRunCommand_RemoveSuccess(t *testing.T) {
	code, out, _ := runWith(t, func(api *mock.MockTaskAPI) {
		api.EXPECT().DeleteTaskByID(gomock.Any(), "1").Return(todoapi.Success(todoapi.Deleted{})).Times(1)
	}, "rm", "1")

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "deleted task 1\n", out)
}

func TestRunCommand_TransportFailure(t *testing.T) {
	code, _, errOut := runWith(t, func(api *mock.MockTaskAPI) {
		api.EXPECT().ListTasks(gomock.Any()).Return(todoapi.Failure[[]todoapi.TaskDto](
			&todoapi.TransportError{Op: "execute request", Err: errors.New("connection refused")},
		)).Times(1)
	}, "list")

	assert.Equal(t, exitcode.BackendError, code)
	assert.Contains(t, errOut, "cannot reach api")
}

func TestRunCommand_UnknownCommandAndMissingArgs(t *testing.T) {
	code, _, errOut := runWith(t, nil, "frobnicate")
	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, errOut, "usage: todo")

	code, _, _ = runWith(t, nil, "get")
	assert.Equal(t, exitcode.UserError, code)

	code, _, _ = runWith(t, nil)
	assert.Equal(t, exitcode.UserError, code)
}

func TestIsCommand(t *testing.T) {
	for _, name := range []string{"list", "get", "add", "done", "undo", "rm", "help"} {
		assert.True(t, IsCommand(name), name)
	}
	assert.False(t, IsCommand("-config"))
	assert.False(t, IsCommand(""))
}
