package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/five82/todo/internal/exitcode"
	"github.com/five82/todo/internal/logging"
	"github.com/five82/todo/internal/output"
	"github.com/five82/todo/internal/todoapi"
)

const commandUsage = `usage: todo [flags] [command]

With no command, the interactive task view is started.

commands:
  list                        list every task
  get ID                      show one task
  add [-user ID] [-done] TITLE  create a task
  done ID                     mark a task finished
  undo ID                     mark a task open
  rm ID                       delete a task
`

// IsCommand reports whether name is a one-shot command.
func IsCommand(name string) bool {
	switch name {
	case "list", "ls", "get", "add", "done", "undo", "rm", "delete", "help":
		return true
	}
	return false
}

// RunCommand executes one command against the configured endpoint and
// returns the process exit code.
func RunCommand(ctx context.Context, opts Options, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "help" {
		fmt.Fprint(stdout, commandUsage)
		return exitcode.Success
	}
	rt, err := setup(opts)
	if err != nil {
		fmt.Fprintf(stderr, "todo: %v\n", err)
		return exitcode.ConfigError
	}
	defer rt.closeFn()
	return runCommand(ctx, rt.client, rt.log, args, stdout, stderr)
}

var errUsage = errors.New("usage")

func runCommand(ctx context.Context, api todoapi.TaskAPI, log logging.Logger, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, commandUsage)
		return exitcode.UserError
	}

	name, rest := args[0], args[1:]
	err := dispatch(ctx, api, name, rest, stdout, stderr)
	switch {
	case err == nil:
		log.Info("cli", "%s %s: ok", name, strings.Join(rest, " "))
		return exitcode.Success
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, commandUsage)
		return exitcode.UserError
	}

	log.Warning("cli", "%s %s: %v", name, strings.Join(rest, " "), err)
	fmt.Fprintf(stderr, "todo: %s\n", output.DescribeError(err))
	return exitcode.FromAPIError(err)
}

func dispatch(ctx context.Context, api todoapi.TaskAPI, name string, args []string, stdout, stderr io.Writer) error {
	switch name {
	case "list", "ls":
		if len(args) != 0 {
			return errUsage
		}
		tasks, err := api.ListTasks(ctx).Unpack()
		if err != nil {
			return err
		}
		output.FormatTasks(stdout, tasks)
		return nil

	case "get":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		task, err := api.GetTaskByID(ctx, id).Unpack()
		if err != nil {
			return err
		}
		output.FormatTaskDetail(stdout, task)
		return nil

	case "add":
		task, err := parseAdd(args, stderr)
		if err != nil {
			return err
		}
		created, err := api.AddTask(ctx, task).Unpack()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "created task %s\n", created.ID)
		output.FormatTask(stdout, created)
		return nil

	case "done", "undo":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		updated, err := setFinished(ctx, api, id, name == "done")
		if err != nil {
			return err
		}
		output.FormatTask(stdout, updated)
		return nil

	case "rm", "delete":
		id, err := singleID(args)
		if err != nil {
			return err
		}
		if _, err := api.DeleteTaskByID(ctx, id).Unpack(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "deleted task %s\n", id)
		return nil
	}
	return errUsage
}

// setFinished fetches a task and writes it back with the new state.
func setFinished(ctx context.Context, api todoapi.TaskAPI, id string, finished bool) (todoapi.TaskDto, error) {
	task, err := api.GetTaskByID(ctx, id).Unpack()
	if err != nil {
		return todoapi.TaskDto{}, err
	}
	task.IsFinished = finished
	return api.UpdateTask(ctx, task).Unpack()
}

func singleID(args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", errUsage
	}
	return strings.TrimSpace(args[0]), nil
}

func parseAdd(args []string, stderr io.Writer) (todoapi.TaskDto, error) {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	userID := fs.String("user", "1", "owner user id")
	done := fs.Bool("done", false, "create the task already finished")
	if err := fs.Parse(args); err != nil {
		return todoapi.TaskDto{}, errUsage
	}
	title := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if title == "" {
		return todoapi.TaskDto{}, errUsage
	}
	return todoapi.NewTaskDto("", *userID, title, *done), nil
}
