package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/todo/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = usage
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	endpoint := flag.String("endpoint", "", "override API base endpoint (optional)")
	pollSeconds := flag.Int("poll", 0, "refresh interval in seconds (optional, defaults to config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Endpoint:   *endpoint,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if args := flag.Args(); len(args) > 0 {
		if !app.IsCommand(args[0]) {
			fmt.Fprintf(os.Stderr, "todo: unknown command %q\n", args[0])
			usage()
			return 1
		}
		return app.RunCommand(ctx, opts, args, os.Stdout, os.Stderr)
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "todo: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: todo [flags] [command [args]]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Without a command the interactive task view starts.\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Run \"todo help\" for the command list.\n\nflags:\n")
	flag.PrintDefaults()
}
