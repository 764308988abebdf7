// Package app wires configuration, logging, the API client, the poller and
// the user interfaces together.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/five82/todo/internal/config"
	"github.com/five82/todo/internal/logging"
	"github.com/five82/todo/internal/prefs"
	"github.com/five82/todo/internal/state"
	"github.com/five82/todo/internal/todoapi"
	"github.com/five82/todo/internal/ui"
)

// Options configure the todo application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/todo/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
	Endpoint   string // overrides base_endpoint when set
}

// runtime bundles what both the TUI and one-shot commands need.
type runtime struct {
	cfg     config.Config
	client  *todoapi.Client
	log     logging.Logger
	closeFn func()
}

func setup(opts Options) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.BaseEndpoint = opts.Endpoint
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	log := logging.NewLogrus(cfg.LogLevel, out)

	client, err := todoapi.NewClient(cfg.BaseEndpoint, todoapi.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		closeFn()
		return nil, fmt.Errorf("init todo client: %w", err)
	}
	log.Info("app", "using endpoint %s", cfg.BaseEndpoint)

	return &runtime{cfg: cfg, client: client, log: log, closeFn: closeFn}, nil
}

// Run boots the TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.closeFn()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		rt.log.Warning("app", "load prefs: %v", err)
	}

	interval := rt.cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	store := &state.Store{}
	StartPoller(ctx, store, rt.client, rt.log, interval)

	return ui.Run(ui.Options{
		Context:      ctx,
		API:          rt.client,
		Store:        store,
		Endpoint:     rt.cfg.BaseEndpoint,
		PollTick:     time.Second,
		ThemeName:    userPrefs.Theme,
		HideFinished: userPrefs.HideFinished,
		PrefsPath:    opts.PrefsPath,
	})
}
