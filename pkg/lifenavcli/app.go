package lifenavcli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lifenav/lifenav"
	"github.com/lifenav/lifenav/internal/codec"
	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/kv"
	"github.com/lifenav/lifenav/pkg/kv/sqlitekv"
	"github.com/lifenav/lifenav/pkg/logger"
	"github.com/lifenav/lifenav/pkg/store"
	"github.com/rs/zerolog"
)

// App holds the opened navigator and what the commands print to.
type App struct {
	config  *Config
	nav     *lifenav.Navigator
	clock   clock.Clock
	logData *logger.LogData
	log     zerolog.Logger
	logOut  io.Writer
	out     io.Writer
}

// Option adjusts an App before its stores are opened.
type Option func(*App)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(a *App) { a.clock = c }
}

// WithOutput sets where commands print their results. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithLogWriter sends logs to w instead of stderr when no log file is configured.
func WithLogWriter(w io.Writer) Option {
	return func(a *App) { a.logOut = w }
}

// New opens the configured backend and every store on top of it.
func New(ctx context.Context, config *Config, opts ...Option) (*App, error) {
	app := &App{config: config, clock: clock.System{}, out: os.Stdout}
	for _, opt := range opts {
		opt(app)
	}

	build := logger.New().Level(config.LogLevel).Pretty(config.LogPretty).FromPath(config.LogFile)
	if app.logOut != nil {
		build = build.FromBuffer(app.logOut)
	}
	logData, err := build.Make()
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	app.logData = logData
	app.log = logData.Logger

	c, err := codec.ByName(config.Codec)
	if err != nil {
		_ = logData.Close()
		return nil, err
	}

	backend, err := openBackend(config)
	if err != nil {
		_ = logData.Close()
		return nil, err
	}

	references := store.Permissive
	if config.StrictRefs {
		references = store.Strict
	}

	nav, err := lifenav.Open(ctx, lifenav.Config{
		Backend:    backend,
		Codec:      c,
		Clock:      app.clock,
		Logger:     &app.log,
		KeyPrefix:  config.KeyPrefix,
		References: references,
		ReadOnly:   config.ReadOnly,
	})
	if err != nil {
		_ = backend.Close()
		_ = logData.Close()
		return nil, fmt.Errorf("failed to open stores: %w", err)
	}
	app.nav = nav

	app.log.Info().
		Str("backend", config.Backend).
		Str("codec", c.Name()).
		Bool("read_only", config.ReadOnly).
		Msg("lifenav ready")
	return app, nil
}

func openBackend(config *Config) (kv.Backend, error) {
	switch config.Backend {
	case BackendMemory:
		return kv.NewMemory(), nil
	case BackendSQLite, "":
		s, err := sqlitekv.Open(config.DatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite backend: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", config.Backend)
	}
}

// Navigator returns the opened stores.
func (a *App) Navigator() *lifenav.Navigator {
	return a.nav
}

// Close closes the backend and the log file.
func (a *App) Close() error {
	var err error
	if a.nav != nil {
		err = a.nav.Close()
	}
	if cerr := a.logData.Close(); err == nil {
		err = cerr
	}
	return err
}
