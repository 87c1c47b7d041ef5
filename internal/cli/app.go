// Package cli implements the kvconf command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ttd2089/kvconf/config"
	"github.com/ttd2089/kvconf/internal/log"
)

// App holds application state shared across commands.
type App struct {
	Options config.Options
	Logger  zerolog.Logger
	Out     io.Writer
	Err     io.Writer
}

// Load loads the config file at path with the syntax selected on the command line.
func (a *App) Load(path string) (*config.Store, error) {
	return config.Load(path, a.Options)
}

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Captured from flags before Execute()
	Delimiter     string
	CommentMarker string
	LogLevel      string
	Out           io.Writer
	Err           io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

func (p *AppProvider) init() (*App, error) {
	delimiter, err := singleChar("delimiter", p.Delimiter)
	if err != nil {
		return nil, err
	}
	commentMarker, err := singleChar("comment", p.CommentMarker)
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	logger, err := log.New(log.Config{Level: p.LogLevel, Output: errOut})
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	app := &App{
		Logger: logger,
		Out:    out,
		Err:    errOut,
	}
	app.Options = config.Options{
		Delimiter:     delimiter,
		CommentMarker: commentMarker,
		Logger:        &app.Logger,
	}
	return app, nil
}

func singleChar(flag, value string) (byte, error) {
	if len(value) != 1 {
		return 0, fmt.Errorf("--%s must be a single ASCII character, got %q", flag, value)
	}
	return value[0], nil
}
