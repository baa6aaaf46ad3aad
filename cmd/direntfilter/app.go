package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/desertwitch/direntfilter/internal/configuration"
	"github.com/desertwitch/direntfilter/internal/expression"
	"github.com/desertwitch/direntfilter/internal/filesystem"
	"github.com/desertwitch/direntfilter/internal/filter"
)

type App struct {
	config    *configuration.AppConfiguration
	fsHandler *filesystem.Handler
}

func NewApp(config *configuration.AppConfiguration, fsHandler *filesystem.Handler) *App {
	return &App{
		config:    config,
		fsHandler: fsHandler,
	}
}

// Launch compiles the configured expression and filters r into w. Nothing is
// read from r if the expression does not compile.
func (app *App) Launch(r io.Reader, w io.Writer) error {
	env, err := expression.NewEnvironment(app.config.VarName)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	program, err := env.Compile(app.config.Expression)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	slog.Debug("Compiled expression:",
		"expr", program.Source(),
		"var", program.VarName(),
	)

	filterHandler := filter.NewHandler(app.fsHandler, expression.NewContext(program))

	if err := filterHandler.Run(r, w); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	stats := filterHandler.Stats()
	slog.Debug("Input exhausted:",
		"read", stats.Read,
		"skipped", stats.Skipped,
		"evaluated", stats.Evaluated,
		"accepted", stats.Accepted,
	)

	return nil
}
