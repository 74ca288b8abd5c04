// Package app wires a validated configuration to the filesystem and the
// output stream: load the file, run the search, print the matches.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/corymccarty/minigrep/internal/config"
	"github.com/corymccarty/minigrep/internal/search"
)

// App runs a single search invocation.
type App struct {
	cfg    *config.Config
	out    io.Writer
	logger *log.Logger
}

// New creates an App that writes matching lines to out. Diagnostics go to
// the logger, never to out.
func New(cfg *config.Config, out io.Writer, logger *log.Logger) *App {
	return &App{cfg: cfg, out: out, logger: logger}
}

// Run reads the target file fully into memory, filters its lines, and
// writes every match followed by a newline to the output stream in file
// order. Zero matches is success. Any read failure is fatal and wraps the
// underlying cause.
func (a *App) Run() error {
	contents, err := os.ReadFile(a.cfg.FilePath)
	if err != nil {
		return fmt.Errorf("FILE_READ: cannot read %s: %w", a.cfg.FilePath, err)
	}
	a.logger.Debug("file loaded", "path", a.cfg.FilePath, "bytes", len(contents))

	var results []string
	if a.cfg.IgnoreCase {
		results = search.SearchCaseInsensitive(a.cfg.Query, string(contents))
	} else {
		results = search.Search(a.cfg.Query, string(contents))
	}
	a.logger.Debug("search complete", "query", a.cfg.Query, "matches", len(results))

	for _, line := range results {
		fmt.Fprintln(a.out, line)
	}
	return nil
}
