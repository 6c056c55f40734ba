package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/funvibe/rlang/internal/config"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/lexer"
	"github.com/funvibe/rlang/internal/parser"
	"github.com/funvibe/rlang/internal/pipeline"
	"github.com/funvibe/rlang/internal/symbols"
)

// preludeContext is where failures to open top-level files are reported.
var preludeContext = diagnostics.NewLocation("<prelude>", 0, 0)

// Runner checks source files.
type Runner struct {
	cfg      *config.Config
	stdout   io.Writer
	stderr   io.Writer
	renderer *diagnostics.Renderer
}

func NewRunner(cfg *config.Config, stdout, stderr io.Writer) *Runner {
	return &Runner{
		cfg:      cfg,
		stdout:   stdout,
		stderr:   stderr,
		renderer: diagnostics.NewRenderer(stdout, useColor(cfg.Color, stdout)),
	}
}

// CheckFiles checks every path, each in its own environment, and returns
// 1 if any of them failed.
func (r *Runner) CheckFiles(paths []string) int {
	status := 0
	for _, path := range paths {
		if !r.CheckFile(path) {
			status = 1
		}
	}
	return status
}

// CheckFile runs the prelude and then path in a fresh environment. The
// file's own bindings live in a scope above the prelude's.
func (r *Runner) CheckFile(path string) bool {
	s := r.newSession()
	s.progress("checking %s", path)

	if !r.loadPrelude(s) {
		return false
	}
	scope := s.globals.PushScope()
	ctx, src, err := s.runFile(path, preludeContext)
	if err != nil {
		r.renderer.Render(err, src)
		return false
	}
	if err := s.globals.PopScope(scope); err != nil {
		r.renderer.Render(err, nil)
		return false
	}
	s.progress("%s: %d statements, %d warnings", path, ctx.Statements, len(ctx.Warnings))
	fmt.Fprintf(r.stdout, "ok %s\n", path)
	return true
}

func (r *Runner) loadPrelude(s *session) bool {
	for _, path := range r.cfg.Prelude {
		s.progress("loading prelude %s", path)
		if _, src, err := s.runFile(path, preludeContext); err != nil {
			r.renderer.Render(err, src)
			return false
		}
	}
	return true
}

// session is one environment plus the logger tagged with its run id.
type session struct {
	globals *symbols.Bindings
	locals  *symbols.LocalBindings
	logger  *log.Logger
	verbose bool
}

func (r *Runner) newSession() *session {
	runID := uuid.New().String()
	return &session{
		globals: symbols.NewBindings(),
		locals:  symbols.NewLocalBindings(),
		logger:  log.New(r.stderr, fmt.Sprintf("[%s] ", runID[:8]), 0),
		verbose: r.cfg.Verbose,
	}
}

func (s *session) progress(format string, args ...any) {
	if s.verbose {
		s.logger.Printf(format, args...)
	}
}

// runFile loads path and elaborates it into the session. The returned
// source is the one errors should be excerpted from; it is nil when the
// file could not be read.
func (s *session) runFile(path string, context diagnostics.FileLocation) (*pipeline.PipelineContext, *diagnostics.SourceInfo, error) {
	src, err := diagnostics.LoadSource(path, context)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := s.runSource(src)
	return ctx, src, err
}

func (s *session) runSource(src *diagnostics.SourceInfo) (*pipeline.PipelineContext, error) {
	ctx := pipeline.NewPipelineContext(src.Text)
	ctx.FilePath = src.Filename
	ctx.Source = src
	ctx.Globals = s.globals
	ctx.Locals = s.locals
	ctx.Logger = s.logger

	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	).Run(ctx)

	if len(ctx.Errors) > 0 {
		return ctx, ctx.Errors[0]
	}
	return ctx, nil
}
