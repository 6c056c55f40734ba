package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/rlang/internal/config"
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/pipeline"
)

// REPL reads statements interactively into a single environment. An entry
// that fails leaves the environment as it was before the entry.
func (r *Runner) REPL() int {
	s := r.newSession()
	if !r.loadPrelude(s) {
		return 1
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := r.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for entry := 1; ; {
		line, err := ln.Prompt(config.ReplPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(r.stdout)
			return 0
		}
		if err != nil {
			fmt.Fprintf(r.stderr, "rlang: %s\n", err)
			return 1
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return 0
		}
		ln.AppendHistory(line)

		name := fmt.Sprintf("<repl:%d>", entry)
		entry++
		src := diagnostics.SourceFromString(name, line)
		if _, err := s.eval(src); err != nil {
			r.renderer.Render(err, src)
			continue
		}
		fmt.Fprintln(r.stdout, "ok")
	}
}

// eval runs one entry in a scope of its own. On success the scope is
// merged into the environment; on failure it is dropped and the names the
// entry interned are forgotten.
func (s *session) eval(src *diagnostics.SourceInfo) (*pipeline.PipelineContext, error) {
	mark := s.globals.IDs().Mark()
	scope := s.globals.PushScope()
	ctx, err := s.runSource(src)
	if err != nil {
		if perr := s.globals.PopScope(scope); perr != nil {
			return ctx, perr
		}
		if rerr := s.globals.IDs().Rollback(mark); rerr != nil {
			return ctx, rerr
		}
		return ctx, err
	}
	return ctx, s.globals.CommitScope(scope)
}

// historyPath resolves the configured history file; relative names live
// in the home directory. History is off in test mode.
func (r *Runner) historyPath() string {
	if config.IsTestMode || r.cfg.History == "" {
		return ""
	}
	if filepath.IsAbs(r.cfg.History) {
		return r.cfg.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, r.cfg.History)
}
