package pipeline

import (
	"log"

	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/symbols"
	"github.com/funvibe/rlang/internal/token"
)

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is what the lexer stage hands to the parser.
type TokenStream interface {
	Next() token.Token
	Peek(n int) token.Token
}

// PipelineContext carries one source text through the stages. Globals and
// Locals are supplied by the caller and outlive the run, so several
// contexts (prelude, file, REPL entries) can share one environment.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	Source      *diagnostics.SourceInfo
	TokenStream TokenStream

	Globals *symbols.Bindings
	Locals  *symbols.LocalBindings

	// Logger receives warnings; nil discards them.
	Logger *log.Logger

	Statements int
	Warnings   []string
	Errors     []error
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		SourceCode: sourceCode,
		Globals:    symbols.NewBindings(),
		Locals:     symbols.NewLocalBindings(),
	}
}

// Warn records a warning and forwards it to the logger.
func (ctx *PipelineContext) Warn(msg string) {
	ctx.Warnings = append(ctx.Warnings, msg)
	if ctx.Logger != nil {
		ctx.Logger.Printf("warning: %s", msg)
	}
}
