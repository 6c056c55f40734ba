package parser

import (
	"errors"

	"github.com/funvibe/rlang/internal/pipeline"
)

var errNoTokens = errors.New("parser: token stream is nil")

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Errors = append(ctx.Errors, errNoTokens)
		return ctx
	}

	// Errors are added to the context by the parser instance.
	New(ctx.TokenStream, ctx).ParseProgram()
	return ctx
}
