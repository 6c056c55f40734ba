package parser

import (
	"github.com/funvibe/rlang/internal/diagnostics"
	"github.com/funvibe/rlang/internal/pipeline"
	"github.com/funvibe/rlang/internal/token"
)

// Parser reads statements and elaborates them straight into the
// environment of its context: there is no intermediate syntax tree, each
// construct is handed to the analyzer builders as soon as it is read.
type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// secondPeek looks one token past peekToken.
func (p *Parser) secondPeek() token.Token { return p.stream.Peek(0) }

// expectPeek advances when peekToken has one of the wanted types and fails
// with UnexpectedToken otherwise.
func (p *Parser) expectPeek(wanted ...token.TokenType) error {
	for _, t := range wanted {
		if p.peekTokenIs(t) {
			p.nextToken()
			return nil
		}
	}
	return p.unexpected(p.peekToken, wanted...)
}

func (p *Parser) unexpected(tok token.Token, wanted ...token.TokenType) error {
	expected := make([]string, len(wanted))
	for i, t := range wanted {
		expected[i] = string(t)
	}
	return diagnostics.New(diagnostics.UnexpectedToken{Found: tok.Describe(), Expected: expected}, p.location(tok))
}

func (p *Parser) location(tok token.Token) diagnostics.FileLocation {
	return diagnostics.NewLocation(p.ctx.FilePath, tok.Line, tok.Column)
}

func (p *Parser) curLocation() diagnostics.FileLocation { return p.location(p.curToken) }

// ident interns the identifier under curToken.
func (p *Parser) ident() int { return p.ctx.Globals.ID(p.curToken.Lexeme) }

// ParseProgram elaborates statements until the end of input. It stops at
// the first error, which is returned and also recorded in the context.
func (p *Parser) ParseProgram() error {
	for !p.curTokenIs(token.EOF) {
		if err := p.parseStatement(); err != nil {
			p.ctx.Errors = append(p.ctx.Errors, err)
			return err
		}
		p.ctx.Statements++
		p.nextToken()
	}
	return nil
}
