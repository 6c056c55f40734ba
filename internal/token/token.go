package token

type TokenType string

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT TokenType = "IDENT"

	// Punctuation
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
	DOT       TokenType = "."
	COMMA     TokenType = ","
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	ARROW     TokenType = "->"
	ASSIGN    TokenType = "="
	TILDE     TokenType = "~"

	// Statement keywords
	TYPE    TokenType = "type"
	LET     TokenType = "let"
	DEF     TokenType = "def"
	AXIOM   TokenType = "axiom"
	SECTION TokenType = "section"

	// Binders and constants
	FORALL TokenType = "forall"
	SCHEMA TokenType = "schema"
	FALSE  TokenType = "false"

	// Meta-types
	META_TYPE    TokenType = "Type"
	META_TERM    TokenType = "Term"
	META_FORMULA TokenType = "Formula"
	META_SCHEMA  TokenType = "Schema"
)

var keywords = map[string]TokenType{
	"type":    TYPE,
	"let":     LET,
	"def":     DEF,
	"axiom":   AXIOM,
	"section": SECTION,
	"forall":  FORALL,
	"schema":  SCHEMA,
	"false":   FALSE,
	"Type":    META_TYPE,
	"Term":    META_TERM,
	"Formula": META_FORMULA,
	"Schema":  META_SCHEMA,
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsMetaKeyword reports whether t starts a meta-type.
func IsMetaKeyword(t TokenType) bool {
	switch t {
	case META_TYPE, META_TERM, META_FORMULA, META_SCHEMA:
		return true
	}
	return false
}

// Describe renders a token for diagnostics: identifiers by their text,
// everything else by its type.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of file"
	case IDENT, ILLEGAL:
		return t.Lexeme
	default:
		return string(t.Type)
	}
}
