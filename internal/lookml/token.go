package lookml

import "fmt"

// TokenType identifies the kind of a lexical token.
type TokenType int

// Token types produced by the Lexer.
const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenLiteral    // bare word: orders, left_outer, yes, 24
	TokenString     // double-quoted string, quotes removed
	TokenExpression // raw text terminated by ;;

	TokenColon
	TokenComma
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "end of input",
	TokenIllegal:    "illegal",
	TokenLiteral:    "literal",
	TokenString:     "string",
	TokenExpression: "expression",
	TokenColon:      "':'",
	TokenComma:      "','",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Position is a location in the input.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexical token with its position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

func (t Token) String() string {
	switch t.Type {
	case TokenLiteral, TokenString:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	default:
		return t.Type.String()
	}
}
