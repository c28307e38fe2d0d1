package lookml

import "strings"

// Lexer tokenizes LookML input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()
	if l.atEOF() {
		return Token{Type: TokenEOF, Pos: pos}
	}

	var tok Token
	switch l.ch {
	case ':':
		tok = Token{Type: TokenColon, Literal: ":", Pos: pos}
	case ',':
		tok = Token{Type: TokenComma, Literal: ",", Pos: pos}
	case '{':
		tok = Token{Type: TokenLBrace, Literal: "{", Pos: pos}
	case '}':
		tok = Token{Type: TokenRBrace, Literal: "}", Pos: pos}
	case '[':
		tok = Token{Type: TokenLBracket, Literal: "[", Pos: pos}
	case ']':
		tok = Token{Type: TokenRBracket, Literal: "]", Pos: pos}
	case '"':
		return l.readString(pos)
	default:
		if isLiteralChar(l.ch) {
			return Token{Type: TokenLiteral, Literal: l.readLiteral(), Pos: pos}
		}
		tok = Token{Type: TokenIllegal, Literal: "unexpected character " + quoteChar(l.ch), Pos: pos}
	}

	l.readChar()
	return tok
}

// ReadExpression reads raw text up to the ";;" terminator used by sql and
// html parameters. The terminator is consumed and not included.
func (l *Lexer) ReadExpression() Token {
	l.skipWhitespace()
	pos := l.currentPos()
	start := l.pos

	for !l.atEOF() {
		if l.ch == ';' && l.peekChar() == ';' {
			text := l.input[start:l.pos]
			l.readChar() // skip ';'
			l.readChar() // skip ';'
			return Token{Type: TokenExpression, Literal: strings.TrimSpace(text), Pos: pos}
		}
		l.readChar()
	}

	return Token{Type: TokenIllegal, Literal: ErrUnterminatedExpression, Pos: pos}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipWhitespaceAndComments skips whitespace and # line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		l.skipWhitespace()
		if l.ch != '#' {
			return
		}
		for l.ch != '\n' && !l.atEOF() {
			l.readChar()
		}
	}
}

func (l *Lexer) readLiteral() string {
	start := l.pos
	for isLiteralChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString reads a double-quoted string. Only \" and \\ are unescaped;
// other backslash sequences are kept as written.
func (l *Lexer) readString(pos Position) Token {
	var sb strings.Builder
	l.readChar() // skip opening quote

	for {
		switch {
		case l.atEOF():
			return Token{Type: TokenIllegal, Literal: ErrUnterminatedString, Pos: pos}
		case l.ch == '\\' && (l.peekChar() == '"' || l.peekChar() == '\\'):
			l.readChar()
			sb.WriteByte(l.ch)
		case l.ch == '"':
			l.readChar() // skip closing quote
			return Token{Type: TokenString, Literal: sb.String(), Pos: pos}
		default:
			sb.WriteByte(l.ch)
		}
		l.readChar()
	}
}

func isLiteralChar(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	switch ch {
	case '_', '.', '-', '+', '*', '/', '$', '@':
		return true
	}
	return false
}

func quoteChar(ch byte) string {
	return "'" + string(rune(ch)) + "'"
}
