package lookml

import (
	"fmt"
	"strings"
)

// pluralKeys maps keys that may repeat within a block to the key their
// values are collected under.
var pluralKeys = map[string]string{
	"access_grant":       "access_grants",
	"aggregate_table":    "aggregate_tables",
	"allowed_value":      "allowed_values",
	"constant":           "constants",
	"datagroup":          "datagroups",
	"dimension":          "dimensions",
	"dimension_group":    "dimension_groups",
	"explore":            "explores",
	"filter":             "filters",
	"include":            "includes",
	"join":               "joins",
	"link":               "links",
	"map_layer":          "map_layers",
	"measure":            "measures",
	"named_value_format": "named_value_formats",
	"parameter":          "parameters",
	"query":              "queries",
	"set":                "sets",
	"test":               "tests",
	"view":               "views",
	"when":               "whens",
}

// PluralKey returns the key under which values of key are collected, and
// whether key is repeatable.
func PluralKey(key string) (string, bool) {
	plural, ok := pluralKeys[key]
	return plural, ok
}

// isExpressionKey reports whether the value of key is raw text ending in ;;.
func isExpressionKey(key string) bool {
	if strings.HasPrefix(key, "sql") || strings.HasPrefix(key, "html") {
		return true
	}
	return key == "expression" || key == "expression_custom_filter"
}

// Parser is a recursive-descent parser over a Lexer.
type Parser struct {
	lexer *Lexer
	cur   Token
}

// NewParser creates a parser for input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.next()
	return p
}

// Parse parses a complete LookML document.
func Parse(input string) (map[string]any, error) {
	return NewParser(input).ParseDocument()
}

// ParseDocument parses the top-level pairs of the document.
func (p *Parser) ParseDocument() (map[string]any, error) {
	return p.parsePairs(TokenEOF)
}

func (p *Parser) next() {
	p.cur = p.lexer.NextToken()
}

func (p *Parser) errorf(pos Position, format string, args ...any) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// unexpected builds an error for the current token, preferring the lexer's
// own message for illegal tokens.
func (p *Parser) unexpected(expected string) error {
	if p.cur.Type == TokenIllegal {
		return &ParseError{Pos: p.cur.Pos, Message: p.cur.Literal}
	}
	return p.errorf(p.cur.Pos, ErrUnexpectedToken, p.cur, expected)
}

// parsePairs parses "key: value" pairs until the end token.
// The end token itself is left as the current token.
func (p *Parser) parsePairs(end TokenType) (map[string]any, error) {
	block := make(map[string]any)

	for p.cur.Type != end {
		if p.cur.Type != TokenLiteral {
			expected := "key"
			if end == TokenRBrace {
				expected = "key or '}'"
			}
			return nil, p.unexpected(expected)
		}

		key := p.cur.Literal
		keyPos := p.cur.Pos

		p.next()
		if p.cur.Type != TokenColon {
			return nil, p.unexpected("':'")
		}

		value, err := p.parseValue(key)
		if err != nil {
			return nil, err
		}

		if plural, ok := pluralKeys[key]; ok {
			list, _ := block[plural].([]any)
			block[plural] = append(list, value)
			continue
		}
		if _, exists := block[key]; exists {
			return nil, p.errorf(keyPos, ErrDuplicateKey, key)
		}
		block[key] = value
	}

	return block, nil
}

// parseValue parses the value following "key:". On entry the current token
// is the colon; on return the current token is the one after the value.
func (p *Parser) parseValue(key string) (any, error) {
	if isExpressionKey(key) {
		p.cur = p.lexer.ReadExpression()
		if p.cur.Type != TokenExpression {
			return nil, p.unexpected("expression")
		}
		value := p.cur.Literal
		p.next()
		return value, nil
	}

	p.next()
	switch p.cur.Type {
	case TokenLiteral, TokenString:
		name := p.cur.Literal
		p.next()
		if p.cur.Type == TokenLBrace {
			return p.parseBlock(name, true)
		}
		return name, nil
	case TokenLBrace:
		return p.parseBlock("", false)
	case TokenLBracket:
		return p.parseList()
	default:
		return nil, p.unexpected("value")
	}
}

// parseBlock parses "{ pairs }" with the current token on the opening brace.
func (p *Parser) parseBlock(name string, named bool) (map[string]any, error) {
	p.next()
	block, err := p.parsePairs(TokenRBrace)
	if err != nil {
		return nil, err
	}
	p.next()

	if named {
		block["name"] = name
	}
	return block, nil
}

// parseList parses "[a, "b", c]" with the current token on the opening bracket.
// A trailing comma is accepted. Pair items such as
// [orders.created_date: "7 days"] become single-entry mappings.
func (p *Parser) parseList() ([]any, error) {
	items := make([]any, 0)
	p.next()

	for p.cur.Type != TokenRBracket {
		if !p.isScalar() {
			return nil, p.unexpected("list item or ']'")
		}
		item := p.cur.Literal
		p.next()

		if p.cur.Type == TokenColon {
			p.next()
			if !p.isScalar() {
				return nil, p.unexpected("pair value")
			}
			items = append(items, map[string]any{item: p.cur.Literal})
			p.next()
		} else {
			items = append(items, item)
		}

		switch p.cur.Type {
		case TokenComma:
			p.next()
		case TokenRBracket:
		default:
			return nil, p.unexpected("',' or ']'")
		}
	}
	p.next()

	return items, nil
}

func (p *Parser) isScalar() bool {
	return p.cur.Type == TokenLiteral || p.cur.Type == TokenString
}
