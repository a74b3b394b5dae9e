package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// SelectorScanner tokenizes series selectors like
// icon_conversions{team="design",repo="icons"}.
type SelectorScanner struct {
}

func NewSelectorScanner() *SelectorScanner {
	return &SelectorScanner{}
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	return !first && r >= '0' && r <= '9'
}

func (*SelectorScanner) Scan(data string) (TokenList, error) {
	var tokens TokenList
	runes := []rune(data)
	index := 0

	next := func() rune {
		current := runes[index]
		index = index + 1
		return current
	}

	peek := func() rune {
		return runes[index]
	}

	ident := func(r rune, pos int) Token {
		sb := strings.Builder{}
		sb.WriteRune(r)
		for index < len(runes) && isIdentRune(peek(), false) {
			sb.WriteRune(next())
		}
		return Token{
			TokenType: TokenTypeIdent,
			StringVal: sb.String(),
			Pos:       pos,
		}
	}

	quoted := func(pos int) (Token, error) {
		sb := strings.Builder{}
		for index < len(runes) {
			r := next()
			switch r {
			case '"':
				return Token{
					TokenType: TokenTypeQuoted,
					StringVal: sb.String(),
					Pos:       pos,
				}, nil
			case '\\':
				if index >= len(runes) {
					return Token{}, errors.New("unexpected end of input in escape")
				}
				sb.WriteRune(next())
			default:
				sb.WriteRune(r)
			}
		}
		return Token{}, errors.New(fmt.Sprintf("unterminated string starting at %v", pos))
	}

	for index < len(runes) {
		pos := index
		r := next()

		// ignore whitespace
		if unicode.IsSpace(r) {
			continue
		}

		switch r {
		case '{':
			tokens = append(tokens, Token{TokenType: TokenTypeLBrace, Pos: pos})
		case '}':
			tokens = append(tokens, Token{TokenType: TokenTypeRBrace, Pos: pos})
		case '=':
			tokens = append(tokens, Token{TokenType: TokenTypeEquals, Pos: pos})
		case ',':
			tokens = append(tokens, Token{TokenType: TokenTypeComma, Pos: pos})
		case '"':
			token, err := quoted(pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		default:
			if !isIdentRune(r, true) {
				return nil, errors.New(fmt.Sprintf("invalid character %q at %v", r, pos))
			}
			tokens = append(tokens, ident(r, pos))
		}
	}

	return tokens, nil
}
