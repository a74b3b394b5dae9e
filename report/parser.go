package report

import (
	"errors"
	"fmt"

	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
)

// Selector is a metric name with a fixed label set.
type Selector struct {
	Name   string
	Labels []*prometheus.Label
}

// SelectorParser parses the tokens of a single series selector.
type SelectorParser struct {
	index  int
	tokens TokenList
}

func NewSelectorParser(tokens TokenList) *SelectorParser {
	return &SelectorParser{
		index:  0,
		tokens: tokens,
	}
}

func (p *SelectorParser) hasTokens() bool {
	return p.index < len(p.tokens)
}

func (p *SelectorParser) consume() {
	p.index = p.index + 1
}

func (p *SelectorParser) next() (*Token, error) {
	if !p.hasTokens() {
		return nil, errors.New("unexpected end of stream")
	}
	current := p.index
	p.index = p.index + 1
	return p.tokens.at(current), nil
}

func (p *SelectorParser) peek() (*Token, error) {
	if !p.hasTokens() {
		return nil, errors.New("unexpected end of stream")
	}
	return p.tokens.at(p.index), nil
}

func (p *SelectorParser) expect(t TokenType) (*Token, error) {
	token, err := p.next()
	if err != nil {
		return nil, err
	}

	if token.TokenType == t {
		return token, nil
	}

	return nil, errors.New(fmt.Sprintf("unexpected token, expected %v but got %v:%v at %v", TokenMapping[t], TokenMapping[token.TokenType], token.StringVal, token.Pos))
}

func (p *SelectorParser) label() (*prometheus.Label, error) {
	name, err := p.expect(TokenTypeIdent)
	if err != nil {
		return nil, err
	}

	_, err = p.expect(TokenTypeEquals)
	if err != nil {
		return nil, err
	}

	value, err := p.expect(TokenTypeQuoted)
	if err != nil {
		return nil, err
	}

	return &prometheus.Label{
		Name:  name.StringVal,
		Value: value.StringVal,
	}, nil
}

func (p *SelectorParser) labels() ([]*prometheus.Label, error) {
	var labels []*prometheus.Label
	seen := map[string]bool{}
	for p.hasTokens() {
		la, err := p.peek()
		if err != nil {
			return nil, err
		}
		if la.TokenType == TokenTypeRBrace {
			break
		}

		label, err := p.label()
		if err != nil {
			return nil, err
		}
		if label.Name == "__name__" {
			return nil, errors.New("reserved label: __name__ is set from the metric name")
		}
		if seen[label.Name] {
			return nil, errors.New(fmt.Sprintf("duplicate label: %v", label.Name))
		}
		seen[label.Name] = true
		labels = append(labels, label)

		la, err = p.peek()
		if err != nil {
			return nil, err
		}
		if la.TokenType == TokenTypeComma {
			p.consume()
			continue
		} else if la.TokenType == TokenTypeRBrace {
			break
		} else {
			return nil, errors.New(fmt.Sprintf("unexpected token: expected , or } but got: %v", TokenMapping[la.TokenType]))
		}
	}
	return labels, nil
}

// Parse reads <metric>{<label>="<value>", ...}; the brace part is optional.
func (p *SelectorParser) Parse() (*Selector, error) {
	name, err := p.expect(TokenTypeIdent)
	if err != nil {
		return nil, err
	}

	selector := &Selector{Name: name.StringVal}
	if !p.hasTokens() {
		return selector, nil
	}

	_, err = p.expect(TokenTypeLBrace)
	if err != nil {
		return nil, err
	}
	selector.Labels, err = p.labels()
	if err != nil {
		return nil, err
	}
	_, err = p.expect(TokenTypeRBrace)
	if err != nil {
		return nil, err
	}

	if p.hasTokens() {
		extra, _ := p.peek()
		return nil, errors.New(fmt.Sprintf("unexpected trailing token %v at %v", TokenMapping[extra.TokenType], extra.Pos))
	}
	return selector, nil
}

// ParseSelector scans and parses a selector in one go.
func ParseSelector(data string) (*Selector, error) {
	tokens, err := NewSelectorScanner().Scan(data)
	if err != nil {
		return nil, err
	}
	return NewSelectorParser(tokens).Parse()
}
