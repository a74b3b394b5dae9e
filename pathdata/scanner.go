package pathdata

import (
	"strconv"
)

// Scanner splits path data into command letters and numerals. Anything else
// (commas, whitespace, stray signs, non-ASCII) is a separator and dropped.
type Scanner struct {
}

func NewPathScanner() *Scanner {
	return &Scanner{}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (*Scanner) Scan(data string) TokenList {
	var tokens TokenList
	runes := []rune(data)
	index := 0

	peekAt := func(i int) rune {
		if i < len(runes) {
			return runes[i]
		}
		return 0
	}

	digits := func(i int) int {
		for i < len(runes) && isDigit(runes[i]) {
			i++
		}
		return i
	}

	// number returns the end of the numeral starting at index, or index if
	// there is none: [-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?
	number := func() int {
		i := index
		if r := peekAt(i); r == '-' || r == '+' {
			i++
		}
		switch {
		case isDigit(peekAt(i)):
			i = digits(i)
			if peekAt(i) == '.' {
				i = digits(i + 1)
			}
		case peekAt(i) == '.' && isDigit(peekAt(i+1)):
			i = digits(i + 1)
		default:
			return index
		}

		if r := peekAt(i); r == 'e' || r == 'E' {
			j := i + 1
			if s := peekAt(j); s == '-' || s == '+' {
				j++
			}
			if isDigit(peekAt(j)) {
				i = digits(j)
			}
		}
		return i
	}

	for index < len(runes) {
		r := runes[index]

		if isLetter(r) {
			tokens = append(tokens, Token{
				TokenType: TokenTypeCommand,
				StringVal: string(r),
			})
			index++
			continue
		}

		end := number()
		if end == index {
			// separator or garbage
			index++
			continue
		}

		literal := string(runes[index:end])
		index = end
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			// out of range literals are skipped like any other garbage
			continue
		}
		tokens = append(tokens, Token{
			TokenType: TokenTypeNumber,
			StringVal: literal,
			FloatVal:  f,
		})
	}

	return tokens
}
