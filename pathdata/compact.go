package pathdata

import (
	"strings"
)

// Compact joins tokens with the fewest separators that keep the result
// parseable: a space only between a digit and a numeral not starting with '-'.
func Compact(tokens []string) string {
	sb := strings.Builder{}
	var last byte
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if !(len(t) == 1 && isLetter(rune(t[0]))) && isDigit(rune(last)) && t[0] != '-' {
			sb.WriteByte(' ')
		}
		sb.WriteString(t)
		last = t[len(t)-1]
	}
	return sb.String()
}

// Rewrite tokenizes d, rescales it under ctx and compacts the result.
func Rewrite(d string, ctx Context) string {
	tokens := NewPathScanner().Scan(d)
	return Compact(NewTransformer(nil, ctx).Transform(tokens))
}
