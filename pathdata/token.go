package pathdata

const (
	TokenTypeCommand = iota
	TokenTypeNumber
)

var TokenMapping = map[TokenType]string{
	TokenTypeCommand: "<command>",
	TokenTypeNumber:  "<number>",
}

type TokenType int

func (t TokenType) String() string {
	return TokenMapping[t]
}

// Token is either a single command letter or a numeric literal. FloatVal is
// only meaningful for numbers.
type Token struct {
	TokenType TokenType
	StringVal string
	FloatVal  float64
}

func (t *Token) IsCommand() bool {
	return t.TokenType == TokenTypeCommand
}

type TokenList []Token

func (in TokenList) at(index int) *Token {
	if index < len(in) {
		return &in[index]
	}
	return nil
}

// Strings returns the raw text of every token in order.
func (in TokenList) Strings() []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, t.StringVal)
	}
	return out
}
