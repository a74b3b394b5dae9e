package report

const (
	TokenTypeLBrace = iota
	TokenTypeRBrace
	TokenTypeQuoted
	TokenTypeIdent
	TokenTypeEquals
	TokenTypeComma
)

var TokenMapping = map[TokenType]string{
	TokenTypeLBrace: "{",
	TokenTypeRBrace: "}",
	TokenTypeQuoted: "<string>",
	TokenTypeIdent:  "<identifier>",
	TokenTypeEquals: "=",
	TokenTypeComma:  ",",
}

type TokenType int

type Token struct {
	TokenType TokenType
	StringVal string
	Pos       int
}

type TokenList []Token

func (in TokenList) at(index int) *Token {
	if index < len(in) {
		return &in[index]
	}
	return nil
}
