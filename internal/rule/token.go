package rule

type TokenType int

const (
	EOF TokenType = iota
	WORD
	STRING
	OPERATOR
	AND
	COMMA
	LBRACKET
	RBRACKET
	ILLEGAL
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case STRING:
		return "STRING"
	case OPERATOR:
		return "OPERATOR"
	case AND:
		return "AND"
	case COMMA:
		return "COMMA"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case ILLEGAL:
		return "ILLEGAL"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  TokenType
	Value string
}
