package rule

import "strings"

// Tokenizer breaks a description or target text into tokens. Quoted values
// become a single STRING token with the quotes removed.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input, pos: 0}
}

func (t *Tokenizer) Tokenize() []Token {
	tokens := make([]Token, 0)

	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			break
		}

		char := t.input[t.pos]
		switch char {
		case '[':
			t.pos++
			tokens = append(tokens, Token{Type: LBRACKET, Value: "["})
		case ']':
			t.pos++
			tokens = append(tokens, Token{Type: RBRACKET, Value: "]"})
		case ',':
			t.pos++
			tokens = append(tokens, Token{Type: COMMA, Value: ","})
		case '\'', '"':
			tokens = append(tokens, t.readQuoted(char))
		case '=', '!', '<', '>':
			tokens = append(tokens, t.readOperator())
		default:
			word := t.readWord()
			if word == "AND" {
				tokens = append(tokens, Token{Type: AND, Value: word})
				continue
			}
			tokens = append(tokens, Token{Type: WORD, Value: word})
		}
	}

	tokens = append(tokens, Token{Type: EOF, Value: ""})

	return tokens
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && (t.input[t.pos] == ' ' || t.input[t.pos] == '\t' || t.input[t.pos] == '\n' || t.input[t.pos] == '\r') {
		t.pos++
	}
}

func (t *Tokenizer) readOperator() Token {
	rest := t.input[t.pos:]
	for _, op := range []string{"!=", "<=", ">=", "=", "<", ">"} {
		if strings.HasPrefix(rest, op) {
			t.pos += len(op)
			return Token{Type: OPERATOR, Value: op}
		}
	}
	t.pos++
	return Token{Type: ILLEGAL, Value: rest[:1]}
}

// readQuoted consumes a quoted value. A backslash escapes the next byte.
// An unterminated quote yields an ILLEGAL token holding the remainder.
func (t *Tokenizer) readQuoted(quote byte) Token {
	start := t.pos
	t.pos++

	var sb strings.Builder
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		switch {
		case c == '\\' && t.pos+1 < len(t.input):
			sb.WriteByte(t.input[t.pos+1])
			t.pos += 2
		case c == quote:
			t.pos++
			return Token{Type: STRING, Value: sb.String()}
		default:
			sb.WriteByte(c)
			t.pos++
		}
	}

	return Token{Type: ILLEGAL, Value: t.input[start:]}
}

func (t *Tokenizer) readWord() string {
	start := t.pos
	for t.pos < len(t.input) && t.isWordChar(t.input[t.pos]) {
		t.pos++
	}
	return t.input[start:t.pos]
}

func (t *Tokenizer) isWordChar(char byte) bool {
	switch char {
	case ' ', '\t', '\n', '\r', '[', ']', ',', '\'', '"', '=', '!', '<', '>':
		return false
	}
	return true
}
