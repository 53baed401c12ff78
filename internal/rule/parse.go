package rule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
)

var subgroupPattern = regexp.MustCompile(`^Description: (.*), Target: (.+)$`)

// Parse reads the textual form of a subgroup,
// "Description: <description>, Target: <attribute> = <value>".
// The description may be the bracketed list written by the miner or a
// plain "cond AND cond" conjunction.
func Parse(text string) (Subgroup, error) {
	m := subgroupPattern.FindStringSubmatch(text)
	if m == nil {
		return Subgroup{}, apperr.NewPredicateSyntax(text, `expected "Description: ..., Target: ..."`)
	}

	desc, err := ParseDescription(m[1])
	if err != nil {
		return Subgroup{}, apperr.NewPredicateSyntax(text, err.Error())
	}

	target, err := ParseTarget(m[2])
	if err != nil {
		return Subgroup{}, apperr.NewPredicateSyntax(text, err.Error())
	}

	return Subgroup{Description: desc, Target: target}, nil
}

func ParseDescription(text string) (Description, error) {
	p := newTokenParser(text)

	if p.peek().Type == LBRACKET {
		p.next()
		return p.parseList()
	}
	return p.parseConjunction()
}

// ParseTarget reads "<attribute> = <value>".
func ParseTarget(text string) (Target, error) {
	p := newTokenParser(text)
	c, err := p.parseCondition()
	if err != nil {
		return Target{}, fmt.Errorf("target: %w", err)
	}
	if c.Operator != Equal {
		return Target{}, fmt.Errorf("target: operator must be %q, got %q", Equal, c.Operator)
	}
	if tok := p.next(); tok.Type != EOF {
		return Target{}, fmt.Errorf("target: unexpected %s %q", tok.Type, tok.Value)
	}
	return Target{Attribute: c.Attribute, Value: c.Value}, nil
}

type tokenParser struct {
	tokens []Token
	pos    int
}

func newTokenParser(text string) *tokenParser {
	return &tokenParser{tokens: NewTokenizer(text).Tokenize()}
}

func (p *tokenParser) peek() Token {
	return p.tokens[p.pos]
}

func (p *tokenParser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *tokenParser) parseList() (Description, error) {
	var conds []Condition

	if p.peek().Type == RBRACKET {
		p.next()
		return Description{}, p.expectEOF()
	}

	for {
		c, err := p.parseCondition()
		if err != nil {
			return Description{}, err
		}
		conds = append(conds, c)

		switch tok := p.next(); tok.Type {
		case COMMA:
			continue
		case RBRACKET:
			return NewDescription(conds...), p.expectEOF()
		default:
			return Description{}, fmt.Errorf("expected ',' or ']', got %s %q", tok.Type, tok.Value)
		}
	}
}

func (p *tokenParser) parseConjunction() (Description, error) {
	var conds []Condition

	if p.peek().Type == EOF {
		return Description{}, nil
	}

	for {
		c, err := p.parseCondition()
		if err != nil {
			return Description{}, err
		}
		conds = append(conds, c)

		switch tok := p.next(); tok.Type {
		case AND:
			continue
		case EOF:
			return NewDescription(conds...), nil
		default:
			return Description{}, fmt.Errorf("expected AND, got %s %q", tok.Type, tok.Value)
		}
	}
}

func (p *tokenParser) parseCondition() (Condition, error) {
	attr := p.readWords()
	if attr == "" {
		tok := p.peek()
		return Condition{}, fmt.Errorf("expected attribute, got %s %q", tok.Type, tok.Value)
	}

	tok := p.next()
	if tok.Type != OPERATOR {
		return Condition{}, fmt.Errorf("expected operator after %q, got %s %q", attr, tok.Type, tok.Value)
	}
	op, err := ParseOperator(tok.Value)
	if err != nil {
		return Condition{}, err
	}

	if p.peek().Type == STRING {
		return Condition{Attribute: attr, Operator: op, Value: Quoted(p.next().Value)}, nil
	}

	value := p.readWords()
	if value == "" {
		tok := p.peek()
		return Condition{}, fmt.Errorf("expected value for %q, got %s %q", attr, tok.Type, tok.Value)
	}
	return Condition{Attribute: attr, Operator: op, Value: Bare(value)}, nil
}

// readWords joins consecutive WORD tokens with single spaces, so attribute
// names and bare values may contain spaces.
func (p *tokenParser) readWords() string {
	var words []string
	for p.peek().Type == WORD {
		words = append(words, p.next().Value)
	}
	return strings.Join(words, " ")
}

func (p *tokenParser) expectEOF() error {
	if tok := p.next(); tok.Type != EOF {
		return fmt.Errorf("unexpected %s %q after description", tok.Type, tok.Value)
	}
	return nil
}
