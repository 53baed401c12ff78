package parser

import "regexp"

var (
	headerPattern = regexp.MustCompile(`^## Subgroup list (\(.*\)) ##$`)
	recordPattern = regexp.MustCompile(`^s([0-9]+): Description: (.+), Target: (.+)$`)

	// Lines that look structural but fail the full patterns above.
	nearHeaderPattern = regexp.MustCompile(`^##`)
	nearRecordPattern = regexp.MustCompile(`^s[0-9]+:`)
)

type lineKind int

const (
	lineOther lineKind = iota
	lineHeader
	lineRecord
	lineNearMiss
)

// line is one classified report line.
type line struct {
	kind        lineKind
	number      int
	text        string
	header      string
	index       string
	description string
	target      string
}

func classify(number int, text string) line {
	l := line{kind: lineOther, number: number, text: text}

	if m := headerPattern.FindStringSubmatch(text); m != nil {
		l.kind = lineHeader
		l.header = m[1]
		return l
	}
	if m := recordPattern.FindStringSubmatch(text); m != nil {
		l.kind = lineRecord
		l.index = m[1]
		l.description = m[2]
		l.target = m[3]
		return l
	}
	if nearHeaderPattern.MatchString(text) || nearRecordPattern.MatchString(text) {
		l.kind = lineNearMiss
	}
	return l
}
