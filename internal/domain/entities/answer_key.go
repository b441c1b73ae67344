package entities

import "strings"

// AnswerKeyKind tells how an answer key references the correct answer.
type AnswerKeyKind int

const (
	AnswerKeyLiteral AnswerKeyKind = iota // the key is the correct answer text
	AnswerKeyLabeled                      // the key is a label pointing into the choices list
)

// String returns a readable kind name.
func (k AnswerKeyKind) String() string {
	switch k {
	case AnswerKeyLabeled:
		return "labeled"
	default:
		return "literal"
	}
}

// Choice labels in the order of the local alphabet.
const (
	LabelAlef = "ا"
	LabelBa   = "ب"
	LabelJim  = "ج"
)

// LabelCount is the number of choice positions a label can address.
const LabelCount = 3

var choiceLabels = map[string]int{
	LabelAlef: 0,
	LabelBa:   1,
	LabelJim:  2,
}

// AnswerKey is a parsed answer key: either a literal answer text
// or a label referencing a zero-based position in the choices list.
type AnswerKey struct {
	Kind  AnswerKeyKind // literal or labeled
	Text  string        // trimmed raw key
	Index int           // choice position, labeled keys only
}

// ParseAnswerKey parses a raw answer key from the question bank.
func ParseAnswerKey(raw string) AnswerKey {
	text := strings.TrimSpace(raw)
	if idx, ok := LabelIndex(text); ok {
		return AnswerKey{Kind: AnswerKeyLabeled, Text: text, Index: idx}
	}
	return AnswerKey{Kind: AnswerKeyLiteral, Text: text}
}

// LabelIndex returns the choice position of a label and whether s is a label.
func LabelIndex(s string) (int, bool) {
	idx, ok := choiceLabels[s]
	return idx, ok
}

// IsLabeled reports whether the key references a choice position.
func (k AnswerKey) IsLabeled() bool {
	return k.Kind == AnswerKeyLabeled
}

// Resolve returns the correct answer text for the key given the canonical choices.
// A labeled key without choices, or pointing past the end of them, is taken literally.
func (k AnswerKey) Resolve(choices []string) string {
	if k.Kind == AnswerKeyLabeled && choices != nil && k.Index < len(choices) {
		return choices[k.Index]
	}
	return k.Text
}
