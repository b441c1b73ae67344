package entities_test

import (
	"testing"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

func TestParseAnswerKey(t *testing.T) {
	tests := []struct {
		raw   string
		kind  entities.AnswerKeyKind
		text  string
		index int
	}{
		{"ا", entities.AnswerKeyLabeled, "ا", 0},
		{" ب ", entities.AnswerKeyLabeled, "ب", 1},
		{"ج", entities.AnswerKeyLabeled, "ج", 2},
		{"د", entities.AnswerKeyLiteral, "د", 0},
		{" صح", entities.AnswerKeyLiteral, "صح", 0},
		{"", entities.AnswerKeyLiteral, "", 0},
	}

	for _, tt := range tests {
		key := entities.ParseAnswerKey(tt.raw)
		if key.Kind != tt.kind || key.Text != tt.text || key.Index != tt.index {
			t.Errorf("ParseAnswerKey(%q) = %+v, want kind=%v text=%q index=%d", tt.raw, key, tt.kind, tt.text, tt.index)
		}
	}
}

func TestAnswerKey_Resolve(t *testing.T) {
	choices := []string{"one", "two", "three"}

	if got := entities.ParseAnswerKey("ج").Resolve(choices); got != "three" {
		t.Errorf("expected %q, got %q", "three", got)
	}
	if got := entities.ParseAnswerKey("ج").Resolve(choices[:2]); got != "ج" {
		t.Errorf("expected out-of-range label to resolve literally, got %q", got)
	}
	if got := entities.ParseAnswerKey("ا").Resolve(nil); got != "ا" {
		t.Errorf("expected label without choices to resolve literally, got %q", got)
	}
	if got := entities.ParseAnswerKey(" two ").Resolve(choices); got != "two" {
		t.Errorf("expected trimmed literal, got %q", got)
	}
}
