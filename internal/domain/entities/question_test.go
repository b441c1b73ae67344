package entities_test

import (
	"testing"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

func TestQuestion_Options(t *testing.T) {
	tf := &entities.Question{Type: entities.QuestionTypeTrueFalse}
	opts := tf.Options()
	if len(opts) != 2 || opts[0] != entities.AnswerTrue || opts[1] != entities.AnswerFalse {
		t.Errorf("unexpected true/false options %v", opts)
	}

	mcq := &entities.Question{Type: entities.QuestionTypeMCQ, Choices: []string{"a", "b"}}
	opts = mcq.Options()
	opts[0] = "changed"
	if mcq.Choices[0] != "a" {
		t.Error("expected Options to return a copy of the choices")
	}

	if !mcq.InDomain("b") || mcq.InDomain("c") {
		t.Error("unexpected mcq answer domain")
	}
	if !tf.InDomain(entities.AnswerFalse) || tf.InDomain("true") {
		t.Error("unexpected true/false answer domain")
	}
}
