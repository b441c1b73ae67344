package grading

import (
	"math"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

// Aggregate reduces answer events into a score summary.
// Percentage is rounded half up and is 0 when there are no events.
func Aggregate(events []entities.UserAnswer) entities.Score {
	correct := 0
	for _, e := range events {
		if e.IsCorrect {
			correct++
		}
	}

	total := len(events)
	score := entities.Score{
		Correct:   correct,
		Incorrect: total - correct,
		Total:     total,
	}
	if total > 0 {
		score.Percentage = int(math.Floor(float64(correct)*100/float64(total) + 0.5))
	}

	return score
}
