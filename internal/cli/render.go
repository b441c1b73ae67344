package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

type renderer struct {
	noColor bool
}

// header renders a section title.
func (r renderer) header(text string) string {
	if r.noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(text)
}

// progress renders the position line of the current question.
func (r renderer) progress(current, total int) string {
	return r.stylize(fmt.Sprintf(msgProgress, current, total), lipgloss.Color("242"))
}

// option renders one numbered option. Marked options are highlighted.
func (r renderer) option(n int, text string, marked bool) string {
	line := fmt.Sprintf("  %d) %s", n, text)
	if !marked {
		return line
	}
	return r.stylize(line+"  ✓", lipgloss.Color("34"))
}

// verdict renders the grading result of one answer.
func (r renderer) verdict(correct bool, correctAnswer string) string {
	if correct {
		return r.stylize(msgCorrect, lipgloss.Color("34"))
	}
	return r.stylize(fmt.Sprintf(msgIncorrect, correctAnswer), lipgloss.Color("160"))
}

func (r renderer) muted(text string) string {
	return r.stylize(text, lipgloss.Color("244"))
}

func (r renderer) warning(text string) string {
	return r.stylize(text, lipgloss.Color("214"))
}

// score renders the score summary line.
func (r renderer) score(s entities.Score) string {
	line := fmt.Sprintf(msgScore, s.Correct, s.Total, s.Percentage, s.Incorrect)
	color := lipgloss.Color("34")
	if s.Total > 0 && s.Percentage < 50 {
		color = lipgloss.Color("160")
	}
	return r.stylize(line, color)
}

// stylize applies optional color styling.
func (r renderer) stylize(text string, color lipgloss.Color) string {
	if r.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
