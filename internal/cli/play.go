package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
	"github.com/aliskhannn/imtihan/internal/service"
)

// runQuiz builds the handler for the quiz command.
func runQuiz(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		chunkID, code, ok := chunkArg(e, cmd, args)
		if !ok {
			return code
		}

		a, err := e.deps.Service.StartQuiz(e.ctx, chunkID)
		if err != nil {
			return reportError(e, err)
		}
		return play(e, a)
	}
}

// runExam builds the handler for the exam command.
func runExam(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		if len(args) > 0 {
			return usageError(e, cmd, "unexpected arguments: %s", strings.Join(args, " "))
		}

		a, err := e.deps.Service.StartExam(e.ctx)
		if err != nil {
			return reportError(e, err)
		}
		return play(e, a)
	}
}

// runResume builds the handler for the resume command.
func runResume(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		if len(args) > 0 {
			return usageError(e, cmd, "unexpected arguments: %s", strings.Join(args, " "))
		}

		a, err := e.deps.Service.Resume(e.ctx)
		if err != nil {
			return reportError(e, err)
		}
		if a.Completed() {
			fmt.Fprintln(e.stdout, msgAlreadyDone)
			fmt.Fprintln(e.stdout, e.ui.score(e.deps.Service.Score(a)))
			return ExitOK
		}
		return play(e, a)
	}
}

// runRestart builds the handler for the restart command.
func runRestart(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		if len(args) > 0 {
			return usageError(e, cmd, "unexpected arguments: %s", strings.Join(args, " "))
		}

		saved, err := e.deps.Service.Resume(e.ctx)
		if err != nil {
			return reportError(e, err)
		}
		a, err := e.deps.Service.Restart(e.ctx, saved)
		if err != nil {
			return reportError(e, err)
		}
		return play(e, a)
	}
}

// play runs the question loop of an attempt until it completes or the user quits.
func play(e *env, a *service.Attempt) int {
	fmt.Fprintln(e.stdout, e.ui.header(attemptTitle(e, a.Session())))

	for {
		current, ok := a.Current()
		if !ok {
			break
		}

		if !a.Answered() {
			pos, total := a.Progress()
			fmt.Fprintln(e.stdout)
			fmt.Fprintln(e.stdout, e.ui.progress(pos, total))
			fmt.Fprintln(e.stdout, current.Question.Text)
			for n, option := range current.Options {
				fmt.Fprintln(e.stdout, e.ui.option(n+1, option, false))
			}

			choice, quit := readChoice(e, len(current.Options))
			if quit {
				fmt.Fprintln(e.stdout)
				fmt.Fprintln(e.stdout, e.ui.muted(msgProgressSaved))
				return ExitOK
			}

			fb, err := e.deps.Service.Submit(e.ctx, a, current.Options[choice-1])
			if err != nil {
				return reportError(e, err)
			}
			fmt.Fprintln(e.stdout, e.ui.verdict(fb.IsCorrect(), fb.CorrectAnswer))
			if fb.Explanation != "" {
				fmt.Fprintln(e.stdout, e.ui.muted(fb.Explanation))
			}
		}

		done, err := e.deps.Service.Next(e.ctx, a)
		if err != nil {
			return reportError(e, err)
		}
		if done {
			break
		}
	}

	fmt.Fprintln(e.stdout)
	fmt.Fprintln(e.stdout, e.ui.header(msgFinalTitle))
	fmt.Fprintln(e.stdout, e.ui.score(e.deps.Service.Score(a)))
	return ExitOK
}

// readChoice prompts until the user enters an option number or quits.
// End of input counts as quitting.
func readChoice(e *env, options int) (int, bool) {
	for {
		fmt.Fprintf(e.stdout, msgPrompt, options)
		if !e.in.Scan() {
			return 0, true
		}

		input := strings.TrimSpace(e.in.Text())
		if strings.EqualFold(input, "q") {
			return 0, true
		}
		n, err := strconv.Atoi(input)
		if err == nil && n >= 1 && n <= options {
			return n, false
		}
		fmt.Fprintln(e.stdout, e.ui.warning(fmt.Sprintf(msgInvalidChoice, options)))
	}
}

func attemptTitle(e *env, s *entities.ExamSession) string {
	if s.Mode == entities.ModeExam {
		return msgExamTitle
	}
	chunk, err := e.deps.Service.Chunk(s.ChunkID)
	if err != nil {
		return fmt.Sprintf(msgQuizChunk, s.ChunkID)
	}
	return fmt.Sprintf(msgQuizTitle, chunk.Name)
}
