package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/imtihan/internal/service"
)

// runChunks builds the handler for the chunks command.
func runChunks(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		if len(args) > 0 {
			return usageError(e, cmd, "unexpected arguments: %s", strings.Join(args, " "))
		}

		fmt.Fprintln(e.stdout, e.ui.header(msgChunksTitle))
		for _, c := range e.deps.Service.Chunks() {
			qs, err := e.deps.Bank.GetByLectures(e.ctx, c.Lectures)
			if err != nil {
				fmt.Fprintf(e.stderr, "list chunk %d: %v\n", c.ID, err)
				return ExitError
			}

			fmt.Fprintf(e.stdout, "  %d  %s  %s\n", c.ID, c.Name,
				e.ui.muted(fmt.Sprintf(msgChunkSummary, joinLectures(c.Lectures), len(qs))))
		}
		return ExitOK
	}
}

// runStudy builds the handler for the study command.
func runStudy(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		chunkID, code, ok := chunkArg(e, cmd, args)
		if !ok {
			return code
		}

		cards, err := e.deps.Service.Study(e.ctx, chunkID)
		if err != nil {
			return reportError(e, err)
		}

		chunk, _ := e.deps.Service.Chunk(chunkID)
		fmt.Fprintln(e.stdout, e.ui.header(fmt.Sprintf(msgStudyTitle, chunk.Name)))
		for i, card := range cards {
			fmt.Fprintln(e.stdout)
			fmt.Fprintln(e.stdout, e.ui.progress(i+1, len(cards)))
			fmt.Fprintln(e.stdout, card.Question.Text)
			for n, option := range card.Options {
				fmt.Fprintln(e.stdout, e.ui.option(n+1, option, option == card.CorrectAnswer))
			}
			if !slices.Contains(card.Options, card.CorrectAnswer) {
				fmt.Fprintln(e.stdout, e.ui.muted(fmt.Sprintf(msgCorrectAnswer, card.CorrectAnswer)))
			}
			if card.Question.Explanation != "" {
				fmt.Fprintln(e.stdout, e.ui.muted(card.Question.Explanation))
			}
		}
		return ExitOK
	}
}

// chunkArg parses the single chunk argument of a command.
func chunkArg(e *env, cmd *Command, args []string) (int, int, bool) {
	if len(args) != 1 {
		return 0, usageError(e, cmd, "expected exactly one chunk number"), false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, usageError(e, cmd, "invalid chunk number: %s", args[0]), false
	}
	return id, ExitOK, true
}

// reportError prints a service error and maps it to an exit code.
func reportError(e *env, err error) int {
	switch {
	case errors.Is(err, service.ErrChunkNotFound):
		fmt.Fprintln(e.stderr, msgChunkNotFound)
	case errors.Is(err, service.ErrNoQuestions):
		fmt.Fprintln(e.stderr, msgNoQuestions)
	case errors.Is(err, service.ErrNoSavedSession):
		fmt.Fprintln(e.stderr, msgNoSavedSession)
	default:
		e.deps.Log.Error("command failed", zap.Error(err))
		fmt.Fprintf(e.stderr, msgInternalError, err)
	}
	return ExitError
}

// joinLectures formats lecture numbers the way the chunk cards show them.
func joinLectures(lectures []int) string {
	parts := make([]string, len(lectures))
	for i, l := range lectures {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, " - ")
}
