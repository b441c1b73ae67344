package cli

import (
	"fmt"
	"strings"
)

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		if len(args) > 0 {
			return usageError(e, cmd, "unexpected arguments: %s", strings.Join(args, " "))
		}

		a, err := e.deps.Service.Resume(e.ctx)
		if err != nil {
			return reportError(e, err)
		}

		s := a.Session()
		fmt.Fprintln(e.stdout, e.ui.header(attemptTitle(e, s)))
		if a.Completed() {
			fmt.Fprintln(e.stdout, msgCompleted)
		} else {
			_, total := a.Progress()
			fmt.Fprintf(e.stdout, msgAnswered+"\n", len(s.Answers), total)
		}
		fmt.Fprintln(e.stdout, e.ui.score(e.deps.Service.Score(a)))
		fmt.Fprintln(e.stdout, e.ui.muted(fmt.Sprintf(msgStartedAt, s.Timestamp.Local().Format("2006-01-02 15:04"))))
		return ExitOK
	}
}

// runReset builds the handler for the reset command.
func runReset(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		if len(args) > 0 {
			return usageError(e, cmd, "unexpected arguments: %s", strings.Join(args, " "))
		}

		e.deps.Service.Abandon(e.ctx)
		fmt.Fprintln(e.stdout, msgSessionReset)
		return ExitOK
	}
}
