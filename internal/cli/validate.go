package cli

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/imtihan/internal/repository"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(e *env, args []string) int {
	return func(e *env, args []string) int {
		if len(args) > 1 {
			return usageError(e, cmd, "unexpected arguments: %s", strings.Join(args[1:], " "))
		}

		bank := e.deps.Bank
		if len(args) == 1 {
			var err error
			bank, err = repository.NewQuestionRepository(args[0], e.deps.Log)
			if err != nil {
				fmt.Fprintf(e.stderr, msgValidateFailed, err)
				return ExitError
			}
		}

		questions, err := bank.GetAll(e.ctx)
		if err != nil {
			fmt.Fprintf(e.stderr, msgValidateFailed, err)
			return ExitError
		}

		problems := bank.Problems()
		if len(problems) == 0 {
			fmt.Fprintf(e.stdout, msgBankOK+"\n", len(questions))
			return ExitOK
		}

		for _, p := range problems {
			fmt.Fprintln(e.stdout, e.ui.warning(fmt.Sprintf(msgBankProblem, p.QuestionID, p.Lecture, p.Message)))
		}
		fmt.Fprintf(e.stdout, msgBankProblems+"\n", len(problems), len(questions))
		return ExitError
	}
}
