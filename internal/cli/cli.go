package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/imtihan/internal/repository"
	"github.com/aliskhannn/imtihan/internal/service"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Deps are the collaborators the commands run against.
type Deps struct {
	Service *service.QuizService
	Bank    *repository.QuestionRepository
	Log     *zap.Logger
	NoColor bool
}

// env is the per-invocation state handed to a command.
type env struct {
	ctx    context.Context
	deps   Deps
	in     *bufio.Scanner
	stdout io.Writer
	stderr io.Writer
	ui     renderer
}

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(e *env, args []string) int
}

// Run executes the command named by args[0] and returns its exit code.
func Run(ctx context.Context, deps Deps, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	args, noColor := stripNoColor(args)
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	e := &env{
		ctx:    ctx,
		deps:   deps,
		in:     bufio.NewScanner(stdin),
		stdout: stdout,
		stderr: stderr,
		ui:     renderer{noColor: noColor || deps.NoColor},
	}

	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	if wantsHelp(args[1:]) {
		printCommandUsage(cmd, stdout)
		return ExitOK
	}
	return cmd.Run(e, args[1:])
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func stripNoColor(args []string) ([]string, bool) {
	rest := make([]string, 0, len(args))
	found := false
	for _, arg := range args {
		if arg == "--no-color" {
			found = true
			continue
		}
		rest = append(rest, arg)
	}
	return rest, found
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  imtihan [--no-color] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"imtihan <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// usageError reports bad arguments for cmd and returns ExitUsage.
func usageError(e *env, cmd *Command, format string, args ...any) int {
	fmt.Fprintf(e.stderr, format+"\n", args...)
	printCommandUsage(cmd, e.stderr)
	return ExitUsage
}

func command(name, summary string, usage []string, run func(cmd *Command) func(e *env, args []string) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = run(cmd)
	return cmd
}

var commands = []*Command{
	command("chunks", "List lecture chunks", []string{
		"imtihan chunks",
	}, runChunks),
	command("study", "Read a chunk with answers revealed", []string{
		"imtihan study <chunk>",
	}, runStudy),
	command("quiz", "Take a shuffled quiz over one chunk", []string{
		"imtihan quiz <chunk>",
	}, runQuiz),
	command("exam", "Take the full exam over every question", []string{
		"imtihan exam",
	}, runExam),
	command("resume", "Continue the saved attempt", []string{
		"imtihan resume",
	}, runResume),
	command("restart", "Start the saved attempt over with a new order", []string{
		"imtihan restart",
	}, runRestart),
	command("score", "Show the score of the saved attempt", []string{
		"imtihan score",
	}, runScore),
	command("reset", "Discard the saved attempt", []string{
		"imtihan reset",
	}, runReset),
	command("validate", "Check a question bank for data problems", []string{
		"imtihan validate [path]",
	}, runValidate),
}
