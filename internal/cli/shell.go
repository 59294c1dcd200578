package cli

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/prompt"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  :analyze PAGE...       summarize a chapter from page photos, in order
  :quiz [COUNT] TOPIC    write a multiple-choice quiz (default 10 questions)
  :translate LANG TEXT   translate text into LANG
  :languages             list translation languages
  :note TEXT             add a revision note
  :notes                 list notes
  :forget N|ID           delete a note by list number or ID
  :clear                 delete all notes
  :summary               turn the notes into a revision sheet
  :help                  show this help
  :quit                  leave the shell`

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

func (a *app) newShellCommand() *cobra.Command {
	var historyFile string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive study session",
		Long: `Shell starts an interactive session. Notes taken with :note live until the
session ends and can be turned into a revision sheet with :summary.`,
		Args: cobra.NoArgs,
		RunE: a.withServices(func(ctx context.Context, _ []string) error {
			return a.runShell(ctx, historyFile)
		}),
	}
	cmd.Flags().StringVar(&historyFile, "history", "", "File to keep command history in")
	return cmd
}

func (a *app) runShell(ctx context.Context, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "examzen> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
		Stdin:           a.opts.in,
		Stdout:          a.opts.out,
		Stderr:          a.opts.errOut,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()

	sh := newShell(a)
	a.printer.Muted("Type :help for commands.")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF
			return nil
		}

		if err := sh.exec(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			a.printer.Error(err)
		}
	}
}

// shell executes shell lines against one note session.
type shell struct {
	app     *app
	session string
}

func newShell(a *app) *shell {
	return &shell{app: a, session: uuid.NewString()}
}

// exec runs one input line. It returns errQuit when the session should end.
func (s *shell) exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, ":") {
		s.app.printer.Muted("Commands start with ':'. Type :help for the list.")
		return nil
	}

	name, rest, _ := strings.Cut(line[1:], " ")
	rest = strings.TrimSpace(rest)
	a := s.app

	switch strings.ToLower(name) {
	case "analyze":
		paths := strings.Fields(rest)
		if len(paths) == 0 {
			return usageError(":analyze PAGE...")
		}
		return a.analyze(ctx, paths)
	case "quiz":
		count, topic := parseQuizArgs(rest)
		if topic == "" {
			return usageError(":quiz [COUNT] TOPIC")
		}
		return a.quiz(ctx, topic, count)
	case "translate":
		language, text, _ := strings.Cut(rest, " ")
		text = strings.TrimSpace(text)
		if language == "" || text == "" {
			return usageError(":translate LANG TEXT")
		}
		return a.translate(ctx, text, language)
	case "languages":
		a.printLanguages()
		return nil
	case "note":
		note, err := a.notes.Add(ctx, s.session, rest)
		if err != nil {
			return err
		}
		a.printer.Success("Noted (%s)", note.ID.String()[:8])
		return nil
	case "notes":
		return s.listNotes(ctx)
	case "forget":
		return s.forget(ctx, rest)
	case "clear":
		n, err := a.notes.Clear(ctx, s.session)
		if err != nil {
			return err
		}
		a.printer.Success("Removed %d notes", n)
		return nil
	case "summary":
		result, err := a.assistant.SummarizeNotes(ctx, s.session)
		if err != nil {
			return err
		}
		a.printer.Header("Revision sheet")
		a.printer.Result(result.Text, result.Model)
		return nil
	case "help":
		writeLine(a.opts.out, shellHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	default:
		return newLocalError(nil, "unknown command :%s, type :help", name)
	}
}

func (s *shell) listNotes(ctx context.Context) error {
	notes, err := s.app.notes.List(ctx, s.session)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		s.app.printer.Muted("No notes yet. Add one with :note TEXT")
		return nil
	}
	for i, n := range notes {
		s.app.printer.Item(strconv.Itoa(i+1)+".", n.Text)
	}
	return nil
}

// forget deletes a note given its 1-based list number or its ID.
func (s *shell) forget(ctx context.Context, ref string) error {
	if ref == "" {
		return usageError(":forget N|ID")
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		n, convErr := strconv.Atoi(ref)
		if convErr != nil {
			return newLocalError(nil, "%q is neither a note number nor a note ID", ref)
		}
		notes, err := s.app.notes.List(ctx, s.session)
		if err != nil {
			return err
		}
		if n < 1 || n > len(notes) {
			return newLocalError(nil, "there is no note %d", n)
		}
		id = notes[n-1].ID
	}

	if err := s.app.notes.Delete(ctx, s.session, id); err != nil {
		return err
	}
	s.app.printer.Success("Note removed")
	return nil
}

// parseQuizArgs splits an optional leading question count from the topic.
func parseQuizArgs(args string) (int, string) {
	first, rest, found := strings.Cut(args, " ")
	if n, err := strconv.Atoi(first); err == nil && found {
		return n, strings.TrimSpace(rest)
	}
	return prompt.DefaultQuestionCount, args
}

func usageError(usage string) error {
	return newLocalError(nil, "usage: %s", usage)
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
