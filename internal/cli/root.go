package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/examzen/internal/config"
	"github.com/phrazzld/examzen/internal/generation"
	"github.com/phrazzld/examzen/internal/platform/gemini"
	"github.com/phrazzld/examzen/internal/platform/logger"
	"github.com/phrazzld/examzen/internal/platform/memstore"
	"github.com/phrazzld/examzen/internal/prompt"
	"github.com/phrazzld/examzen/internal/service"
	"github.com/spf13/cobra"
)

// Option customizes NewRootCommand.
type Option func(*options)

type options struct {
	cfg       *config.Config
	generator generation.Generator
	in        io.ReadCloser
	out       io.Writer
	errOut    io.Writer
}

// WithConfig uses cfg instead of loading configuration.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithGenerator replaces the Gemini generator.
func WithGenerator(g generation.Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithIO sets the streams used for shell input, results and logs.
func WithIO(in io.ReadCloser, out, errOut io.Writer) Option {
	return func(o *options) {
		o.in = in
		o.out = out
		o.errOut = errOut
	}
}

// app holds the dependencies shared by all commands. They are built on first
// use so that commands without model access need no credential.
type app struct {
	opts options

	configFile string
	envFile    string
	verbose    bool

	// ran is set once a command body starts; earlier failures are usage errors.
	ran bool

	cfg       *config.Config
	logger    *slog.Logger
	assistant service.Assistant
	notes     service.NoteService
	printer   *Printer
}

// NewRootCommand builds the examzen command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	root, _ := newRootCommand(opts...)
	return root
}

func newRootCommand(opts ...Option) (*cobra.Command, *app) {
	o := options{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	a := &app{opts: o, printer: NewPrinter(o.out)}

	root := &cobra.Command{
		Use:   "examzen",
		Short: "Exam preparation assistant powered by Gemini",
		Long: `examzen turns photos of textbook pages into an exam-focused summary with the
ten most likely exam questions, writes multiple-choice quizzes on any topic,
and translates study material.

Run "examzen shell" for an interactive session that also keeps revision notes.

The Gemini API key is read from GOOGLE_API_KEY, or from a .env file in the
working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(o.in)
	root.SetOut(o.out)
	root.SetErr(o.errOut)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a config file (default: ./config.yaml if present)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Path to a dotenv file (default: .env)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostic output to stderr")

	root.AddCommand(
		a.newAnalyzeCommand(),
		a.newQuizCommand(),
		a.newTranslateCommand(),
		a.newLanguagesCommand(),
		a.newShellCommand(),
	)
	return root, a
}

// Execute runs the examzen command line. Failures are printed before they are
// returned.
func Execute(ctx context.Context) error {
	root, a := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		p := NewPrinter(root.ErrOrStderr())
		if !a.ran {
			p.Error(newLocalError(nil, "%s\nRun 'examzen --help' for usage.", err.Error()))
			return err
		}
		p.Error(err)
		return err
	}
	return nil
}

// withServices wraps a command body that needs the model and note services.
func (a *app) withServices(fn func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.ran = true
		ctx := cmd.Context()
		if err := a.setup(ctx); err != nil {
			return err
		}
		return fn(ctx, args)
	}
}

// setup builds the services on first use.
func (a *app) setup(ctx context.Context) error {
	if a.assistant != nil {
		return nil
	}

	cfg := a.opts.cfg
	if cfg == nil {
		loaded, err := config.LoadWithOptions(config.Options{
			ConfigFile: a.configFile,
			EnvFile:    a.envFile,
		})
		if err != nil {
			return newLocalError(err, "configuration error")
		}
		cfg = loaded
	}
	a.cfg = cfg

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	l, err := logger.Setup(logger.LoggerConfig{Level: level, Format: "text", Output: a.opts.errOut})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	a.logger = l

	generator := a.opts.generator
	if generator == nil {
		g, err := gemini.NewGeminiGenerator(ctx, l.With("component", "llm_generator"), cfg.LLM)
		if err != nil {
			return newLocalError(err, "cannot create Gemini client")
		}
		generator = g
	}

	prompts, err := prompt.NewBuilder(cfg.LLM.PromptDir)
	if err != nil {
		return newLocalError(err, "cannot load prompt templates")
	}

	noteStore := memstore.NewNoteStore(l)
	a.notes, err = service.NewNoteService(noteStore, service.NoteLimits{
		MaxPerSession: cfg.Notes.MaxPerSession,
		MaxLength:     cfg.Notes.MaxLength,
	}, l)
	if err != nil {
		return err
	}

	a.assistant, err = service.NewAssistant(generator, prompts, noteStore, service.AssistantConfig{
		MaxPages: cfg.Upload.MaxFiles,
	}, l)
	return err
}
