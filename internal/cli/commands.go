package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/prompt"
	"github.com/spf13/cobra"
)

func (a *app) newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze PAGE...",
		Short: "Summarize a chapter and predict its top exam questions",
		Long: `Analyze sends the given page photos (PNG or JPEG), in order, as one chapter
and prints a Markdown summary with the ten most likely exam questions.`,
		Example: "  examzen analyze page1.jpg page2.jpg page3.jpg",
		Args:    cobra.MinimumNArgs(1),
		RunE:    a.withServices(a.analyze),
	}
}

func (a *app) analyze(ctx context.Context, paths []string) error {
	pages, err := ReadPages(ctx, paths, a.cfg.Upload.MaxFileBytes)
	if err != nil {
		return err
	}

	result, err := a.assistant.AnalyzeChapter(ctx, pages)
	if err != nil {
		return err
	}

	a.printer.Header("Chapter analysis")
	a.printer.Result(result.Text, result.Model)
	return nil
}

func (a *app) newQuizCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:     "quiz TOPIC...",
		Short:   "Write a multiple-choice quiz on a topic",
		Example: "  examzen quiz --count 5 photosynthesis",
		Args:    cobra.MinimumNArgs(1),
		RunE: a.withServices(func(ctx context.Context, args []string) error {
			return a.quiz(ctx, strings.Join(args, " "), count)
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", prompt.DefaultQuestionCount,
		fmt.Sprintf("Number of questions, 1-%d (0 uses the default)", prompt.MaxQuestionCount))
	return cmd
}

func (a *app) quiz(ctx context.Context, topic string, count int) error {
	result, err := a.assistant.GenerateQuiz(ctx, topic, count)
	if err != nil {
		return err
	}

	a.printer.Header("Quiz: " + topic)
	a.printer.Result(result.Text, result.Model)
	return nil
}

func (a *app) newTranslateCommand() *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:     "translate --to LANGUAGE TEXT...",
		Short:   "Translate study material",
		Example: `  examzen translate --to hindi "The mitochondria is the powerhouse of the cell"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: a.withServices(func(ctx context.Context, args []string) error {
			return a.translate(ctx, strings.Join(args, " "), language)
		}),
	}
	cmd.Flags().StringVarP(&language, "to", "t", "", "Target language (see \"examzen languages\")")
	return cmd
}

func (a *app) translate(ctx context.Context, text, language string) error {
	canonical, err := domain.ParseLanguage(language)
	if err != nil {
		return err
	}

	result, err := a.assistant.Translate(ctx, text, canonical)
	if err != nil {
		return err
	}

	a.printer.Header("Translation (" + canonical + ")")
	a.printer.Result(result.Text, result.Model)
	return nil
}

func (a *app) newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List translation target languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.ran = true
			a.printLanguages()
		},
	}
}

func (a *app) printLanguages() {
	for _, lang := range domain.Languages {
		a.printer.Item("", lang)
	}
}
