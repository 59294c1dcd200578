package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Template file names.
const (
	AnalysisTemplate     = "analysis.tmpl"
	QuizTemplate         = "quiz.tmpl"
	TranslationTemplate  = "translation.tmpl"
	NotesSummaryTemplate = "notes_summary.tmpl"
)

// Quiz size bounds.
const (
	DefaultQuestionCount = 10
	MaxQuestionCount     = 25
)

//go:embed templates/*.tmpl
var embedded embed.FS

var templateNames = []string{
	AnalysisTemplate,
	QuizTemplate,
	TranslationTemplate,
	NotesSummaryTemplate,
}

// ErrMissingParameter is returned when a required template value is empty.
var ErrMissingParameter = errors.New("missing prompt parameter")

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

// Builder renders prompts from parsed templates. It is safe for concurrent use.
type Builder struct {
	templates map[string]*template.Template
}

// NewBuilder parses the embedded templates and, when dir is not empty, any
// overrides found there.
func NewBuilder(dir string) (*Builder, error) {
	b := &Builder{templates: make(map[string]*template.Template, len(templateNames))}

	for _, name := range templateNames {
		content, source, err := readTemplate(dir, name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt template %s from %s: %w", name, source, err)
		}
		b.templates[name] = tmpl
	}

	return b, nil
}

func readTemplate(dir, name string) (string, string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err == nil {
			return string(content), path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("failed to read prompt template %s: %w", path, err)
		}
	}

	content, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		return "", "", fmt.Errorf("embedded prompt template %s: %w", name, err)
	}
	return string(content), "embedded templates", nil
}

type analysisData struct {
	PageCount int
}

type quizData struct {
	Topic string
	Count int
}

type translationData struct {
	Text     string
	Language string
}

type notesData struct {
	Notes []string
}

// Analysis renders the chapter analysis instruction for pageCount pages.
func (b *Builder) Analysis(pageCount int) (string, error) {
	if pageCount < 1 {
		return "", fmt.Errorf("%w: page count must be positive", ErrMissingParameter)
	}
	return b.render(AnalysisTemplate, analysisData{PageCount: pageCount})
}

// Quiz renders a quiz instruction. A count of zero means DefaultQuestionCount.
func (b *Builder) Quiz(topic string, count int) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("%w: topic", ErrMissingParameter)
	}
	if count == 0 {
		count = DefaultQuestionCount
	}
	return b.render(QuizTemplate, quizData{Topic: topic, Count: count})
}

// Translation renders a translation instruction.
func (b *Builder) Translation(text, language string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text", ErrMissingParameter)
	}
	if strings.TrimSpace(language) == "" {
		return "", fmt.Errorf("%w: target language", ErrMissingParameter)
	}
	return b.render(TranslationTemplate, translationData{Text: text, Language: language})
}

// NotesSummary renders a revision-sheet instruction from notes, in order.
func (b *Builder) NotesSummary(notes []string) (string, error) {
	if len(notes) == 0 {
		return "", fmt.Errorf("%w: notes", ErrMissingParameter)
	}
	return b.render(NotesSummaryTemplate, notesData{Notes: notes})
}

func (b *Builder) render(name string, data any) (string, error) {
	tmpl, ok := b.templates[name]
	if !ok {
		return "", fmt.Errorf("prompt template %s not loaded", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
