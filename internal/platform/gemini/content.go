package gemini

import (
	"fmt"
	"strings"

	"github.com/phrazzld/examzen/internal/generation"
	"google.golang.org/genai"
)

// buildContents converts a request into a single user turn: the instruction
// text first, then one inline-data part per image in request order.
func buildContents(req generation.Request) []*genai.Content {
	parts := make([]*genai.Part, 0, len(req.Images)+1)
	parts = append(parts, &genai.Part{Text: req.Prompt})
	for _, img := range req.Images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MIMEType,
				Data:     img.Data,
			},
		})
	}

	return []*genai.Content{{
		Role:  "user",
		Parts: parts,
	}}
}

// extractText returns the concatenated text of the first candidate and its
// finish reason.
func extractText(resp *genai.GenerateContentResponse) (string, string, error) {
	if resp == nil {
		return "", "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	finishReason := string(candidate.FinishReason)
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", finishReason, fmt.Errorf("%w: response blocked by safety filters",
			generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", finishReason, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", finishReason, fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}
	return text, finishReason, nil
}
