// Package gemini implements generation.Generator on top of Google's Gemini API.
//
// This package is an infrastructure adapter: it translates a
// generation.Request (an instruction plus ordered page images) into a single
// user turn for the google.golang.org/genai client and turns the response back
// into plain text.
//
// Remote calls run through the retry executor, so rate-limit and quota
// failures are retried with exponential backoff while every other failure is
// returned at once. An optional client-side limiter spaces calls out to stay
// under a requests-per-minute budget.
//
// Response handling:
//   - no candidates, no content or no text: generation.ErrInvalidResponse
//   - safety finish reason or a blocked prompt: generation.ErrContentBlocked
//
// Both are permanent and are never retried.
package gemini
