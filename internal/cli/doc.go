// Package cli implements the examzen command line: one-shot commands for
// chapter analysis, quizzes and translation, and an interactive shell that
// adds session notes on top of them.
//
// Commands share the service layer with the HTTP server, so limits, prompts,
// retries and error messages behave identically on both surfaces.
package cli
