// Package service contains the application's use cases. It turns user input
// into validated domain values, renders prompts, calls the generator and
// manages session notes through the interfaces in internal/store and
// internal/generation.
//
// The HTTP API and the command-line client share these services; neither
// talks to the generator or the note store directly.
package service
