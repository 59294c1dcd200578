// Package domain defines the core entities of the study assistant: chapter
// page images, session notes and target languages, with their validation rules.
package domain
