// Package prompt renders the instructions sent to the generative model.
//
// Each feature has a text/template embedded in the binary. A directory may
// be supplied to replace any of them: a file in that directory with the same
// name as an embedded template (for example quiz.tmpl) takes its place.
package prompt
