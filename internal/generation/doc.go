// Package generation defines the boundary between the application and the
// hosted generative model. A Generator takes a prompt plus optional page
// images and returns the model's text; adapters such as platform/gemini
// implement it.
package generation
