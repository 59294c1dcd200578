// Package retry executes remote calls with bounded exponential backoff.
//
// Only failures that look like rate limiting or quota exhaustion are retried.
// The decision is made from the failure's text: a case-insensitive match on
// "429", "quota" or "resource_exhausted" marks the failure Retryable, anything
// else is Terminal and returned to the caller straight away.
//
// Every call to Do owns its attempt counter and delay, so a single Executor can
// be shared by concurrent callers.
package retry
