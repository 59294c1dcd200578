// Package memstore provides process-memory implementations of the
// interfaces in internal/store. Nothing is persisted; data is lost when the
// process exits.
package memstore
