// Package store defines interfaces for the application's session data.
// Implementations live under internal/platform; the services depend only on
// these interfaces.
package store
