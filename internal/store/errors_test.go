package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrNoteNotFound",
			err:      ErrNoteNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNoteNotFound",
			err:      fmt.Errorf("failed to delete note: %w", ErrNoteNotFound),
			expected: true,
		},
		{
			name:     "store error around not found",
			err:      NewStoreError("note", "delete", "missing", ErrNoteNotFound),
			expected: true,
		},
		{
			name:     "ErrInvalidEntity",
			err:      ErrInvalidEntity,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	withCause := NewStoreError("note", "create", "session is full", ErrLimitReached)
	if got, want := withCause.Error(), "create operation on note failed: session is full: limit reached"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(withCause, ErrLimitReached) {
		t.Error("StoreError should unwrap to its cause")
	}

	plain := NewStoreError("note", "list", "unavailable", nil)
	if got, want := plain.Error(), "list operation on note failed: unavailable"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var storeErr *StoreError
	if !errors.As(fmt.Errorf("wrapped: %w", withCause), &storeErr) {
		t.Fatal("errors.As should find StoreError")
	}
	if storeErr.Entity != "note" {
		t.Errorf("Entity = %q, want note", storeErr.Entity)
	}
}
