package faults

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name    string
		marker  error
		task    string
		op      string
		cause   error
		wantIs  error
		wantMsg string
	}{
		{"full", ErrSchemaValidation, "titles", "validate", cause, ErrSchemaValidation, "schema validation failure: titles: validate: boom"},
		{"nil marker defaults", nil, "hashtags", "", cause, ErrGenerativeService, "generative service failure: hashtags: boom"},
		{"no cause", ErrHardDependencyMissing, "youtubeTimestamps", "chapters", nil, ErrHardDependencyMissing, "hard dependency missing: youtubeTimestamps: chapters"},
		{"no detail", ErrPersistence, "", "", nil, ErrPersistence, "persistence failure: task failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.marker, tt.task, tt.op, tt.cause)
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantIs)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("cause not preserved in %v", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"service", Wrap(ErrGenerativeService, "titles", "call", nil), true},
		{"schema", Wrap(ErrSchemaValidation, "titles", "validate", nil), true},
		{"panic", Wrap(ErrTaskPanic, "titles", "", nil), true},
		{"hard dependency", Wrap(ErrHardDependencyMissing, "youtubeTimestamps", "", nil), false},
	}
	for _, tt := range tests {
		if got := Recoverable(tt.err); got != tt.want {
			t.Errorf("%s: Recoverable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
