// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthurkoziel/yml2tex/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "structure_error",
			code:    errors.ErrInvalidStructure,
			message: "subsection value must be a mapping",
			wantStr: "[INVALID_STRUCTURE] subsection value must be a mapping",
		},
		{
			name:    "metas_error",
			code:    errors.ErrMetasInvalid,
			message: "metas must be a mapping",
			wantStr: "[METAS_INVALID] metas must be a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("no such file or directory")

	err := errors.Wrap(cause, errors.ErrIncludeRead, "cannot read included file")
	if err == nil {
		t.Fatal("Wrap() returned nil for non-nil cause")
	}

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}

	want := "[INCLUDE_READ] cannot read included file: no such file or directory"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrIncludeRead, "whatever") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidStructure, "frame %q is not a mapping", "Intro")
	target := errors.New(errors.ErrInvalidStructure, "")

	if !stderrors.Is(err, target) {
		t.Error("errors with the same code should match via errors.Is")
	}

	other := errors.New(errors.ErrDocParse, "")
	if stderrors.Is(err, other) {
		t.Error("errors with different codes should not match")
	}
}

func TestErrorCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrDocRead, "cannot read document").
		WithDetail("path", "talk.yml")

	if !errors.IsErrorCode(err, errors.ErrDocRead) {
		t.Error("IsErrorCode() should match the error's code")
	}

	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if got := errors.GetErrorCode(err); got != errors.ErrDocRead {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrDocRead)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}

	details := errors.GetErrorDetails(err)
	if details["path"] != "talk.yml" {
		t.Errorf("GetErrorDetails()[path] = %v, want talk.yml", details["path"])
	}
}
