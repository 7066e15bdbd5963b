package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidConfig, "cell size must be positive, got %v", -1.0),
			"INVALID_CONFIG: cell size must be positive, got -1"},
		{"wrapped", Wrap(ErrCodeCache, cause, "read %s", "frame"),
			"CACHE_ERROR: read frame: connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrap(ErrCodeStore, cause, "insert record")
	if errors.Unwrap(err) != cause || !errors.Is(err, cause) {
		t.Error("Wrap should expose its cause to the standard errors package")
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   Code
		client bool
		msg    string
	}{
		{"coded", New(ErrCodeInvalidEasing, "unknown easing %q", "bounce"), ErrCodeInvalidEasing, true, `unknown easing "bounce"`},
		{"outer code wins", Wrap(ErrCodeStore, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeStore, false, "outer"},
		{"behind fmt wrap", fmt.Errorf("load: %w", New(ErrCodeInvalidPath, "bad path")), ErrCodeInvalidPath, true, "bad path"},
		{"plain", errors.New("plain"), "", false, "plain"},
		{"nil", nil, "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Error("Is(INTERNAL_ERROR) should be false")
			}
			if got := IsClientError(tt.err); got != tt.client {
				t.Errorf("IsClientError() = %v, want %v", got, tt.client)
			}
			if tt.err != nil {
				if got := UserMessage(tt.err); got != tt.msg {
					t.Errorf("UserMessage() = %q, want %q", got, tt.msg)
				}
			}
		})
	}
}

func TestIsEmptyCode(t *testing.T) {
	if Is(errors.New("plain"), "") {
		t.Error("Is with an empty code should never match")
	}
}
