package subformer

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"with code", &Error{Message: "bad input", Code: "BAD_REQUEST"}, "[BAD_REQUEST] bad input"},
		{"without code", &Error{Message: "something broke"}, "something broke"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyError_Kinds(t *testing.T) {
	tests := []struct {
		status   int
		wantCode string
		check    func(error) bool
	}{
		{401, "UNAUTHORIZED", func(err error) bool {
			var e *AuthenticationError
			return errors.As(err, &e)
		}},
		{404, "NOT_FOUND", func(err error) bool {
			var e *NotFoundError
			return errors.As(err, &e)
		}},
		{429, "RATE_LIMIT_EXCEEDED", func(err error) bool {
			var e *RateLimitError
			return errors.As(err, &e)
		}},
		{400, "BAD_REQUEST", func(err error) bool {
			var e *ValidationError
			return errors.As(err, &e)
		}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := classifyError(tt.status, errorBody{Message: "boom"})
			if !tt.check(err) {
				t.Fatalf("status %d classified as %T, wrong kind", tt.status, err)
			}
			e, ok := AsError(err)
			if !ok {
				t.Fatal("AsError failed to extract base error")
			}
			if e.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", e.StatusCode, tt.status)
			}
			if e.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", e.Code, tt.wantCode)
			}
		})
	}
}

func TestClassifyError_Generic(t *testing.T) {
	err := classifyError(503, errorBody{Message: "overloaded", Code: "SERVICE_BUSY"})

	var auth *AuthenticationError
	var nf *NotFoundError
	var rl *RateLimitError
	var val *ValidationError
	if errors.As(err, &auth) || errors.As(err, &nf) || errors.As(err, &rl) || errors.As(err, &val) {
		t.Fatalf("503 classified as a specific kind: %T", err)
	}

	e, ok := AsError(err)
	if !ok {
		t.Fatal("AsError failed to extract base error")
	}
	if e.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", e.StatusCode)
	}
	if e.Code != "SERVICE_BUSY" {
		t.Errorf("Code = %q, want SERVICE_BUSY", e.Code)
	}
}

func TestClassifyError_ValidationData(t *testing.T) {
	raw := json.RawMessage(`{"field":"url","reason":"invalid"}`)
	err := classifyError(400, errorBody{Message: "validation failed", Data: raw})

	var val *ValidationError
	if !errors.As(err, &val) {
		t.Fatalf("400 classified as %T, want *ValidationError", err)
	}

	data, ok := val.Data.(map[string]any)
	if !ok {
		t.Fatalf("Data is %T, want map", val.Data)
	}
	if data["field"] != "url" {
		t.Errorf("Data[field] = %v, want url", data["field"])
	}
}

func TestAsError_Wrapped(t *testing.T) {
	inner := classifyError(404, errorBody{Message: "no such job"})
	wrapped := fmt.Errorf("get job failed: %w", inner)

	e, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError failed on wrapped error")
	}
	if e.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", e.StatusCode)
	}
}
