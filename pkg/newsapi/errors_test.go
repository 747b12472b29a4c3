package newsapi

import (
	"errors"
	"fmt"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestMapCode(t *testing.T) {
	cases := []struct {
		name    string
		code    *string
		message string
	}{
		{name: "api key disabled", code: strPtr("apiKeyDisabled"), message: "Your API key has been disabled"},
		{name: "unrecognized code", code: strPtr("rateLimited"), message: "Unknown error"},
		{name: "empty code", code: strPtr(""), message: "Unknown error"},
		{name: "absent code", code: nil, message: "Unknown error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapCode(tc.code)
			if err.Kind != KindBadRequest {
				t.Fatalf("kind = %s, want bad_request", err.Kind)
			}
			if err.Message != tc.message {
				t.Fatalf("message = %q, want %q", err.Message, tc.message)
			}
			if !errors.Is(err, ErrBadRequest) {
				t.Fatalf("expected errors.Is(err, ErrBadRequest)")
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	bad := mapCode(strPtr("apiKeyDisabled"))
	if got := bad.Error(); got != "request failed: Your API key has been disabled" {
		t.Errorf("bad request message = %q", got)
	}

	parse := newError(KindParse, errors.New("unexpected end of JSON input"))
	if got := parse.Error(); got != "article parsing failed: unexpected end of JSON input" {
		t.Errorf("parse message = %q", got)
	}
}

func TestErrorIsAndKindSurviveWrapping(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	wrapped := fmt.Errorf("fetch headlines: %w", newError(KindTransport, cause))

	if !errors.Is(wrapped, ErrTransport) {
		t.Fatal("expected ErrTransport through wrapping")
	}
	if errors.Is(wrapped, ErrParse) {
		t.Fatal("transport error must not match ErrParse")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected underlying cause to be reachable")
	}
	if !IsKind(wrapped, KindTransport) {
		t.Fatal("IsKind(KindTransport) = false")
	}
}
