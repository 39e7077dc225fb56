package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNavTimeoutErrorWrapsCause(t *testing.T) {
	err := &NavTimeoutError{
		URL: "https://openreview.net/forum?id=x",
		Err: context.DeadlineExceeded,
	}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("cause not unwrapped")
	}
	if !strings.Contains(err.Error(), "https://openreview.net/forum?id=x") {
		t.Errorf("message missing URL: %s", err.Error())
	}
}

func TestAuthErrorAs(t *testing.T) {
	var wrapped error = fmt.Errorf("run failed: %w", &AuthError{User: "reviewer@example.org"})

	var authErr *AuthError
	if !errors.As(wrapped, &authErr) {
		t.Fatalf("errors.As failed: %v", wrapped)
	}
	if authErr.User != "reviewer@example.org" {
		t.Errorf("user = %q", authErr.User)
	}
}
