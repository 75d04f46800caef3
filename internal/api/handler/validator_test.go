package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registrationRequestDto{Username: strings.Repeat("a", 65), Password: "abc"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "username must be at most 64 characters") ||
		!strings.Contains(msg, "password must be at least 4 characters") {
		t.Fatalf("unexpected message: %s", msg)
	}

	if err := v.Validate(&commentSimpleDto{}); err == nil || err.Error() != "text is required" {
		t.Fatalf("unexpected result: %v", err)
	}
	if err := v.Validate(&newsSimpleDto{Title: "t", Text: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
