package handler

import (
	"strings"
	"testing"
)

func TestValidator_LoginPayloadMessages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  loginRequest
		want string
	}{
		{"missing email", loginRequest{Password: "secret"}, "email is required"},
		{"missing password", loginRequest{Email: "ops@example.com"}, "password is required"},
		{"bad email", loginRequest{Email: "nope", Password: "secret"}, "email must be a valid email"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if err == nil {
				t.Fatalf("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("message %q does not contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidator_ValidPayload(t *testing.T) {
	v := NewValidator()
	req := loginRequest{Email: "ops@example.com", Password: "secret"}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}
