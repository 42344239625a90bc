package domain

import (
	"errors"
	"testing"
)

func TestPasswordPolicy_ConfigurableMinLength(t *testing.T) {
	policy := DefaultPasswordPolicy()
	policy.MinLength = 12

	// Strong in every class, but one character short of the raised floor.
	if err := policy.Validate("Str0ng!pass"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for 11 chars under a 12-char floor, got %v", err)
	}
	if err := policy.Validate("Str0ng!passw"); err != nil {
		t.Fatalf("expected 12 chars to satisfy the policy, got %v", err)
	}
}

func TestPasswordPolicy_RelaxedClasses(t *testing.T) {
	policy := PasswordPolicy{MinLength: 8}

	// With all class requirements off only the length floor applies.
	if err := policy.Validate("alllowercase"); err != nil {
		t.Fatalf("expected relaxed policy to accept a lowercase password, got %v", err)
	}
	if err := policy.Validate("short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword below the length floor, got %v", err)
	}
}
