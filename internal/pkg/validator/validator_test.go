package validator

import (
	"strings"
	"testing"
)

type signupInput struct {
	Username string
	Email    string
}

func signupSchema() Schema {
	return Schema{
		{Field: "Username", Tag: "required", MessageID: "validation.username.notNull"},
		{Field: "Username", Tag: "min", Param: "2", MessageID: "validation.username.size"},
		{Field: "Username", Tag: "max", Param: "50", MessageID: "validation.username.size"},
		{Field: "Email", Tag: "required", MessageID: "validation.email.notNull"},
		{Field: "Email", Tag: "email", MessageID: "validation.email.invalid"},
	}
}

func newSignupExecutor(t *testing.T) *Executor {
	t.Helper()

	e, err := NewExecutor(signupInput{}, signupSchema())
	if err != nil {
		t.Fatalf("failed to build executor: %v", err)
	}
	return e
}

func TestSchemaMapRules(t *testing.T) {
	// Act
	rules := signupSchema().MapRules()

	// Assert
	if rules["Username"] != "required,min=2,max=50" {
		t.Fatalf("unexpected username rules: %q", rules["Username"])
	}
	if rules["Email"] != "required,email" {
		t.Fatalf("unexpected email rules: %q", rules["Email"])
	}
}

func TestValidateAccepts(t *testing.T) {
	// Arrange
	e := newSignupExecutor(t)

	cases := []struct {
		name string
		in   signupInput
	}{
		{name: "typical", in: signupInput{Username: "john-doe", Email: "your@email.com"}},
		{name: "username at lower bound", in: signupInput{Username: "jo", Email: "your@email.com"}},
		{name: "username at upper bound", in: signupInput{Username: strings.Repeat("a", 50), Email: "your@email.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			violations, err := e.Validate(tc.in)

			// Assert
			if err != nil {
				t.Fatalf("unexpected executor error: %v", err)
			}
			if len(violations) != 0 {
				t.Fatalf("expected no violations, got %v", violations)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	// Arrange
	e := newSignupExecutor(t)

	cases := []struct {
		name    string
		in      signupInput
		wantIDs []string
	}{
		{
			name:    "username too short",
			in:      signupInput{Username: "j", Email: "your@email.com"},
			wantIDs: []string{"validation.username.size"},
		},
		{
			name:    "username too long",
			in:      signupInput{Username: strings.Repeat("a", 51), Email: "your@email.com"},
			wantIDs: []string{"validation.username.size"},
		},
		{
			name:    "email not an address",
			in:      signupInput{Username: "john-doe", Email: "your.com"},
			wantIDs: []string{"validation.email.invalid"},
		},
		{
			name:    "both fields empty",
			in:      signupInput{},
			wantIDs: []string{"validation.username.notNull", "validation.email.notNull"},
		},
		{
			name:    "empty username with bad email",
			in:      signupInput{Username: "", Email: "your.com"},
			wantIDs: []string{"validation.username.notNull", "validation.email.invalid"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			violations, err := e.Validate(tc.in)

			// Assert
			if err != nil {
				t.Fatalf("unexpected executor error: %v", err)
			}
			if len(violations) != len(tc.wantIDs) {
				t.Fatalf("expected %d violations, got %d: %v", len(tc.wantIDs), len(violations), violations)
			}
			for i, id := range tc.wantIDs {
				if violations[i].MessageID != id {
					t.Fatalf("violation %d: expected message id %q, got %q", i, id, violations[i].MessageID)
				}
			}
		})
	}
}

func TestValidateViolationShape(t *testing.T) {
	// Arrange
	e := newSignupExecutor(t)

	// Act
	violations, err := e.Validate(signupInput{Username: "j", Email: "your@email.com"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected executor error: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("expected one violation, got %v", violations)
	}
	if violations[0].Field != "username" {
		t.Fatalf("expected snake_case field, got %q", violations[0].Field)
	}
	if violations[0].Fallback == "" {
		t.Fatal("expected fallback text from the English translations")
	}
}

func TestValidateNonStructIsExecutorError(t *testing.T) {
	// Arrange
	e := newSignupExecutor(t)

	// Act
	_, err := e.Validate("not a struct")

	// Assert
	if err == nil {
		t.Fatal("expected executor error for non-struct input, got nil")
	}
}

func TestViolationsError(t *testing.T) {
	// Arrange
	vs := Violations{
		{Field: "username", Fallback: "Username is a required field"},
		{Field: "email", Fallback: "Email must be a valid email address"},
	}

	// Act
	msg := vs.Error()

	// Assert
	if !strings.Contains(msg, "username") || !strings.Contains(msg, "email") {
		t.Fatalf("unexpected error text: %q", msg)
	}
}
