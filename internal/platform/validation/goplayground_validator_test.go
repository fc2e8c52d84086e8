package validation_test

import (
	"strings"
	"testing"

	"github.com/ferdiebergado/userkit/internal/platform/validation"
)

type signupInput struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Subscription string `json:"subscription" validate:"omitempty,oneof=starter pro business"`
}

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	v := validation.NewGoPlaygroundValidator()

	tests := []struct {
		name       string
		input      signupInput
		wantFields []string
	}{
		{"valid input",
			signupInput{Email: "alice@example.com", Password: "secret1", Subscription: "pro"},
			nil,
		},
		{"valid without subscription",
			signupInput{Email: "alice@example.com", Password: "secret1"},
			nil,
		},
		{"missing email",
			signupInput{Password: "secret1"},
			[]string{"email"},
		},
		{"invalid email",
			signupInput{Email: "not-an-email", Password: "secret1"},
			[]string{"email"},
		},
		{"short password",
			signupInput{Email: "alice@example.com", Password: "short"},
			[]string{"password"},
		},
		{"unknown subscription",
			signupInput{Email: "alice@example.com", Password: "secret1", Subscription: "platinum"},
			[]string{"subscription"},
		},
		{"multiple failures",
			signupInput{},
			[]string{"email", "password"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := v.ValidateStruct(tt.input)

			if tt.wantFields == nil {
				if errs != nil {
					t.Fatalf("ValidateStruct() = %v, want: nil", errs)
				}
				return
			}

			if len(errs) != len(tt.wantFields) {
				t.Fatalf("len(errs) = %d (%v), want: %d", len(errs), errs, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("errs has no entry for %q: %v", field, errs)
				}
			}
		})
	}
}

func TestGoPlaygroundValidator_UsesJSONTagNames(t *testing.T) {
	t.Parallel()

	v := validation.NewGoPlaygroundValidator()

	errs := v.ValidateStruct(signupInput{Password: "secret1"})
	if _, ok := errs["Email"]; ok {
		t.Errorf("errs keyed by struct field name: %v, want json tag names", errs)
	}

	msg, ok := errs["email"]
	if !ok {
		t.Fatalf("errs has no entry for %q: %v", "email", errs)
	}
	if !strings.Contains(msg, "email is required") {
		t.Errorf("msg = %q, want it to mention %q", msg, "email is required")
	}
}
