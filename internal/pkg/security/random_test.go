package security_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/userkit/internal/pkg/security"
)

func TestGenerateRandomBytes(t *testing.T) {
	t.Parallel()

	const length = 16

	first, err := security.GenerateRandomBytes(length)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != length {
		t.Errorf("len(first) = %d, want: %d", len(first), length)
	}

	second, err := security.GenerateRandomBytes(length)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) == string(second) {
		t.Error("two calls returned identical bytes")
	}
}

func TestGenerateRandomBytesURLEncoded(t *testing.T) {
	t.Parallel()

	encoded, err := security.GenerateRandomBytesURLEncoded(16)
	if err != nil {
		t.Fatal(err)
	}
	if encoded == "" {
		t.Fatal("encoded output is empty")
	}

	for _, c := range encoded {
		if c == '+' || c == '/' || c == '=' {
			t.Errorf("encoded output %q contains %q, want the unpadded url-safe alphabet", encoded, c)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"valid bearer", "Bearer abc123", "abc123", nil},
		{"no header", "", "", security.ErrMissingBearer},
		{"wrong scheme", "Basic abc123", "", security.ErrMissingBearer},
		{"empty token", "Bearer ", "", security.ErrMissingBearer},
		{"lowercase scheme", "bearer abc123", "", security.ErrMissingBearer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/current", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := security.ExtractBearerToken(req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want: %v", err, tt.wantErr)
			}
			if token != tt.wantToken {
				t.Errorf("token = %q, want: %q", token, tt.wantToken)
			}
		})
	}
}
