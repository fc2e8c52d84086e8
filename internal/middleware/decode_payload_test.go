package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/userkit/internal/middleware"
	"github.com/ferdiebergado/userkit/internal/pkg/message"
	"github.com/ferdiebergado/userkit/internal/pkg/web"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const payloadLimit = 1 << 20

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantNext   bool
	}{
		{"valid payload",
			`{"email":"alice@example.com","password":"secret1"}`,
			http.StatusOK,
			true,
		},
		{"invalid json",
			`{"email":`,
			http.StatusBadRequest,
			false,
		},
		{"empty body",
			``,
			http.StatusBadRequest,
			false,
		},
		{"unknown field",
			`{"email":"alice@example.com","password":"secret1","username":"alice"}`,
			http.StatusUnprocessableEntity,
			false,
		},
		{"trailing data",
			`{"email":"alice@example.com","password":"secret1"}{"email":"bob@example.com"}`,
			http.StatusBadRequest,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var decoded loginPayload
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				params, err := web.ParamsFromContext[loginPayload](r.Context())
				if err != nil {
					t.Errorf("ParamsFromContext() error = %v", err)
					return
				}
				decoded = params
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			middleware.DecodePayload[loginPayload](payloadLimit)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}
			if nextCalled != tt.wantNext {
				t.Errorf("nextCalled = %v, want: %v", nextCalled, tt.wantNext)
			}

			if !tt.wantNext {
				return
			}
			if decoded.Email != "alice@example.com" || decoded.Password != "secret1" {
				t.Errorf("decoded = %+v, want the request body fields", decoded)
			}
		})
	}
}

func TestDecodePayload_BodyTooLarge(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called for an oversized body")
	})

	body := `{"email":"` + strings.Repeat("a", 64) + `@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	middleware.DecodePayload[loginPayload](16)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestDecodePayload_UnknownFieldDetails(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called for a payload with an unknown field")
	})

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"alice@example.com","username":"alice"}`))
	rec := httptest.NewRecorder()

	middleware.DecodePayload[loginPayload](payloadLimit)(next).ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()
	body := web.DecodeJSONResponse(t, res)

	errs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("body[%q] = %v, want an object", "errors", body["errors"])
	}
	if field, ok := errs["field"].(string); !ok || !strings.Contains(field, "username") {
		t.Errorf("errs[%q] = %v, want it to name %q", "field", errs["field"], "username")
	}
}
