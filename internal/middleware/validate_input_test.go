package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/userkit/internal/middleware"
	"github.com/ferdiebergado/userkit/internal/pkg/message"
	"github.com/ferdiebergado/userkit/internal/pkg/web"
	"github.com/ferdiebergado/userkit/internal/platform/validation"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		errs       map[string]string
		wantStatus int
		wantNext   bool
	}{
		{"valid params", nil, http.StatusOK, true},
		{"validation failures",
			map[string]string{"email": "email is required"},
			http.StatusBadRequest,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			validator := &validation.StubValidator{
				ValidateStructFunc: func(s any) map[string]string { return tt.errs },
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req = req.WithContext(web.NewContextWithParams(req.Context(), loginPayload{
				Email:    "alice@example.com",
				Password: "secret1",
			}))
			rec := httptest.NewRecorder()

			middleware.ValidateInput[loginPayload](validator)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}
			if nextCalled != tt.wantNext {
				t.Errorf("nextCalled = %v, want: %v", nextCalled, tt.wantNext)
			}
		})
	}
}

func TestValidateInput_MissingParams(t *testing.T) {
	t.Parallel()

	validator := &validation.StubValidator{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called without decoded params in context")
	})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()

	middleware.ValidateInput[loginPayload](validator)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusBadRequest)
	}
}
