package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/userkit/internal/auth"
	"github.com/ferdiebergado/userkit/internal/pkg/message"
	"github.com/ferdiebergado/userkit/internal/pkg/web"
	"github.com/ferdiebergado/userkit/internal/user"
)

func registerRequest(t *testing.T, params auth.RegisterRequest) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	return req.WithContext(web.NewContextWithParams(req.Context(), params))
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		register   func(ctx context.Context, params auth.RegisterParams) (user.User, error)
		wantStatus int
		wantMsg    string
	}{
		{"created",
			func(ctx context.Context, params auth.RegisterParams) (user.User, error) {
				return user.User{
					Email:        params.Email,
					AvatarURL:    "https://www.gravatar.com/avatar/abc?s=200&r=pg&d=retro",
					Subscription: user.SubscriptionStarter,
				}, nil
			},
			http.StatusCreated,
			message.Registered,
		},
		{"email in use",
			func(ctx context.Context, params auth.RegisterParams) (user.User, error) {
				return user.User{}, auth.ErrEmailInUse
			},
			http.StatusConflict,
			message.EmailInUse,
		},
		{"service failure",
			func(ctx context.Context, params auth.RegisterParams) (user.User, error) {
				return user.User{}, errors.New("db down")
			},
			http.StatusInternalServerError,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(&auth.StubService{RegisterFunc: tt.register})
			req := registerRequest(t, auth.RegisterRequest{Email: testEmail, Password: testPass})
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}

			res := rec.Result()
			defer res.Body.Close()
			web.AssertContentType(t, res)

			if tt.wantMsg == "" {
				return
			}

			body := web.DecodeJSONResponse(t, res)
			if msg := body["message"]; msg != tt.wantMsg {
				t.Errorf("body[%q] = %v, want: %q", "message", msg, tt.wantMsg)
			}
		})
	}
}

func TestHandler_Register_ResponseBody(t *testing.T) {
	t.Parallel()

	const avatar = "https://www.gravatar.com/avatar/abc?s=200&r=pg&d=retro"
	handler := auth.NewHandler(&auth.StubService{
		RegisterFunc: func(ctx context.Context, params auth.RegisterParams) (user.User, error) {
			return user.User{
				ID:           "1",
				Email:        params.Email,
				PasswordHash: "must not leak",
				AvatarURL:    avatar,
				Subscription: user.SubscriptionStarter,
			}, nil
		},
	})

	req := registerRequest(t, auth.RegisterRequest{Email: testEmail, Password: testPass})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	res := rec.Result()
	defer res.Body.Close()
	body := web.DecodeJSONResponse(t, res)

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("body[%q] = %v, want an object", "data", body["data"])
	}
	u, ok := data["user"].(map[string]any)
	if !ok {
		t.Fatalf("data[%q] = %v, want an object", "user", data["user"])
	}

	if u["email"] != testEmail {
		t.Errorf("user.email = %v, want: %q", u["email"], testEmail)
	}
	if u["avatarURL"] != avatar {
		t.Errorf("user.avatarURL = %v, want: %q", u["avatarURL"], avatar)
	}
	if u["subscription"] != user.SubscriptionStarter {
		t.Errorf("user.subscription = %v, want: %q", u["subscription"], user.SubscriptionStarter)
	}
	for key := range u {
		if key != "email" && key != "avatarURL" && key != "subscription" {
			t.Errorf("unexpected field %q in user payload", key)
		}
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		login      func(ctx context.Context, params auth.LoginParams) (string, *user.User, error)
		wantStatus int
		wantMsg    string
	}{
		{"success",
			func(ctx context.Context, params auth.LoginParams) (string, *user.User, error) {
				return "signed-token", &user.User{Email: params.Email, Subscription: user.SubscriptionPro}, nil
			},
			http.StatusOK,
			"",
		},
		{"invalid credentials",
			func(ctx context.Context, params auth.LoginParams) (string, *user.User, error) {
				return "", nil, auth.ErrInvalidCredentials
			},
			http.StatusUnauthorized,
			message.InvalidCredentials,
		},
		{"not verified",
			func(ctx context.Context, params auth.LoginParams) (string, *user.User, error) {
				return "", nil, auth.ErrNotVerified
			},
			http.StatusUnauthorized,
			message.NotVerified,
		},
		{"service failure",
			func(ctx context.Context, params auth.LoginParams) (string, *user.User, error) {
				return "", nil, errors.New("db down")
			},
			http.StatusInternalServerError,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(&auth.StubService{LoginFunc: tt.login})

			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req = req.WithContext(web.NewContextWithParams(req.Context(),
				auth.LoginRequest{Email: testEmail, Password: testPass}))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}

			res := rec.Result()
			defer res.Body.Close()
			body := web.DecodeJSONResponse(t, res)

			if tt.wantMsg != "" {
				if msg := body["message"]; msg != tt.wantMsg {
					t.Errorf("body[%q] = %v, want: %q", "message", msg, tt.wantMsg)
				}
				return
			}

			if tt.wantStatus != http.StatusOK {
				return
			}

			data, ok := body["data"].(map[string]any)
			if !ok {
				t.Fatalf("body[%q] = %v, want an object", "data", body["data"])
			}
			if data["token"] != "signed-token" {
				t.Errorf("data.token = %v, want: %q", data["token"], "signed-token")
			}
		})
	}
}

func TestHandler_VerifyEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		verify     func(ctx context.Context, verificationToken string) error
		wantStatus int
		wantMsg    string
	}{
		{"success",
			"tok-1",
			func(ctx context.Context, verificationToken string) error { return nil },
			http.StatusOK,
			message.VerificationOK,
		},
		{"unknown token",
			"tok-unknown",
			func(ctx context.Context, verificationToken string) error { return user.ErrNotFound },
			http.StatusNotFound,
			message.NotFound,
		},
		{"empty token",
			"",
			nil,
			http.StatusNotFound,
			message.NotFound,
		},
		{"service failure",
			"tok-1",
			func(ctx context.Context, verificationToken string) error { return errors.New("db down") },
			http.StatusInternalServerError,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(&auth.StubService{VerifyFunc: tt.verify})

			req := httptest.NewRequest(http.MethodGet, "/verify/"+tt.token, nil)
			req.SetPathValue("verificationToken", tt.token)
			rec := httptest.NewRecorder()

			handler.VerifyEmail(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}

			if tt.wantMsg == "" {
				return
			}

			res := rec.Result()
			defer res.Body.Close()
			body := web.DecodeJSONResponse(t, res)
			if msg := body["message"]; msg != tt.wantMsg {
				t.Errorf("body[%q] = %v, want: %q", "message", msg, tt.wantMsg)
			}
		})
	}
}

func TestHandler_ResendVerification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resend     func(ctx context.Context, email string) error
		wantStatus int
		wantMsg    string
	}{
		{"success",
			func(ctx context.Context, email string) error { return nil },
			http.StatusOK,
			message.VerificationSent,
		},
		{"unknown email",
			func(ctx context.Context, email string) error { return user.ErrNotFound },
			http.StatusNotFound,
			message.NotFound,
		},
		{"already verified",
			func(ctx context.Context, email string) error { return auth.ErrAlreadyVerified },
			http.StatusBadRequest,
			message.AlreadyVerified,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := auth.NewHandler(&auth.StubService{ResendVerificationFunc: tt.resend})

			req := httptest.NewRequest(http.MethodPost, "/verify", nil)
			req = req.WithContext(web.NewContextWithParams(req.Context(),
				auth.ResendVerificationRequest{Email: testEmail}))
			rec := httptest.NewRecorder()

			handler.ResendVerification(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.wantStatus)
			}

			res := rec.Result()
			defer res.Body.Close()
			body := web.DecodeJSONResponse(t, res)
			if msg := body["message"]; msg != tt.wantMsg {
				t.Errorf("body[%q] = %v, want: %q", "message", msg, tt.wantMsg)
			}
		})
	}
}
