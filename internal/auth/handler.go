package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/userkit/internal/pkg/message"
	"github.com/ferdiebergado/userkit/internal/pkg/web"
	"github.com/ferdiebergado/userkit/internal/user"
)

const maskChar = "*"

// AuthService is the account lifecycle surface the handlers depend on.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (user.User, error)
	Login(ctx context.Context, params LoginParams) (token string, u *user.User, err error)
	Verify(ctx context.Context, verificationToken string) error
	ResendVerification(ctx context.Context, email string) error
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	Email        string `json:"email,omitempty" validate:"required,email"`
	Password     string `json:"password,omitempty" validate:"required,min=6"`
	Subscription string `json:"subscription,omitempty" validate:"omitempty,oneof=starter pro business"`
}

func (r *RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type registeredUser struct {
	Email        string `json:"email"`
	AvatarURL    string `json:"avatarURL"`
	Subscription string `json:"subscription"`
}

// RegisterResponse exposes only the public fields of the new account, never
// the password hash or the internal id.
type RegisterResponse struct {
	User registeredUser `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := RegisterParams(req)
	newUser, err := h.svc.Register(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrEmailInUse) {
			web.RespondConflict(w, err, message.EmailInUse, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.Registered
	data := &RegisterResponse{
		User: registeredUser{
			Email:        newUser.Email,
			AvatarURL:    newUser.AvatarURL,
			Subscription: newUser.Subscription,
		},
	}
	web.RespondCreated(w, &msg, data)
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r *LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type loggedInUser struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  loggedInUser `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := LoginParams(req)
	token, u, err := h.svc.Login(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondUnauthorized(w, err, message.InvalidCredentials, nil)
			return
		}
		if errors.Is(err, ErrNotVerified) {
			web.RespondUnauthorized(w, err, message.NotVerified, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	data := &LoginResponse{
		Token: token,
		User: loggedInUser{
			Email:        u.Email,
			Subscription: u.Subscription,
		},
	}
	web.RespondOK(w, nil, data)
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("verificationToken")
	if token == "" {
		web.RespondNotFound(w, errors.New("empty verification token"), message.NotFound, nil)
		return
	}

	if err := h.svc.Verify(r.Context(), token); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, message.NotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.VerificationOK
	web.RespondOK(w, &msg, &struct{}{})
}

type ResendVerificationRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r *ResendVerificationRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
	)
}

func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ResendVerificationRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.ResendVerification(r.Context(), req.Email); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, message.NotFound, nil)
			return
		}
		if errors.Is(err, ErrAlreadyVerified) {
			web.RespondBadRequest(w, err, message.AlreadyVerified, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.VerificationSent
	web.RespondOK(w, &msg, &struct{}{})
}
