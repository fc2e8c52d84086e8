package user

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/pkg/message"
	"github.com/ferdiebergado/userkit/internal/pkg/web"
)

var ErrMissingAvatarFile = errors.New("missing avatar file")

// Handler serves the routes that require an authenticated principal. The
// bearer-token middleware resolves the current user into the request context;
// handlers here never re-resolve it.
type Handler struct {
	svc Service
	cfg *config.Avatar
}

func NewHandler(svc Service, cfg *config.Avatar) *Handler {
	return &Handler{
		svc: svc,
		cfg: cfg,
	}
}

type CurrentResponse struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
	AvatarURL    string `json:"avatarURL"`
}

func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	u, err := FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotAuthorized, nil)
		return
	}

	data := &CurrentResponse{
		Email:        u.Email,
		Subscription: u.Subscription,
		AvatarURL:    u.AvatarURL,
	}
	web.RespondOK(w, nil, data)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	u, err := FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotAuthorized, nil)
		return
	}

	if err := h.svc.EndSession(r.Context(), u.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondUnauthorized(w, err, message.NotAuthorized, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondNoContent(w)
}

type ChangeAvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

func (h *Handler) ChangeAvatar(w http.ResponseWriter, r *http.Request) {
	u, err := FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.NotAuthorized, nil)
		return
	}

	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		web.RespondBadRequest(w, ErrMissingAvatarFile, message.MissingAvatar, nil)
		return
	}
	defer file.Close()

	avatarURL, err := h.svc.ChangeAvatar(r.Context(), u.ID, header.Filename, file)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := &ChangeAvatarResponse{AvatarURL: avatarURL}
	web.RespondCreated(w, nil, data)
}
