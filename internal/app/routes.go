package app

import (
	"net/http"

	"github.com/ferdiebergado/userkit/internal/auth"
	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/middleware"
	"github.com/ferdiebergado/userkit/internal/platform/jwt"
	"github.com/ferdiebergado/userkit/internal/platform/router"
	"github.com/ferdiebergado/userkit/internal/platform/validation"
	"github.com/ferdiebergado/userkit/internal/user"
)

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, maxBodyBytes int64) {
	r.Post("/register", handler.Register,
		middleware.DecodePayload[auth.RegisterRequest](maxBodyBytes),
		middleware.ValidateInput[auth.RegisterRequest](validator))
	r.Post("/login", handler.Login,
		middleware.DecodePayload[auth.LoginRequest](maxBodyBytes),
		middleware.ValidateInput[auth.LoginRequest](validator))
	r.Get("/verify/{verificationToken}", handler.VerifyEmail)
	r.Post("/verify", handler.ResendVerification,
		middleware.DecodePayload[auth.ResendVerificationRequest](maxBodyBytes),
		middleware.ValidateInput[auth.ResendVerificationRequest](validator))
}

func mountUserRoutes(r router.Router, handler *user.Handler, signer jwt.Signer, users user.Service) {
	requireToken := auth.RequireToken(signer, users)

	r.Get("/current", handler.GetCurrent, requireToken)
	r.Post("/logout", handler.Logout, requireToken)
	r.Patch("/avatar", handler.ChangeAvatar, requireToken)
}

func mountStaticRoutes(r router.Router, cfg *config.Avatar) {
	prefix := cfg.PublicPath + "/"
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Dir)))
	r.Get(prefix, fileServer.ServeHTTP)
}
