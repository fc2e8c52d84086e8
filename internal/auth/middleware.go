package auth

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/userkit/internal/pkg/message"
	"github.com/ferdiebergado/userkit/internal/pkg/security"
	"github.com/ferdiebergado/userkit/internal/pkg/web"
	"github.com/ferdiebergado/userkit/internal/platform/jwt"
	"github.com/ferdiebergado/userkit/internal/user"
)

var ErrInvalidToken = errors.New("invalid token")

// RequireToken resolves the bearer token into the current user. The token has
// to carry a valid signature and match the session token stored on the record,
// so a logged-out token is rejected even before its expiry.
func RequireToken(signer jwt.Signer, users user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.NotAuthorized, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.NotAuthorized, nil)
				return
			}

			u, err := users.Find(r.Context(), claims.UserID)
			if err != nil {
				web.RespondUnauthorized(w, err, message.NotAuthorized, nil)
				return
			}

			if u.SessionToken == nil || *u.SessionToken != token {
				web.RespondUnauthorized(w, ErrInvalidToken, message.NotAuthorized, nil)
				return
			}

			ctx := user.NewContextWithUser(r.Context(), u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
