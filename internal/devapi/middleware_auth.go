package devapi

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-profile-keeper/internal/app"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/utils"
)

// auth enforces bearer authentication. On success the token subject (the
// user's e-mail) is stored in the request context under
// [utils.UserEmailCtxKey].
//
// Every rejection is a 401 with a WWW-Authenticate challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg("empty `Authorization` header")
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}

		email, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserEmailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteDetail(w, detail, http.StatusUnauthorized)
}
