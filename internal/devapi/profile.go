package devapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-profile-keeper/internal/app"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/utils"
	"github.com/MKhiriev/go-profile-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user e-mail in context")
		unauthorized(w, app.MsgTokenIsExpiredOrInvalid)
		return
	}

	profile, err := h.users.get(email)
	if err != nil {
		writeLookupError(w, log, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user e-mail in context")
		unauthorized(w, app.MsgTokenIsExpiredOrInvalid)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg(app.MsgInvalidDataProvided)
		writeValidationError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, update); err != nil {
		log.Info().Err(err).Msg("profile update rejected")
		writeValidationError(w, err)
		return
	}

	profile, err := h.users.update(email, update)
	if err != nil {
		writeLookupError(w, log, err)
		return
	}

	log.Info().Str("email", profile.Email).Msg("profile updated")
	utils.WriteJSON(w, profile, http.StatusOK)
}

// writeLookupError answers 401 for a token whose user is gone.
func writeLookupError(w http.ResponseWriter, log *logger.Logger, err error) {
	if errors.Is(err, ErrUserNotFound) {
		log.Info().Err(err).Msg("token subject no longer exists")
		unauthorized(w, app.MsgTokenIsExpiredOrInvalid)
		return
	}

	log.Err(err).Msg("unexpected error occurred during profile lookup")
	utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
}
