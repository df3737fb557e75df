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

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidDataProvided)
		writeValidationError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Info().Err(err).Msg("signup rejected")
		writeValidationError(w, err)
		return
	}

	profile, err := h.users.create(request)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyRegistered):
			log.Info().Str("email", request.Email).Msg("email already registered")
			utils.WriteDetail(w, app.MsgEmailAlreadyRegistered, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Str("email", profile.Email).Msg("user registered")
	utils.WriteJSON(w, profile, http.StatusCreated)
}

// login reads form-encoded credentials; the e-mail arrives as "username".
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg(app.MsgInvalidDataProvided)
		writeValidationError(w, err)
		return
	}

	creds := models.Credentials{
		Email:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Validate(ctx, creds); err != nil {
		log.Info().Err(err).Msg("login rejected")
		writeValidationError(w, err)
		return
	}

	profile, err := h.users.authenticate(creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWrongPassword):
			log.Info().Err(err).Msg("no user was found/wrong password")
			utils.WriteDetail(w, app.MsgIncorrectCredentials, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := utils.GenerateJWTToken(h.tokenIssuer, profile.Email, h.tokenDuration, h.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AccessToken{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
}
