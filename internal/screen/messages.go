package screen

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-profile-keeper/internal/adapter"
	"github.com/MKhiriev/go-profile-keeper/internal/service"
)

const (
	MsgSigningUp      = "Signing up..."
	MsgSignupSuccess  = "Signup success! Switch to Login tab."
	MsgSignupCheck    = "Please check the fields and try again."
	MsgSignupFailed   = "Signup failed. Please try again."
	MsgSignupNetwork  = "Network error during signup. Please check your internet."
	MsgLoggingIn      = "Logging in..."
	MsgLoginSuccess   = "Login success! Profile loaded."
	MsgLoginInvalid   = "Invalid email or password."
	MsgLoginCheck     = "Please fill in email and password correctly."
	MsgLoginFailed    = "Login failed. Please try again."
	MsgLoginNetwork   = "Network error during login. Please check your internet."
	MsgProfileFailed  = "Failed to load profile. Please try again."
	MsgProfileNetwork = "Network error while loading profile. Please check your internet."
	MsgUpdateNoAuth   = "You must be logged in to update profile."
	MsgUpdating       = "Updating profile..."
	MsgUpdateSuccess  = "Profile updated successfully."
	MsgUpdateFailed   = "Failed to update profile. Please try again."
	MsgUpdateCheck    = "Please check the fields and try again."
	MsgUpdateNetwork  = "Network error while updating profile. Please check your internet."
	MsgLoggedOut      = "Logged out."
	MsgEditCancelled  = "Edit cancelled."

	MsgNoName          = "No name set"
	MsgNoBio           = "No bio added yet."
	MsgLoginFirst      = "Please log in first to load your profile."
	MsgNoProfileLoaded = "No profile loaded yet."
)

// discarded reports whether err marks a completion that must not change the
// screen.
func discarded(err error) bool {
	return errors.Is(err, service.ErrStaleSession) || errors.Is(err, service.ErrOperationInProgress)
}

func signupMessage(err error) string {
	apiErr := adapter.AsAPIError("signup", err)
	switch {
	case apiErr.Kind == adapter.KindNetwork:
		return MsgSignupNetwork
	case apiErr.Status == http.StatusBadRequest && apiErr.Detail != "":
		return apiErr.Detail
	case apiErr.Status == http.StatusUnprocessableEntity:
		return MsgSignupCheck
	default:
		return MsgSignupFailed
	}
}

func loginMessage(err error) string {
	apiErr := adapter.AsAPIError("login", err)
	switch {
	case apiErr.Kind == adapter.KindNetwork:
		return MsgLoginNetwork
	case apiErr.Status == http.StatusBadRequest:
		return MsgLoginInvalid
	case apiErr.Status == http.StatusUnprocessableEntity:
		return MsgLoginCheck
	default:
		return MsgLoginFailed
	}
}

// detailOr returns the server detail of err, or fallback. Network failures
// map to network.
func detailOr(err error, fallback, network string) string {
	apiErr := adapter.AsAPIError("", err)
	switch {
	case apiErr.Kind == adapter.KindNetwork:
		return network
	case apiErr.Status != http.StatusUnprocessableEntity && apiErr.Detail != "":
		return apiErr.Detail
	default:
		return fallback
	}
}

func profileLoadMessage(err error) string {
	return detailOr(err, MsgProfileFailed, MsgProfileNetwork)
}

func updateMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return MsgUpdateNoAuth
	case adapter.AsAPIError("update profile", err).Status == http.StatusUnprocessableEntity:
		return MsgUpdateCheck
	default:
		return detailOr(err, MsgUpdateFailed, MsgUpdateNetwork)
	}
}
