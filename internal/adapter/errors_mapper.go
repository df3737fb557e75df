package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-profile-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	opSignup        = "signup"
	opLogin         = "login"
	opFetchProfile  = "fetch profile"
	opUpdateProfile = "update profile"
)

// mapHTTPError classifies a received response. It returns nil for 2xx.
//
//	400 -> validation (unauthorized for login), detail kept
//	422 -> validation, body ignored
//	*   -> unknown, detail kept
func mapHTTPError(op string, resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Op: op, Status: status, Kind: KindUnknown}

	switch status {
	case http.StatusBadRequest:
		apiErr.Kind = KindValidation
		if op == opLogin {
			apiErr.Kind = KindUnauthorized
		}
		apiErr.Detail = decodeDetail(resp.Body())
	case http.StatusUnprocessableEntity:
		apiErr.Kind = KindValidation
	default:
		apiErr.Detail = decodeDetail(resp.Body())
	}

	return apiErr
}

// mapTransportError wraps a failure where no response was received.
func mapTransportError(op string, err error) error {
	return &APIError{Op: op, Kind: KindNetwork, Err: err}
}

func decodeDetail(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.Message()
}
