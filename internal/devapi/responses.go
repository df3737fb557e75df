package devapi

import (
	"net/http"

	"github.com/MKhiriev/go-profile-keeper/internal/utils"
	"github.com/MKhiriev/go-profile-keeper/internal/validators"
	"github.com/MKhiriev/go-profile-keeper/models"
)

// validationIssue is one entry of a 422 detail list.
type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// writeValidationError answers 422 with a list-valued detail, which the
// client must not show verbatim.
func writeValidationError(w http.ResponseWriter, err error) {
	issues := []validationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}

	if fieldErrs, ok := validators.AsFieldErrors(err); ok {
		issues = issues[:0]
		for _, fe := range fieldErrs {
			issues = append(issues, validationIssue{
				Loc:  []string{"body", fe.Field},
				Msg:  fe.Err.Error(),
				Type: "value_error",
			})
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: issues}, http.StatusUnprocessableEntity)
}
