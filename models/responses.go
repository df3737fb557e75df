package models

// ErrorResponse is the error body shape returned by the profile API.
//
// Detail is a human readable message for 400-class validation failures.
// Some frameworks emit a list of field errors under the same key on 422, so
// it is decoded as an arbitrary JSON value; see [ErrorResponse.Message].
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// Message returns Detail when it is a non-empty string and "" otherwise.
func (e ErrorResponse) Message() string {
	s, ok := e.Detail.(string)
	if !ok {
		return ""
	}
	return s
}
