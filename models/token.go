package models

// AccessToken is the JSON body returned by a successful POST /auth/login.
//
// The token itself is opaque to the client; it is only presented back via
// the Authorization header and persisted between runs.
type AccessToken struct {
	// AccessToken is the bearer credential. An empty value means the login
	// response is unusable even when the HTTP status was successful.
	AccessToken string `json:"access_token"`

	// TokenType is informational ("bearer"); the client does not inspect it.
	TokenType string `json:"token_type,omitempty"`
}
