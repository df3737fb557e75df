package models

// SignupRequest is the JSON payload of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials holds the login form values. They are submitted form-encoded,
// with Email sent under the "username" key.
type Credentials struct {
	Email    string
	Password string
}

// FormData returns the form-encoded representation expected by
// POST /auth/login.
func (c Credentials) FormData() map[string]string {
	return map[string]string{
		"username": c.Email,
		"password": c.Password,
	}
}
