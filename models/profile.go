// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Profile is the server-owned user profile cached by the client.
//
// The server is the source of truth: a successful update replaces the cached
// value with the response body, fields are never merged locally. Fields the
// client does not know about are ignored on decode.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

// Initial returns the upper-cased first letter of the trimmed name, or "U"
// when the profile has no name.
func (p Profile) Initial() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return "U"
	}

	first := []rune(name)[0]
	return strings.ToUpper(string(first))
}

// ProfileUpdate is the PUT /profile/me payload. Only name and bio are editable.
type ProfileUpdate struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}
