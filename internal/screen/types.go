// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package screen holds the state of the client's single screen and the
// transitions between its states. It performs no I/O: intents return a
// [Request] for the caller to execute, and the outcome is applied with the
// matching ...Done method.
package screen

// Tab is the active view.
type Tab int

const (
	TabLogin Tab = iota
	TabSignup
	TabProfile
)

func (t Tab) String() string {
	switch t {
	case TabLogin:
		return "Login"
	case TabSignup:
		return "Signup"
	case TabProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// ProfileMode is the sub-state of the profile tab.
type ProfileMode int

const (
	ModeViewing ProfileMode = iota
	// ModeEditing is only entered while a profile is cached.
	ModeEditing
)

// FeedbackKind is the tone of the feedback banner.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackSuccess
	FeedbackError
	FeedbackInfo
)

// Feedback is the outcome of the last operation.
type Feedback struct {
	Text string
	Kind FeedbackKind
}

// Empty reports whether there is nothing to show.
func (f Feedback) Empty() bool {
	return f.Kind == FeedbackNone || f.Text == ""
}

// AuthForm holds the login and signup inputs. Name is only used by signup.
type AuthForm struct {
	Name     string
	Email    string
	Password string
}

// Drafts are scratch copies of the editable profile fields.
type Drafts struct {
	Name string
	Bio  string
}

// RequestKind names an operation the caller must run.
type RequestKind int

const (
	RequestNone RequestKind = iota
	RequestRestore
	RequestLogin
	RequestSignup
	RequestFetchProfile
	RequestUpdateProfile
	RequestLogout
)

func (k RequestKind) String() string {
	switch k {
	case RequestRestore:
		return "restore"
	case RequestLogin:
		return "login"
	case RequestSignup:
		return "signup"
	case RequestFetchProfile:
		return "fetch profile"
	case RequestUpdateProfile:
		return "update profile"
	case RequestLogout:
		return "logout"
	default:
		return "none"
	}
}

// Request is an operation to execute on behalf of the screen. Only the
// fields relevant to Kind are set. Epoch is the machine epoch at issue time;
// a completion is applied only while [Machine.Current] holds for it.
type Request struct {
	Kind     RequestKind
	Epoch    uint64
	Name     string
	Email    string
	Password string
	Bio      string
}
