package tui

import "github.com/MKhiriev/go-profile-keeper/models"

type restoreDoneMsg struct {
	epoch   uint64
	profile models.Profile
	ok      bool
}

type loginDoneMsg struct {
	epoch  uint64
	result models.LoginResult
	err    error
}

type signupDoneMsg struct {
	err error
}

type profileLoadedMsg struct {
	epoch   uint64
	profile models.Profile
	err     error
}

type saveDoneMsg struct {
	epoch   uint64
	profile models.Profile
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
