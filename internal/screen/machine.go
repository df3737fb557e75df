package screen

import (
	"errors"

	"github.com/MKhiriev/go-profile-keeper/internal/service"
	"github.com/MKhiriev/go-profile-keeper/models"
)

// Machine is the screen state. The zero value is not usable; call [New].
// Machine is not safe for concurrent use: the caller applies intents and
// completions from one goroutine.
type Machine struct {
	tab      Tab
	mode     ProfileMode
	feedback Feedback

	form     AuthForm
	drafts   Drafts
	strength int

	authenticated bool
	profile       *models.Profile

	pending map[RequestKind]bool
	epoch   uint64
}

// New returns a machine on the login tab with no session.
func New() *Machine {
	return &Machine{
		tab:     TabLogin,
		pending: make(map[RequestKind]bool),
	}
}

func (m *Machine) Tab() Tab { return m.tab }
func (m *Machine) Mode() ProfileMode { return m.mode }
func (m *Machine) Feedback() Feedback { return m.feedback }
func (m *Machine) Form() AuthForm { return m.form }
func (m *Machine) Drafts() Drafts { return m.drafts }
func (m *Machine) Strength() int { return m.strength }
func (m *Machine) Authenticated() bool { return m.authenticated }
func (m *Machine) Pending(k RequestKind) bool { return m.pending[k] }

// Current reports whether a completion of a request issued at epoch may
// still be applied. Logout starts a new epoch.
func (m *Machine) Current(epoch uint64) bool {
	return epoch == m.epoch
}

// Editing reports whether the profile tab is in edit mode.
func (m *Machine) Editing() bool {
	return m.mode == ModeEditing
}

// Busy reports whether any request is in flight.
func (m *Machine) Busy() bool {
	for _, p := range m.pending {
		if p {
			return true
		}
	}
	return false
}

// Profile returns the cached profile.
func (m *Machine) Profile() (models.Profile, bool) {
	if m.profile == nil {
		return models.Profile{}, false
	}
	return *m.profile, true
}

// Start begins the startup restore.
func (m *Machine) Start() Request {
	m.pending[RequestRestore] = true
	return Request{Kind: RequestRestore, Epoch: m.epoch}
}

// RestoreDone applies the restore outcome. It never produces feedback.
func (m *Machine) RestoreDone(profile models.Profile, ok bool) {
	m.pending[RequestRestore] = false
	if !ok {
		return
	}

	m.authenticated = true
	m.setProfile(profile)
	m.tab = TabProfile
}

// SwitchTab activates tab and clears feedback. Leaving for login or signup
// resets the auth form. Entering profile with a session but no cached
// profile asks for a fetch.
func (m *Machine) SwitchTab(tab Tab) (Request, bool) {
	m.tab = tab
	m.feedback = Feedback{}

	switch tab {
	case TabLogin, TabSignup:
		m.form = AuthForm{}
	case TabProfile:
		if m.authenticated && m.profile == nil && !m.pending[RequestFetchProfile] {
			m.pending[RequestFetchProfile] = true
			return Request{Kind: RequestFetchProfile, Epoch: m.epoch}, true
		}
	}

	return Request{}, false
}

func (m *Machine) SetName(v string)     { m.form.Name = v }
func (m *Machine) SetEmail(v string)    { m.form.Email = v }
func (m *Machine) SetPassword(v string) { m.form.Password = v }

// SubmitLogin requests a login with the form credentials. It refuses while
// a login is already pending.
func (m *Machine) SubmitLogin() (Request, bool) {
	if m.pending[RequestLogin] {
		return Request{}, false
	}

	m.pending[RequestLogin] = true
	m.feedback = Feedback{Text: MsgLoggingIn, Kind: FeedbackInfo}
	return Request{Kind: RequestLogin, Epoch: m.epoch, Email: m.form.Email, Password: m.form.Password}, true
}

// LoginDone applies a login outcome. On failure only the password is
// cleared. On success the form is reset and the profile tab shown; a failed
// profile fetch replaces the success banner with its error.
func (m *Machine) LoginDone(res models.LoginResult, err error) {
	if discarded(err) {
		return
	}
	m.pending[RequestLogin] = false

	if err != nil {
		m.feedback = Feedback{Text: loginMessage(err), Kind: FeedbackError}
		m.form.Password = ""
		return
	}

	m.authenticated = true
	m.profile = nil
	m.mode = ModeViewing
	m.seedDrafts()
	m.pending[RequestFetchProfile] = false
	m.pending[RequestUpdateProfile] = false
	m.feedback = Feedback{Text: MsgLoginSuccess, Kind: FeedbackSuccess}
	switch {
	case discarded(res.ProfileErr):
	case res.ProfileErr != nil:
		m.feedback = Feedback{Text: profileLoadMessage(res.ProfileErr), Kind: FeedbackError}
	default:
		m.setProfile(res.Profile)
	}

	m.form = AuthForm{}
	m.tab = TabProfile
}

// SubmitSignup requests a registration with the form fields.
func (m *Machine) SubmitSignup() (Request, bool) {
	if m.pending[RequestSignup] {
		return Request{}, false
	}

	m.pending[RequestSignup] = true
	m.feedback = Feedback{Text: MsgSigningUp, Kind: FeedbackInfo}
	return Request{Kind: RequestSignup, Epoch: m.epoch, Name: m.form.Name, Email: m.form.Email, Password: m.form.Password}, true
}

// SignupDone applies a signup outcome. Success resets the form and moves to
// the login tab; failure keeps the form.
func (m *Machine) SignupDone(err error) {
	m.pending[RequestSignup] = false

	if err != nil {
		m.feedback = Feedback{Text: signupMessage(err), Kind: FeedbackError}
		return
	}

	m.feedback = Feedback{Text: MsgSignupSuccess, Kind: FeedbackSuccess}
	m.form = AuthForm{}
	m.tab = TabLogin
}

// ProfileLoaded applies a non-silent profile fetch outcome.
func (m *Machine) ProfileLoaded(profile models.Profile, err error) {
	if discarded(err) || m.orphaned(err) {
		return
	}
	m.pending[RequestFetchProfile] = false

	if err != nil {
		m.feedback = Feedback{Text: profileLoadMessage(err), Kind: FeedbackError}
		return
	}
	m.setProfile(profile)
}

// StartEdit enters edit mode with drafts seeded from the cached profile. It
// does nothing without a profile.
func (m *Machine) StartEdit() bool {
	if m.profile == nil {
		return false
	}

	m.seedDrafts()
	m.mode = ModeEditing
	m.feedback = Feedback{}
	return true
}

func (m *Machine) SetDraftName(v string) {
	m.drafts.Name = v
	m.strength = Score(m.drafts.Name, m.drafts.Bio)
}

func (m *Machine) SetDraftBio(v string) {
	m.drafts.Bio = v
	m.strength = Score(m.drafts.Name, m.drafts.Bio)
}

// SaveEdit requests an update with the drafts. Without a session it sets a
// local error and requests nothing. Outside edit mode it does nothing.
func (m *Machine) SaveEdit() (Request, bool) {
	if !m.authenticated {
		m.feedback = Feedback{Text: MsgUpdateNoAuth, Kind: FeedbackError}
		return Request{}, false
	}
	if m.mode != ModeEditing {
		return Request{}, false
	}
	if m.pending[RequestUpdateProfile] {
		return Request{}, false
	}

	m.pending[RequestUpdateProfile] = true
	m.feedback = Feedback{Text: MsgUpdating, Kind: FeedbackInfo}
	return Request{Kind: RequestUpdateProfile, Epoch: m.epoch, Name: m.drafts.Name, Bio: m.drafts.Bio}, true
}

// SaveDone applies an update outcome. Success replaces the cached profile
// with the server's copy and leaves edit mode; failure stays in edit mode.
func (m *Machine) SaveDone(profile models.Profile, err error) {
	if discarded(err) || m.orphaned(err) {
		return
	}
	m.pending[RequestUpdateProfile] = false

	if err != nil {
		m.feedback = Feedback{Text: updateMessage(err), Kind: FeedbackError}
		return
	}

	m.setProfile(profile)
	m.mode = ModeViewing
	m.feedback = Feedback{Text: MsgUpdateSuccess, Kind: FeedbackSuccess}
}

// CancelEdit leaves edit mode and discards the drafts. The cached profile
// is never touched.
func (m *Machine) CancelEdit() {
	if m.mode != ModeEditing {
		return
	}

	m.mode = ModeViewing
	m.seedDrafts()
	m.feedback = Feedback{Text: MsgEditCancelled, Kind: FeedbackInfo}
}

// Logout clears the session view and returns to the login tab. It starts a
// new epoch, so requests still in flight are no longer current and their
// pending state is dropped.
func (m *Machine) Logout() Request {
	m.epoch++
	m.authenticated = false
	m.profile = nil
	m.mode = ModeViewing
	m.form = AuthForm{}
	m.drafts = Drafts{}
	m.strength = 0
	clear(m.pending)
	m.feedback = Feedback{Text: MsgLoggedOut, Kind: FeedbackInfo}
	m.tab = TabLogin

	return Request{Kind: RequestLogout, Epoch: m.epoch}
}

// orphaned reports whether err is a missing session reported after the
// machine itself already dropped it.
func (m *Machine) orphaned(err error) bool {
	return !m.authenticated && errors.Is(err, service.ErrNotAuthenticated)
}

func (m *Machine) setProfile(profile models.Profile) {
	m.profile = &profile
	m.seedDrafts()
}

func (m *Machine) seedDrafts() {
	if m.profile == nil {
		m.drafts = Drafts{}
	} else {
		m.drafts = Drafts{Name: m.profile.Name, Bio: m.profile.Bio}
	}
	m.strength = Score(m.drafts.Name, m.drafts.Bio)
}
