package screen

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-profile-keeper/internal/adapter"
	"github.com/MKhiriev/go-profile-keeper/internal/service"
	"github.com/MKhiriev/go-profile-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ada = models.Profile{Name: "Ada", Email: "ada@example.com", Bio: "math"}

func loggedInMachine(t *testing.T) *Machine {
	t.Helper()
	m := New()
	m.SetEmail("ada@example.com")
	m.SetPassword("pw")
	_, ok := m.SubmitLogin()
	require.True(t, ok)
	m.LoginDone(models.LoginResult{Profile: ada}, nil)
	return m
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestMachine_RestoreAccepted(t *testing.T) {
	m := New()
	req := m.Start()
	assert.Equal(t, RequestRestore, req.Kind)
	assert.True(t, m.Busy())

	m.RestoreDone(ada, true)

	assert.Equal(t, TabProfile, m.Tab())
	assert.True(t, m.Feedback().Empty())
	assert.True(t, m.Authenticated())
	got, ok := m.Profile()
	assert.True(t, ok)
	assert.Equal(t, ada, got)
	assert.False(t, m.Busy())
}

func TestMachine_RestoreRejected(t *testing.T) {
	m := New()
	m.Start()
	m.RestoreDone(models.Profile{}, false)

	assert.Equal(t, TabLogin, m.Tab())
	assert.True(t, m.Feedback().Empty())
	assert.False(t, m.Authenticated())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestMachine_LoginSuccess(t *testing.T) {
	m := New()
	m.SetEmail("ada@example.com")
	m.SetPassword("pw")

	req, ok := m.SubmitLogin()
	require.True(t, ok)
	assert.Equal(t, Request{Kind: RequestLogin, Email: "ada@example.com", Password: "pw"}, req)
	assert.Equal(t, Feedback{Text: MsgLoggingIn, Kind: FeedbackInfo}, m.Feedback())

	m.LoginDone(models.LoginResult{Profile: ada}, nil)

	assert.Equal(t, TabProfile, m.Tab())
	assert.Equal(t, Feedback{Text: MsgLoginSuccess, Kind: FeedbackSuccess}, m.Feedback())
	assert.Equal(t, AuthForm{}, m.Form())
	assert.True(t, m.Authenticated())
	got, _ := m.Profile()
	assert.Equal(t, ada, got)
	assert.Equal(t, Drafts{Name: "Ada", Bio: "math"}, m.Drafts())
}

func TestMachine_LoginWrongCredentials(t *testing.T) {
	m := New()
	m.SetEmail("ada@example.com")
	m.SetPassword("wrong")
	m.SubmitLogin()

	m.LoginDone(models.LoginResult{}, &adapter.APIError{Op: "login", Status: 400, Kind: adapter.KindUnauthorized, Detail: "Incorrect email or password"})

	assert.Equal(t, Feedback{Text: MsgLoginInvalid, Kind: FeedbackError}, m.Feedback())
	assert.Equal(t, "ada@example.com", m.Form().Email)
	assert.Empty(t, m.Form().Password)
	assert.False(t, m.Authenticated())
	assert.Equal(t, TabLogin, m.Tab())
}

func TestMachine_LoginMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "422", err: &adapter.APIError{Status: 422, Kind: adapter.KindValidation}, want: MsgLoginCheck},
		{name: "500", err: &adapter.APIError{Status: 500, Kind: adapter.KindUnknown, Detail: "boom"}, want: MsgLoginFailed},
		{name: "missing token", err: &adapter.APIError{Status: 200, Kind: adapter.KindUnknown, Err: adapter.ErrMissingAccessToken}, want: MsgLoginFailed},
		{name: "network", err: &adapter.APIError{Kind: adapter.KindNetwork}, want: MsgLoginNetwork},
		{name: "wrapped network", err: fmt.Errorf("x: %w", &adapter.APIError{Kind: adapter.KindNetwork}), want: MsgLoginNetwork},
		{name: "foreign error", err: errors.New("boom"), want: MsgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.SubmitLogin()
			m.LoginDone(models.LoginResult{}, tt.err)
			assert.Equal(t, Feedback{Text: tt.want, Kind: FeedbackError}, m.Feedback())
		})
	}
}

func TestMachine_LoginProfileFetchFailure(t *testing.T) {
	m := New()
	m.SubmitLogin()

	m.LoginDone(models.LoginResult{ProfileErr: &adapter.APIError{Status: 500, Kind: adapter.KindUnknown}}, nil)

	assert.True(t, m.Authenticated())
	assert.Equal(t, TabProfile, m.Tab())
	assert.Equal(t, Feedback{Text: MsgProfileFailed, Kind: FeedbackError}, m.Feedback())
	_, ok := m.Profile()
	assert.False(t, ok)
	assert.False(t, m.StartEdit(), "editing requires a cached profile")
}

func TestMachine_DoubleSubmitGuard(t *testing.T) {
	m := New()
	_, ok := m.SubmitLogin()
	require.True(t, ok)

	_, ok = m.SubmitLogin()
	assert.False(t, ok)

	m.LoginDone(models.LoginResult{}, &adapter.APIError{Status: 400})
	_, ok = m.SubmitLogin()
	assert.True(t, ok)
}

func TestMachine_StaleLoginIsIgnored(t *testing.T) {
	m := New()
	m.SetEmail("ada@example.com")
	m.SubmitLogin()
	m.Logout()

	m.LoginDone(models.LoginResult{}, service.ErrStaleSession)

	assert.False(t, m.Authenticated())
	assert.Equal(t, Feedback{Text: MsgLoggedOut, Kind: FeedbackInfo}, m.Feedback())
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestMachine_SignupSuccess(t *testing.T) {
	m := New()
	m.SwitchTab(TabSignup)
	m.SetName("Ada")
	m.SetEmail("ada@example.com")
	m.SetPassword("pw")

	req, ok := m.SubmitSignup()
	require.True(t, ok)
	assert.Equal(t, Request{Kind: RequestSignup, Name: "Ada", Email: "ada@example.com", Password: "pw"}, req)
	assert.Equal(t, Feedback{Text: MsgSigningUp, Kind: FeedbackInfo}, m.Feedback())

	m.SignupDone(nil)

	assert.Equal(t, TabLogin, m.Tab())
	assert.Equal(t, AuthForm{}, m.Form())
	assert.Equal(t, Feedback{Text: MsgSignupSuccess, Kind: FeedbackSuccess}, m.Feedback())
	assert.False(t, m.Authenticated())
}

func TestMachine_SignupFailureKeepsForm(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "400 detail", err: &adapter.APIError{Status: 400, Kind: adapter.KindValidation, Detail: "Email already registered"}, want: "Email already registered"},
		{name: "400 no detail", err: &adapter.APIError{Status: 400, Kind: adapter.KindValidation}, want: MsgSignupFailed},
		{name: "422", err: &adapter.APIError{Status: 422, Kind: adapter.KindValidation}, want: MsgSignupCheck},
		{name: "500 detail ignored", err: &adapter.APIError{Status: 500, Kind: adapter.KindUnknown, Detail: "boom"}, want: MsgSignupFailed},
		{name: "network", err: &adapter.APIError{Kind: adapter.KindNetwork}, want: MsgSignupNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.SwitchTab(TabSignup)
			m.SetName("Ada")
			m.SetEmail("ada@example.com")
			m.SetPassword("pw")
			m.SubmitSignup()

			m.SignupDone(tt.err)

			assert.Equal(t, Feedback{Text: tt.want, Kind: FeedbackError}, m.Feedback())
			assert.Equal(t, AuthForm{Name: "Ada", Email: "ada@example.com", Password: "pw"}, m.Form())
			assert.Equal(t, TabSignup, m.Tab())
		})
	}
}

// ── Tabs ─────────────────────────────────────────────────────────────────────

func TestMachine_SwitchTabClearsFeedbackAndForm(t *testing.T) {
	m := New()
	m.SetEmail("ada@example.com")
	m.SubmitLogin()
	m.LoginDone(models.LoginResult{}, &adapter.APIError{Status: 400})
	require.False(t, m.Feedback().Empty())

	_, fetch := m.SwitchTab(TabSignup)

	assert.False(t, fetch)
	assert.True(t, m.Feedback().Empty())
	assert.Equal(t, AuthForm{}, m.Form())
}

func TestMachine_SwitchToProfileFetchesWhenMissing(t *testing.T) {
	m := New()
	m.SubmitLogin()
	m.LoginDone(models.LoginResult{ProfileErr: &adapter.APIError{Kind: adapter.KindNetwork}}, nil)
	m.SwitchTab(TabLogin)

	req, ok := m.SwitchTab(TabProfile)
	require.True(t, ok)
	assert.Equal(t, RequestFetchProfile, req.Kind)

	_, again := m.SwitchTab(TabProfile)
	assert.False(t, again, "fetch already pending")

	m.ProfileLoaded(ada, nil)
	got, ok := m.Profile()
	assert.True(t, ok)
	assert.Equal(t, ada, got)

	_, ok = m.SwitchTab(TabProfile)
	assert.False(t, ok)
}

func TestMachine_SwitchToProfileAnonymous(t *testing.T) {
	m := New()
	_, ok := m.SwitchTab(TabProfile)
	assert.False(t, ok)
	assert.Equal(t, TabProfile, m.Tab())
}

func TestMachine_ProfileLoadedMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "detail", err: &adapter.APIError{Status: 401, Kind: adapter.KindUnknown, Detail: "Could not validate credentials"}, want: "Could not validate credentials"},
		{name: "no detail", err: &adapter.APIError{Status: 500, Kind: adapter.KindUnknown}, want: MsgProfileFailed},
		{name: "network", err: &adapter.APIError{Kind: adapter.KindNetwork}, want: MsgProfileNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.ProfileLoaded(models.Profile{}, tt.err)
			assert.Equal(t, Feedback{Text: tt.want, Kind: FeedbackError}, m.Feedback())
		})
	}
}

// ── Editing ──────────────────────────────────────────────────────────────────

func TestMachine_EditFlow(t *testing.T) {
	m := loggedInMachine(t)

	require.True(t, m.StartEdit())
	assert.True(t, m.Editing())
	assert.True(t, m.Feedback().Empty())
	assert.Equal(t, Score("Ada", "math"), m.Strength())

	m.SetDraftName("Ada Lovelace")
	m.SetDraftBio(strings.Repeat("x", 30))
	assert.Equal(t, 80, m.Strength())

	req, ok := m.SaveEdit()
	require.True(t, ok)
	assert.Equal(t, Request{Kind: RequestUpdateProfile, Name: "Ada Lovelace", Bio: strings.Repeat("x", 30)}, req)
	assert.Equal(t, Feedback{Text: MsgUpdating, Kind: FeedbackInfo}, m.Feedback())

	_, again := m.SaveEdit()
	assert.False(t, again)

	server := models.Profile{Name: "Ada Lovelace", Email: "ada@example.com", Bio: "from server"}
	m.SaveDone(server, nil)

	assert.False(t, m.Editing())
	got, _ := m.Profile()
	assert.Equal(t, server, got)
	assert.Equal(t, Feedback{Text: MsgUpdateSuccess, Kind: FeedbackSuccess}, m.Feedback())
}

func TestMachine_SaveFailureStaysEditing(t *testing.T) {
	m := loggedInMachine(t)
	m.StartEdit()
	m.SetDraftBio("new")
	m.SaveEdit()

	m.SaveDone(models.Profile{}, &adapter.APIError{Status: 400, Kind: adapter.KindValidation, Detail: "Bio too long"})

	assert.True(t, m.Editing())
	assert.Equal(t, Feedback{Text: "Bio too long", Kind: FeedbackError}, m.Feedback())
	assert.Equal(t, "new", m.Drafts().Bio)
	got, _ := m.Profile()
	assert.Equal(t, ada, got)
}

func TestMachine_SaveMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "422 asks to check fields", err: &adapter.APIError{Status: 422, Kind: adapter.KindValidation, Detail: "name: too long"}, want: MsgUpdateCheck},
		{name: "500 without detail", err: &adapter.APIError{Status: 500, Kind: adapter.KindUnknown}, want: MsgUpdateFailed},
		{name: "network", err: &adapter.APIError{Kind: adapter.KindNetwork}, want: MsgUpdateNetwork},
		{name: "session gone", err: service.ErrNotAuthenticated, want: MsgUpdateNoAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loggedInMachine(t)
			m.StartEdit()
			m.SaveEdit()
			m.SaveDone(models.Profile{}, tt.err)
			assert.Equal(t, Feedback{Text: tt.want, Kind: FeedbackError}, m.Feedback())
		})
	}
}

func TestMachine_SaveWhileAnonymous(t *testing.T) {
	m := New()

	_, ok := m.SaveEdit()

	assert.False(t, ok)
	assert.Equal(t, Feedback{Text: MsgUpdateNoAuth, Kind: FeedbackError}, m.Feedback())
	assert.False(t, m.Pending(RequestUpdateProfile))
}

func TestMachine_CancelEditNeverMutatesProfile(t *testing.T) {
	drafts := []Drafts{
		{},
		{Name: "Someone Else", Bio: strings.Repeat("y", 100)},
		{Name: "   ", Bio: "\n"},
	}

	for _, d := range drafts {
		m := loggedInMachine(t)
		require.True(t, m.StartEdit())
		m.SetDraftName(d.Name)
		m.SetDraftBio(d.Bio)

		m.CancelEdit()

		got, ok := m.Profile()
		assert.True(t, ok)
		assert.Equal(t, ada, got)
		assert.False(t, m.Editing())
		assert.Equal(t, Feedback{Text: MsgEditCancelled, Kind: FeedbackInfo}, m.Feedback())
		assert.Equal(t, Drafts{Name: ada.Name, Bio: ada.Bio}, m.Drafts())
	}
}

func TestMachine_SaveOutsideEditMode(t *testing.T) {
	m := loggedInMachine(t)
	m.SetDraftBio("typed while viewing")

	_, ok := m.SaveEdit()

	assert.False(t, ok)
	assert.False(t, m.Pending(RequestUpdateProfile))
	assert.Equal(t, Feedback{Text: MsgLoginSuccess, Kind: FeedbackSuccess}, m.Feedback())
}

func TestMachine_StartEditWithoutProfile(t *testing.T) {
	m := New()
	assert.False(t, m.StartEdit())
	assert.False(t, m.Editing())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestMachine_Logout(t *testing.T) {
	m := loggedInMachine(t)
	m.StartEdit()
	m.SaveEdit()
	m.SwitchTab(TabLogin)
	m.SetEmail("typed@example.com")

	req := m.Logout()

	assert.Equal(t, RequestLogout, req.Kind)
	assert.Equal(t, TabLogin, m.Tab())
	assert.False(t, m.Authenticated())
	assert.False(t, m.Editing())
	assert.False(t, m.Busy())
	assert.Equal(t, AuthForm{}, m.Form())
	assert.Equal(t, Feedback{Text: MsgLoggedOut, Kind: FeedbackInfo}, m.Feedback())
	_, ok := m.Profile()
	assert.False(t, ok)

	m.SaveDone(ada, service.ErrStaleSession)
	_, ok = m.Profile()
	assert.False(t, ok)
}

func TestMachine_LogoutStartsNewEpoch(t *testing.T) {
	m := New()
	m.SubmitLogin()
	m.LoginDone(models.LoginResult{ProfileErr: errors.New("fetch failed")}, nil)
	m.SwitchTab(TabLogin)
	fetch, ok := m.SwitchTab(TabProfile)
	require.True(t, ok)
	assert.True(t, m.Current(fetch.Epoch))

	out := m.Logout()

	assert.False(t, m.Current(fetch.Epoch))
	assert.True(t, m.Current(out.Epoch))
	login, ok := m.SubmitLogin()
	require.True(t, ok)
	assert.Equal(t, out.Epoch, login.Epoch)
}

func TestMachine_LateCompletionsAfterLogout(t *testing.T) {
	tests := []struct {
		name  string
		apply func(m *Machine)
	}{
		{name: "fetch", apply: func(m *Machine) { m.ProfileLoaded(models.Profile{}, service.ErrNotAuthenticated) }},
		{name: "update", apply: func(m *Machine) { m.SaveDone(models.Profile{}, service.ErrNotAuthenticated) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loggedInMachine(t)
			m.StartEdit()
			m.SaveEdit()
			m.Logout()

			tt.apply(m)

			assert.Equal(t, TabLogin, m.Tab())
			assert.Equal(t, Feedback{Text: MsgLoggedOut, Kind: FeedbackInfo}, m.Feedback())
			assert.False(t, m.Busy())
		})
	}
}
