package tui

import (
	"context"

	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/screen"
	"github.com/MKhiriev/go-profile-keeper/internal/service"
	"github.com/MKhiriev/go-profile-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

const (
	draftName = iota
	draftBio
)

type rootModel struct {
	ctx       context.Context
	session   service.ClientSessionService
	machine   *screen.Machine
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// auth inputs are shared by the login and signup tabs; login skips name
	auth   []textinput.Model
	drafts []textinput.Model
	focus  int
	// form identifies the inputs focus refers to
	form formID

	spinner    spinner.Model
	status     string
	showAbout  bool
	quitByUser bool
}

func newModel(ctx context.Context, session service.ClientSessionService, buildInfo models.AppBuildInfo, log *logger.Logger) *rootModel {
	name := newInput("name", 64)
	email := newInput("email", 254)
	password := newInput("password", 256)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	draftNameInput := newInput("name", 64)
	draftBioInput := newInput("bio", 500)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &rootModel{
		ctx:       ctx,
		session:   session,
		machine:   screen.New(),
		buildInfo: buildInfo,
		logger:    log,
		auth:      []textinput.Model{name, email, password},
		drafts:    []textinput.Model{draftNameInput, draftBioInput},
		spinner:   s,
	}
	m.form = m.currentForm()
	m.focus = m.firstField()
	m.applyFocus()

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

// Init implements [tea.Model]. It starts the session restore.
func (m *rootModel) Init() tea.Cmd {
	req := m.machine.Start()
	return tea.Batch(textinput.Blink, m.spinner.Tick, command(m.ctx, m.session, req))
}

// Update implements [tea.Model].
func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restoreDoneMsg:
		if !m.current("restore", msg.epoch) {
			return m, nil
		}
		m.machine.RestoreDone(msg.profile, msg.ok)
		return m, m.sync()
	case loginDoneMsg:
		if !m.current("login", msg.epoch) {
			return m, nil
		}
		m.machine.LoginDone(msg.result, msg.err)
		return m, m.sync()
	case signupDoneMsg:
		m.machine.SignupDone(msg.err)
		return m, m.sync()
	case profileLoadedMsg:
		if !m.current("fetch profile", msg.epoch) {
			return m, nil
		}
		m.machine.ProfileLoaded(msg.profile, msg.err)
		return m, m.sync()
	case saveDoneMsg:
		if !m.current("update profile", msg.epoch) {
			return m, nil
		}
		m.machine.SaveDone(msg.profile, msg.err)
		return m, m.sync()
	case copiedMsg:
		m.status = "E-mail copied to clipboard."
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
		m.status = "Could not copy e-mail."
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.machine.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// current reports whether a completion issued at epoch still applies.
// Stale ones are only logged.
func (m *rootModel) current(op string, epoch uint64) bool {
	if m.machine.Current(epoch) {
		return true
	}
	m.logger.Debug().Str("op", op).Uint64("epoch", epoch).Msg("dropping completion from before logout")
	return false
}

func (m *rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.about):
		m.showAbout = !m.showAbout
		return m, nil
	case m.showAbout:
		if key.Matches(msg, keys.cancel) {
			m.showAbout = false
		}
		return m, nil
	case key.Matches(msg, keys.tabLogin):
		return m, m.switchTab(screen.TabLogin)
	case key.Matches(msg, keys.tabSignup):
		return m, m.switchTab(screen.TabSignup)
	case key.Matches(msg, keys.tabProfile):
		return m, m.switchTab(screen.TabProfile)
	}

	switch m.machine.Tab() {
	case screen.TabLogin:
		if key.Matches(msg, keys.submit) {
			return m, m.submit(m.machine.SubmitLogin())
		}
		return m, m.handleInputKey(msg)
	case screen.TabSignup:
		if key.Matches(msg, keys.submit) {
			return m, m.submit(m.machine.SubmitSignup())
		}
		return m, m.handleInputKey(msg)
	case screen.TabProfile:
		if m.machine.Editing() {
			switch {
			case key.Matches(msg, keys.submit):
				return m, m.submit(m.machine.SaveEdit())
			case key.Matches(msg, keys.cancel):
				m.machine.CancelEdit()
				return m, m.sync()
			}
			return m, m.handleInputKey(msg)
		}
		return m, m.handleProfileKey(msg)
	}

	return m, nil
}

func (m *rootModel) handleProfileKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.edit):
		if m.machine.StartEdit() {
			return m.sync()
		}
	case key.Matches(msg, keys.logout):
		if m.machine.Authenticated() {
			return m.logout()
		}
	case key.Matches(msg, keys.copyEmail):
		if profile, ok := m.machine.Profile(); ok && profile.Email != "" {
			return cmdCopyToClipboard(profile.Email)
		}
	}
	return nil
}

// handleInputKey moves focus or forwards msg to the focused input and copies
// the value into the machine.
func (m *rootModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.next):
		m.moveFocus(1)
		return nil
	case key.Matches(msg, keys.prev):
		m.moveFocus(-1)
		return nil
	}

	inputs := m.inputs()
	if m.focus < 0 || m.focus >= len(inputs) {
		return nil
	}

	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	value := inputs[m.focus].Value()

	if m.machine.Tab() == screen.TabProfile {
		switch m.focus {
		case draftName:
			m.machine.SetDraftName(value)
		case draftBio:
			m.machine.SetDraftBio(value)
		}
		return cmd
	}

	switch m.focus {
	case fieldName:
		m.machine.SetName(value)
	case fieldEmail:
		m.machine.SetEmail(value)
	case fieldPassword:
		m.machine.SetPassword(value)
	}
	return cmd
}

func (m *rootModel) switchTab(tab screen.Tab) tea.Cmd {
	req, ok := m.machine.SwitchTab(tab)
	cmd := m.sync()
	if !ok {
		return cmd
	}
	return tea.Batch(cmd, m.spinner.Tick, command(m.ctx, m.session, req))
}

func (m *rootModel) submit(req screen.Request, ok bool) tea.Cmd {
	cmd := m.sync()
	if !ok {
		return cmd
	}
	return tea.Batch(cmd, m.spinner.Tick, command(m.ctx, m.session, req))
}

// logout runs synchronously so no command issued afterwards can observe the
// old session.
func (m *rootModel) logout() tea.Cmd {
	m.machine.Logout()
	m.session.Logout(m.ctx)
	return m.sync()
}

type formID struct {
	tab     screen.Tab
	editing bool
}

func (m *rootModel) currentForm() formID {
	return formID{tab: m.machine.Tab(), editing: m.machine.Editing()}
}

// inputs returns the inputs of the active form, or nil when none is shown.
func (m *rootModel) inputs() []textinput.Model {
	switch m.machine.Tab() {
	case screen.TabLogin, screen.TabSignup:
		return m.auth
	case screen.TabProfile:
		if m.machine.Editing() {
			return m.drafts
		}
	}
	return nil
}

func (m *rootModel) firstField() int {
	switch m.machine.Tab() {
	case screen.TabLogin:
		return fieldEmail
	default:
		return 0
	}
}

func (m *rootModel) moveFocus(delta int) {
	inputs := m.inputs()
	if len(inputs) == 0 {
		return
	}

	first := m.firstField()
	count := len(inputs) - first
	m.focus = first + ((m.focus-first+delta)%count+count)%count
	m.applyFocus()
}

// sync copies machine state into the widgets after a transition.
func (m *rootModel) sync() tea.Cmd {
	form := m.machine.Form()
	m.auth[fieldName].SetValue(form.Name)
	m.auth[fieldEmail].SetValue(form.Email)
	m.auth[fieldPassword].SetValue(form.Password)

	drafts := m.machine.Drafts()
	m.drafts[draftName].SetValue(drafts.Name)
	m.drafts[draftBio].SetValue(drafts.Bio)

	if current := m.currentForm(); current != m.form {
		m.form = current
		m.focus = m.firstField()
	}
	return m.applyFocus()
}

func (m *rootModel) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	active := m.inputs()
	for i := range m.auth {
		m.auth[i].Blur()
	}
	for i := range m.drafts {
		m.drafts[i].Blur()
	}
	if m.focus >= 0 && m.focus < len(active) {
		cmd = active[m.focus].Focus()
	}
	return cmd
}
