package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-keeper/internal/screen"
	"github.com/MKhiriev/go-profile-keeper/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// command turns a screen request into work against the session. Session
// completions carry the request epoch. Logout is executed by the caller
// before any command it may race with.
func command(ctx context.Context, session service.ClientSessionService, req screen.Request) tea.Cmd {
	switch req.Kind {
	case screen.RequestRestore:
		return func() tea.Msg {
			profile, ok := session.Restore(ctx)
			return restoreDoneMsg{epoch: req.Epoch, profile: profile, ok: ok}
		}
	case screen.RequestLogin:
		return func() tea.Msg {
			res, err := session.Login(ctx, req.Email, req.Password)
			return loginDoneMsg{epoch: req.Epoch, result: res, err: err}
		}
	case screen.RequestSignup:
		return func() tea.Msg {
			return signupDoneMsg{err: session.Signup(ctx, req.Name, req.Email, req.Password)}
		}
	case screen.RequestFetchProfile:
		return func() tea.Msg {
			profile, err := session.LoadProfile(ctx)
			return profileLoadedMsg{epoch: req.Epoch, profile: profile, err: err}
		}
	case screen.RequestUpdateProfile:
		return func() tea.Msg {
			profile, err := session.UpdateProfile(ctx, req.Name, req.Bio)
			return saveDoneMsg{epoch: req.Epoch, profile: profile, err: err}
		}
	default:
		return nil
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
