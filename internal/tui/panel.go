// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/harbor-admin/internal/locale"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/internal/service"
	"github.com/MKhiriev/harbor-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	usernameColumnWidth  = 24
	timestampColumnWidth = 24
	statusTimeout        = 2 * time.Second
)

// panelModel is the user administration panel: the account table plus the
// create, pass phrase, delete and notice dialogs drawn over it.
type panelModel struct {
	ctx       context.Context
	accounts  service.AccountService
	formatter *locale.Formatter
	buildInfo models.AppBuildInfo
	backend   string
	logger    *logger.Logger

	users   []models.Account
	idx     int
	loading bool
	status  string

	showCreate     bool
	create         createFormModel
	showPassphrase bool
	passphrase     passphraseDialogModel
	showConfirm    bool
	confirm        confirmModel
	showNotice     bool
	notice         noticeOverlayModel
	showInfo       bool
}

func newPanelModel(ctx context.Context, accounts service.AccountService, formatter *locale.Formatter, buildInfo models.AppBuildInfo, backend string, logger *logger.Logger) panelModel {
	return panelModel{
		ctx:       ctx,
		accounts:  accounts,
		formatter: formatter,
		buildInfo: buildInfo,
		backend:   backend,
		logger:    logger,
		loading:   true,
		create:    newCreateFormModel(),
	}
}

func (m panelModel) Init() tea.Cmd {
	return m.cmdLoadAccounts()
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.exit) {
			return m, tea.Quit
		}
		if m.showNotice {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showNotice = false
				m.notice = noticeOverlayModel{}
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case accountsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.report(msg.err)
			return m, nil
		}
		m.users = msg.accounts
		m.clampCursor()
		return m, nil
	case accountCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			m.report(msg.err)
			return m, nil
		}
		m.showCreate = false
		m.create = newCreateFormModel()
		m.loading = true
		return m, m.cmdLoadAccounts()
	case passphraseChangedMsg:
		if msg.err != nil {
			m.report(msg.err)
			return m, nil
		}
		m.showNoticef(models.SuccessNotice(service.TextPassphraseUpdated))
		return m, nil
	case accountDeletedMsg:
		if msg.err != nil {
			m.report(msg.err)
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadAccounts()
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard unavailable")
			m.status = "Clipboard unavailable"
		} else {
			m.status = fmt.Sprintf("Copied %q", msg.username)
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch {
	case m.showPassphrase:
		return m.updatePassphrase(msg)
	case m.showCreate:
		return m.updateCreate(msg)
	case m.showInfo:
		return m.updateInfo(msg)
	default:
		return m.updateList(msg)
	}
}

func (m panelModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.users)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.add):
		m.showCreate = true
		m.create = newCreateFormModel()
	case key.Matches(keyMsg, keys.passwd):
		user, ok := m.current()
		if !ok {
			return m, nil
		}
		m.showPassphrase = true
		m.passphrase = newPassphraseDialogModel(user.Username)
	case key.Matches(keyMsg, keys.delete):
		user, ok := m.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{username: user.Username}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadAccounts()
	case key.Matches(keyMsg, keys.copy):
		user, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(user.Username)
	case key.Matches(keyMsg, keys.info):
		m.showInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m panelModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.showCreate = false
			m.create = newCreateFormModel()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.create = m.create.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.create = m.create.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.create.lastFocused() {
				m.create = m.create.focusNext()
				return m, nil
			}
			form := m.create.form()
			if form.PassphrasesMismatch() {
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreateAccount(form)
		}
	}

	var cmd tea.Cmd
	m.create, cmd = m.create.update(msg)
	return m, cmd
}

func (m panelModel) updatePassphrase(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.showPassphrase = false
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.passphrase.lastFocused() {
				m.passphrase = m.passphrase.focusNext()
				return m, nil
			}
			m.showPassphrase = false
			return m, m.cmdChangePassphrase(m.passphrase.change())
		}
	}

	var cmd tea.Cmd
	m.passphrase, cmd = m.passphrase.update(msg)
	return m, cmd
}

func (m panelModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		return m, m.cmdDeleteAccount(m.confirm.username)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m panelModel) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.info) {
			m.showInfo = false
		}
	}
	return m, nil
}

func (m panelModel) View() string {
	var body string
	switch {
	case m.showCreate:
		body = m.create.View()
	case m.showInfo:
		body = renderBuildInfoWindow(m.buildInfo, m.backend)
	default:
		body = m.viewList()
	}

	if m.showPassphrase {
		body += "\n\n" + m.passphrase.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showNotice {
		body += "\n\n" + m.notice.View()
	}

	return appStyle.Render(body)
}

func (m panelModel) viewList() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %s│ %s│ %s│ %s\n",
		fitText("Username", usernameColumnWidth),
		fitText("Created", timestampColumnWidth),
		fitText("Modified", timestampColumnWidth),
		"Actions",
	))
	b.WriteString("──" + strings.Repeat("─", usernameColumnWidth) + "┼─" +
		strings.Repeat("─", timestampColumnWidth) + "┼─" +
		strings.Repeat("─", timestampColumnWidth) + "┼────────\n")

	switch {
	case m.loading && len(m.users) == 0:
		b.WriteString("Loading...\n")
	case len(m.users) == 0:
		b.WriteString("No user accounts\n")
	default:
		for i, user := range m.users {
			row := fmt.Sprintf("%s│ %s│ %s│ p d",
				fitText(user.Username, usernameColumnWidth),
				fitText(m.formatter.Format(user.CreatedAt), timestampColumnWidth),
				fitText(m.formatter.Format(user.ModifiedAt), timestampColumnWidth),
			)
			if i == m.idx {
				b.WriteString("> " + selectedStyle.Render(row) + "\n")
			} else {
				b.WriteString("  " + row + "\n")
			}
		}
	}

	if m.loading && len(m.users) > 0 {
		b.WriteString("\nRefreshing...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("Users", strings.TrimRight(b.String(), "\n"),
		"a: add │ p: pass phrase │ d: delete │ r: refresh │ c: copy name │ v: about │ ↑/↓: move │ q: quit")
}

func (m panelModel) current() (models.Account, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.Account{}, false
	}
	return m.users[m.idx], true
}

func (m *panelModel) clampCursor() {
	if m.idx >= len(m.users) {
		m.idx = len(m.users) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *panelModel) showNoticef(notice models.Notice) {
	m.logger.Debug().Stringer("level", notice.Level).Str("text", notice.Text).Msg("notice shown")
	m.showNotice = true
	m.notice = noticeOverlayModel{notice: notice}
}

// report shows the notice err maps to, or logs err when it has none.
func (m *panelModel) report(err error) {
	if notice, ok := service.Feedback(err); ok {
		m.showNoticef(notice)
		return
	}
	if service.IsAborted(err) {
		return
	}
	m.logger.Error().Err(err).Msg("account operation failed")
}

func (m panelModel) cmdLoadAccounts() tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		accounts, err := svc.List(ctx)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func (m panelModel) cmdCreateAccount(form models.AccountForm) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		err := svc.Create(ctx, form)
		return accountCreatedMsg{username: form.Username, err: err}
	}
}

func (m panelModel) cmdChangePassphrase(change models.PassphraseChange) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		err := svc.ChangePassphrase(ctx, change)
		return passphraseChangedMsg{username: change.Username, err: err}
	}
}

func (m panelModel) cmdDeleteAccount(username string) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		err := svc.Delete(ctx, username, true)
		return accountDeletedMsg{username: username, err: err}
	}
}

func cmdCopyToClipboard(username string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(username); err != nil {
			return copiedMsg{username: username, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{username: username}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
