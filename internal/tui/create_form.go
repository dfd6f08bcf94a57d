package tui

import (
	"strings"

	"github.com/MKhiriev/harbor-admin/internal/validators"
	"github.com/MKhiriev/harbor-admin/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	createFieldUsername = iota
	createFieldPassphrase
	createFieldConfirmation
)

// createFormModel is the create-account modal.
type createFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCreateFormModel() createFormModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.Width = 32
	username.Focus()

	passphrase := textinput.New()
	passphrase.Placeholder = "pass phrase"
	passphrase.Width = 32
	passphrase.EchoMode = textinput.EchoPassword
	passphrase.EchoCharacter = '*'

	confirmation := textinput.New()
	confirmation.Placeholder = "pass phrase again"
	confirmation.Width = 32
	confirmation.EchoMode = textinput.EchoPassword
	confirmation.EchoCharacter = '*'

	return createFormModel{inputs: []textinput.Model{username, passphrase, confirmation}}
}

func (m createFormModel) form() models.AccountForm {
	return models.AccountForm{
		Username:               m.inputs[createFieldUsername].Value(),
		Passphrase:             m.inputs[createFieldPassphrase].Value(),
		PassphraseConfirmation: m.inputs[createFieldConfirmation].Value(),
	}
}

func (m createFormModel) lastFocused() bool {
	return m.focus == len(m.inputs)-1
}

func (m createFormModel) focusNext() createFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m createFormModel) focusPrev() createFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m createFormModel) update(msg tea.Msg) (createFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m createFormModel) View() string {
	form := m.form()

	var b strings.Builder
	b.WriteString(fieldLine("Username", m.inputs[createFieldUsername].View()))
	b.WriteString("\n")

	hint := validators.UsernameHint
	if form.Username != "" && !validators.IsPlainUsername(form.Username) {
		hint = warningStyle.Render(hint)
	} else {
		hint = helpStyle.Render(hint)
	}
	b.WriteString(strings.Repeat(" ", 23))
	b.WriteString(hint)
	b.WriteString("\n\n")

	b.WriteString(fieldLine("Pass phrase", m.inputs[createFieldPassphrase].View()))
	b.WriteString("\n")
	b.WriteString(fieldLine("Confirm pass phrase", m.inputs[createFieldConfirmation].View()))
	b.WriteString("\n")

	if form.PassphrasesMismatch() {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Pass phrases don't match"))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nCreating account...\n")
	}

	return renderPage("Create user account", strings.TrimRight(b.String(), "\n"),
		"enter: next / create account │ tab: next field │ esc: cancel")
}
