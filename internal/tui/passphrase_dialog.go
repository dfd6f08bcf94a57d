package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/harbor-admin/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passphraseDialogModel asks for a new pass phrase and its confirmation.
type passphraseDialogModel struct {
	username string
	inputs   []textinput.Model
	focus    int
}

func newPassphraseDialogModel(username string) passphraseDialogModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		in := textinput.New()
		in.Width = 32
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Focus()

	return passphraseDialogModel{username: username, inputs: inputs}
}

func (m passphraseDialogModel) change() models.PassphraseChange {
	return models.PassphraseChange{
		Username:     m.username,
		Passphrase:   m.inputs[0].Value(),
		Confirmation: m.inputs[1].Value(),
	}
}

func (m passphraseDialogModel) lastFocused() bool {
	return m.focus == len(m.inputs)-1
}

func (m passphraseDialogModel) focusNext() passphraseDialogModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m passphraseDialogModel) update(msg tea.Msg) (passphraseDialogModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m passphraseDialogModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Please enter a new pass phrase for %s\n", m.username))
	b.WriteString("[ " + m.inputs[0].View() + " ]\n\n")
	b.WriteString(fmt.Sprintf("Please confirm %s's new pass phrase\n", m.username))
	b.WriteString("[ " + m.inputs[1].View() + " ]\n\n")
	b.WriteString(helpStyle.Render("enter: next / ok    esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
