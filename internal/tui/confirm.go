package tui

import "fmt"

type confirmModel struct {
	username string
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Really remove %s's account? All related data will be removed too.\n\n", m.username)
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
