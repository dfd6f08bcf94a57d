package tui

import "github.com/MKhiriev/harbor-admin/models"

type noticeOverlayModel struct {
	notice models.Notice
}

func (m noticeOverlayModel) View() string {
	heading := errorStyle.Render("Error")
	if m.notice.Level == models.NoticeSuccess {
		heading = successStyle.Render("Done")
	}
	content := heading + "\n\n" + m.notice.Text + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
