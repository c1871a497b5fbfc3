package tui

type confirmModel struct {
	id    int64
	title string
}

func (m confirmModel) View() string {
	content := "Delete \"" + fitText(m.title, 40) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
