package tui

type errorOverlayModel struct {
	message string
	hotKeys string
}

func (m errorOverlayModel) View() string {
	hotKeys := m.hotKeys
	if hotKeys == "" {
		hotKeys = "esc закрыть"
	}
	content := errorStyle.Render("Ошибка") + "\n\n" + m.message + "\n\n" + hotKeys
	return overlayBoxStyle.Render(content)
}
