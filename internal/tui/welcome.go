package tui

type menuModel struct {
	title string
	items []string
	idx   int
}

func newWelcomeModel() menuModel {
	return menuModel{title: "StudyMate", items: []string{"Log in", "Sign up"}}
}

const (
	homeGeneratePlan = iota
	homeLatestPlan
	homeChat
	homeLogout
)

func newHomeModel() menuModel {
	return menuModel{items: []string{"Generate a new plan", "View my latest plan", "Chat with the mentor", "Log out"}}
}

func (m *menuModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *menuModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m menuModel) View(hotKeys string) string {
	return renderPage(m.title, renderMenu(m.items, m.idx), hotKeys)
}
