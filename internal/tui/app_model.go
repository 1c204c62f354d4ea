package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-mate/internal/service"
	"github.com/MKhiriev/go-study-mate/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenHome
	screenPlanForm
	screenPlanView
	screenChat
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	currentScreen screen

	welcome  menuModel
	home     menuModel
	login    formModel
	signup   formModel
	planForm formModel
	planView planViewModel
	chat     chatModel

	spinner spinner.Model
	loading bool

	username      string
	serverVersion string
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		home:          newHomeModel(),
		login:         newLoginForm(),
		signup:        newSignupForm(),
		planForm:      newPlanForm(),
		chat:          newChatModel(),
		spinner:       sp,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdServerVersion())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.username = msg.session.Username
		m.home = newHomeModel()
		m.home.title = "Welcome, " + m.username
		m.currentScreen = screenHome
		return m, nil
	case planGeneratedMsg:
		m.loading = false
		m.setSubmitting(false)
		if msg.err != nil {
			return m.handleRequestError(msg.err)
		}
		m.planView = newPlanViewModel(msg.req.CareerGoal, msg.req.YearlyGoal, msg.plan)
		m.planForm = newPlanForm()
		m.currentScreen = screenPlanView
		return m, nil
	case planLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleRequestError(msg.err)
		}
		m.planView = newPlanViewModel(msg.plan.CareerGoal, msg.plan.YearlyGoal, msg.plan.Plan)
		m.currentScreen = screenPlanView
		return m, nil
	case chatReplyMsg:
		if msg.err != nil {
			m.chat.receive(humanizeError(msg.err))
			return m, nil
		}
		m.chat.receive(msg.reply)
		return m, nil
	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.planView.status = "Copy failed: " + msg.err.Error()
		} else {
			m.planView.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.planView.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin, screenSignup:
		return m.updateAuthForm(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenPlanForm:
		return m.updatePlanForm(msg)
	case screenPlanView:
		return m.updatePlanView(msg)
	case screenChat:
		return m.updateChat(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View("↑/↓: select │ enter: open │ v: about │ q: quit")
	case screenLogin:
		body = m.login.View()
	case screenSignup:
		body = m.signup.View()
	case screenHome:
		body = m.home.View("↑/↓: select │ enter: open │ o: log out │ v: about │ q: quit")
	case screenPlanForm:
		body = m.planForm.View()
	case screenPlanView:
		body = m.planView.View()
	case screenChat:
		body = m.chat.View()
	}

	if m.loading {
		body += "\n\n" + m.spinner.View() + " Talking to the mentor, this can take a while..."
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.signup.submitting = v
	m.planForm.submitting = v
}

// handleRequestError shows err and drops the session when the server no
// longer accepts the token.
func (m appModel) handleRequestError(err error) (tea.Model, tea.Cmd) {
	m.showErrorf(humanizeError(err))
	if sessionExpired(err) {
		m.resetSession()
	}
	return m, nil
}

func (m *appModel) resetSession() {
	m.services.AuthService.Logout()
	m.username = ""
	m.login = newLoginForm()
	m.signup = newSignupForm()
	m.planForm = newPlanForm()
	m.chat = newChatModel()
	m.welcome = newWelcomeModel()
	m.currentScreen = screenWelcome
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.welcome.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.welcome.moveDown()
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenSignup
		}
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, m.cmdServerVersion()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := &m.login
	if m.currentScreen == screenSignup {
		form = &m.signup
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if form.submitting {
				return m, nil
			}
			creds := models.Credentials{
				Username: strings.TrimSpace(form.value(0)),
				Password: form.value(1),
			}
			if creds.Username == "" || creds.Password == "" {
				m.showErrorf("Username and password are required")
				return m, nil
			}
			form.submitting = true
			if m.currentScreen == screenSignup {
				return m, m.cmdSignup(creds)
			}
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	*form, cmd = form.update(msg)
	return m, cmd
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.home.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.home.moveDown()
	case key.Matches(keyMsg, keys.enter):
		switch m.home.idx {
		case homeGeneratePlan:
			m.currentScreen = screenPlanForm
			return m, textinput.Blink
		case homeLatestPlan:
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLatestPlan())
		case homeChat:
			m.currentScreen = screenChat
			return m, textinput.Blink
		case homeLogout:
			m.resetSession()
		}
	case key.Matches(keyMsg, keys.logout):
		m.resetSession()
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, m.cmdServerVersion()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updatePlanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if !m.planForm.submitting {
				m.currentScreen = screenHome
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.planForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.planForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.planForm.submitting {
				return m, nil
			}
			req := models.PlanRequest{
				CareerGoal: strings.TrimSpace(m.planForm.value(0)),
				YearlyGoal: strings.TrimSpace(m.planForm.value(1)),
			}
			if req.CareerGoal == "" || req.YearlyGoal == "" {
				m.showErrorf("Both goals are required")
				return m, nil
			}
			m.planForm.submitting = true
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdGeneratePlan(req))
		}
	}

	var cmd tea.Cmd
	m.planForm, cmd = m.planForm.update(msg)
	return m, cmd
}

func (m appModel) updatePlanView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.up):
		m.planView.prev()
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.down):
		m.planView.next()
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.planView.planText())
	}
	return m, nil
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			text := strings.TrimSpace(m.chat.input.Value())
			if text == "" || m.chat.waiting {
				return m, nil
			}
			m.chat.send(text)
			return m, m.cmdChat(text)
		}
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, creds)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdSignup(creds models.Credentials) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Signup(ctx, creds)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdGeneratePlan(req models.PlanRequest) tea.Cmd {
	ctx, plans := m.ctx, m.services.StudyPlanService
	return func() tea.Msg {
		plan, err := plans.GeneratePlan(ctx, req)
		return planGeneratedMsg{req: req, plan: plan, err: err}
	}
}

func (m appModel) cmdLatestPlan() tea.Cmd {
	ctx, plans := m.ctx, m.services.StudyPlanService
	return func() tea.Msg {
		plan, err := plans.LatestPlan(ctx)
		return planLoadedMsg{plan: plan, err: err}
	}
}

func (m appModel) cmdChat(text string) tea.Cmd {
	ctx, plans := m.ctx, m.services.StudyPlanService
	return func() tea.Msg {
		reply, err := plans.Chat(ctx, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx, info := m.ctx, m.services.AppInfoService
	return func() tea.Msg {
		version, err := info.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
