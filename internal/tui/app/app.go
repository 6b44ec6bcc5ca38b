// Package app provides the main TUI application that wires all views together.
package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/flow"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
	"github.com/krish230803/Ai-Interview-System/internal/tui/commands"
	"github.com/krish230803/Ai-Interview-System/internal/tui/views"
)

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	speechEvents *commands.SpeechEvents

	// View models
	loginView     views.LoginModel
	registerView  views.RegisterModel
	forgotView    views.ForgotModel
	resetView     views.ResetModel
	homeView      views.HomeModel
	interviewView views.InterviewModel
	dashboardView views.DashboardModel
}

// New creates the App from wired dependencies.
func New(deps tui.Deps) *App {
	model := tui.NewModel(deps)

	a := &App{
		model:     model,
		loginView: views.NewLoginModel(model.Width, model.Height),
	}
	if deps.Capture != nil {
		a.speechEvents = commands.NewSpeechEvents(deps.Capture)
	}
	return a
}

// Init checks for an existing session before showing anything.
func (a *App) Init() tea.Cmd {
	return commands.CheckAuthCmd(a.model.Auth)
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a.forwardToActive(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyCtrlC:
			if a.model.CtrlCPending {
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil
	}

	if cmd, handled := a.handleGlobal(msg); handled {
		return a, cmd
	}
	return a.forwardToActive(msg)
}

// handleGlobal processes messages that are independent of the active
// view: auth results, navigation, interview flow, speech, dashboard.
func (a *App) handleGlobal(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {

	// --- Auth ---

	case tui.AuthCheckedMsg:
		if msg.User != nil {
			a.model.User = msg.User
			a.gotoHome()
		} else {
			a.gotoLogin("")
		}
		return nil, true

	case views.SubmitLoginMsg:
		a.loginView.SetBusy(true)
		return commands.LoginCmd(a.model.Auth, msg.Email, msg.Password), true

	case tui.LoginResultMsg:
		if msg.Err != nil {
			a.loginView.SetError(errorText(msg.Err))
			return nil, true
		}
		a.model.User = msg.User
		if tui.StateForViewName(msg.Target) == tui.StateInterview {
			return a.enterInterview(), true
		}
		a.gotoHome()
		return nil, true

	case views.SubmitRegisterMsg:
		a.registerView.SetBusy(true)
		return commands.RegisterCmd(a.model.Auth, msg.Name, msg.Email, msg.Password, msg.Confirm), true

	case tui.RegisterResultMsg:
		if msg.Err != nil {
			a.registerView.SetError(errorText(msg.Err))
			return nil, true
		}
		a.gotoLogin("Account created. Please sign in.")
		return nil, true

	case views.SubmitForgotMsg:
		a.forgotView.SetBusy(true)
		return commands.ForgotPasswordCmd(a.model.Auth, msg.Email), true

	case tui.ForgotResultMsg:
		if msg.Err != nil {
			a.forgotView.SetError(errorText(msg.Err))
			return nil, true
		}
		a.forgotView.SetSent(msg.ResetURL)
		return nil, true

	case views.SubmitResetMsg:
		a.resetView.SetBusy(true)
		return commands.ResetPasswordCmd(a.model.Auth, msg.TokenOrURL, msg.Password, msg.Confirm), true

	case tui.ResetResultMsg:
		if msg.Err != nil {
			a.resetView.SetError(errorText(msg.Err))
			return nil, true
		}
		a.gotoLogin("Password reset. Please sign in.")
		return nil, true

	case views.RequestLogoutMsg:
		return commands.LogoutCmd(a.model.Auth), true

	case tui.LogoutResultMsg:
		if msg.Err != nil {
			// The server session may still be live; keep the user
			// signed in locally and surface the failure.
			a.homeView.SetError(errorText(msg.Err))
			return nil, true
		}
		a.model.User = nil
		a.gotoLogin("Signed out.")
		return nil, true

	case tui.RedirectLoginMsg:
		a.model.User = nil
		a.gotoLogin("Your session has expired. Please sign in.")
		return nil, true

	// --- Interview ---

	case views.StartInterviewMsg:
		return commands.GateCmd(a.model.Auth, "interview"), true

	case tui.GateAllowedMsg:
		if msg.View == "interview" {
			return a.enterInterview(), true
		}
		return nil, true

	case tui.InterviewStartedMsg:
		if msg.Err != nil {
			a.homeView.SetError(errorText(msg.Err))
			a.model.State = tui.StateHome
			return nil, true
		}
		if msg.RedirectLogin {
			a.model.User = nil
			a.gotoLogin("Your session has expired. Please sign in.")
			return nil, true
		}
		a.interviewView = views.NewInterviewModel(
			msg.Question, msg.QuestionNumber, a.model.Session.TotalQuestions(),
			a.model.Width, a.model.Height,
		)
		a.model.State = tui.StateInterview
		return a.interviewView.Init(), true

	case views.SubmitAnswerMsg:
		if a.model.Capture != nil && a.model.Capture.Active() {
			a.model.Capture.Stop()
			a.interviewView.SetRecording(false)
		}
		a.interviewView.SetSubmitting(true)
		inputType := api.InputText
		if msg.Voice {
			inputType = api.InputVoice
		}
		return tea.Batch(
			commands.SubmitAnswerCmd(a.model.Flow, msg.Answer, inputType),
			a.interviewView.SpinnerTick(),
		), true

	case tui.AnswerResultMsg:
		return a.handleAnswerResult(msg), true

	// --- Speech ---

	case views.ToggleRecordingMsg:
		return a.toggleRecording(), true

	case tui.SpeechStartedMsg:
		a.interviewView.SetRecording(true)
		return commands.WaitSpeechCmd(a.speechEvents), true

	case tui.SpeechTextMsg:
		a.interviewView.SetTranscript(msg.Text)
		return commands.WaitSpeechCmd(a.speechEvents), true

	case tui.SpeechErrorMsg:
		a.interviewView.SetRecording(false)
		a.interviewView.SetError("Voice input failed: " + errorText(msg.Err))
		return commands.WaitSpeechCmd(a.speechEvents), true

	case tui.SpeechClosedMsg:
		return nil, true

	// --- Dashboard ---

	case tui.DashboardReadyMsg:
		if msg.Err != nil {
			a.interviewView.SetError(errorText(msg.Err))
			return nil, true
		}
		a.dashboardView = views.NewDashboardModel(msg.Content, a.model.Width, a.model.Height)
		a.model.State = tui.StateDashboard
		return nil, true

	case tui.ResultSavedMsg:
		if msg.Err != nil {
			a.dashboardView.SetSaveNote("Could not save to local history: " + errorText(msg.Err))
		} else if a.model.History != nil {
			a.dashboardView.SetSaveNote("Saved to local history.")
		}
		return nil, true

	case views.NewInterviewRequestMsg:
		a.model.Flow.Reset()
		a.model.Stats = nil
		if a.model.Capture != nil {
			a.model.Capture.Clear()
		}
		a.gotoHome()
		return nil, true

	case tui.ErrorMsg:
		a.model.Err = msg.Err
		return nil, true
	}

	return nil, false
}

// handleAnswerResult processes the outcome of a submission.
func (a *App) handleAnswerResult(msg tui.AnswerResultMsg) tea.Cmd {
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, flow.ErrSubmissionInFlight):
			// Dropped duplicate; the in-flight submission will report.
			return nil
		case errors.Is(msg.Err, flow.ErrEmptyAnswer):
			a.interviewView.SetError("Please provide an answer before submitting.")
		default:
			a.interviewView.SetError(errorText(msg.Err))
		}
		return nil
	}

	res := msg.Result
	if res.RedirectLogin {
		a.model.User = nil
		a.gotoLogin("Your session has expired. Please sign in.")
		return nil
	}

	if res.Completed {
		a.model.Stats = res.Stats
		return tea.Batch(
			commands.RenderDashboardCmd(a.model.Renderer, res.Stats, a.model.Session.Elapsed()),
			commands.SaveResultCmd(a.model.History, a.model.Session.StartTime(), res.Stats),
		)
	}

	if a.model.Capture != nil {
		a.model.Capture.Clear()
	}
	a.interviewView.SetQuestion(res.NextQuestion, res.QuestionNumber, res.Sentiment)
	return nil
}

// toggleRecording starts or stops dictation.
func (a *App) toggleRecording() tea.Cmd {
	if a.model.Capture == nil || a.speechEvents == nil {
		a.interviewView.SetError("Voice input is not available.")
		return nil
	}
	if a.model.Capture.Active() {
		a.model.Capture.Stop()
		a.interviewView.SetRecording(false)
		a.interviewView.SetTranscript(a.model.Capture.Text())
		return nil
	}
	// Seed the capture buffer with whatever is already typed so
	// dictation appends instead of overwriting.
	a.model.Capture.SetText(a.interviewView.Answer())
	return commands.StartSpeechCmd(a.model.Capture, a.speechEvents)
}

// enterInterview kicks off the interview flow.
func (a *App) enterInterview() tea.Cmd {
	return commands.StartInterviewCmd(a.model.Flow)
}

func (a *App) gotoHome() {
	a.homeView = views.NewHomeModel(a.model.User, a.model.Width, a.model.Height)
	a.model.State = tui.StateHome
}

func (a *App) gotoLogin(notice string) {
	a.loginView = views.NewLoginModel(a.model.Width, a.model.Height)
	if notice != "" {
		a.loginView.SetNotice(notice)
	}
	a.model.State = tui.StateLogin
}

// forwardToActive routes remaining messages to the active view and
// handles per-view navigation keys.
func (a *App) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.model.State {
	case tui.StateLogin:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "ctrl+n":
				a.registerView = views.NewRegisterModel(a.model.Width, a.model.Height)
				a.model.State = tui.StateRegister
				return a, a.registerView.Init()
			case "ctrl+f":
				a.forgotView = views.NewForgotModel(a.model.Width, a.model.Height)
				a.model.State = tui.StateForgotPassword
				return a, a.forgotView.Init()
			}
		}
		a.loginView, cmd = a.loginView.Update(msg)

	case tui.StateRegister:
		if isEsc(msg) {
			a.gotoLogin("")
			return a, nil
		}
		a.registerView, cmd = a.registerView.Update(msg)

	case tui.StateForgotPassword:
		if isEsc(msg) {
			a.gotoLogin("")
			return a, nil
		}
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+t" && a.forgotView.ResetURL() != "" {
			a.resetView = views.NewResetModel(a.forgotView.ResetURL(), a.model.Width, a.model.Height)
			a.model.State = tui.StateResetPassword
			return a, a.resetView.Init()
		}
		a.forgotView, cmd = a.forgotView.Update(msg)

	case tui.StateResetPassword:
		if isEsc(msg) {
			a.gotoLogin("")
			return a, nil
		}
		a.resetView, cmd = a.resetView.Update(msg)

	case tui.StateHome:
		a.homeView, cmd = a.homeView.Update(msg)

	case tui.StateInterview:
		a.interviewView, cmd = a.interviewView.Update(msg)

	case tui.StateDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	}

	return a, cmd
}

// View renders the current application state.
func (a *App) View() string {
	var content string

	switch a.model.State {
	case tui.StateLogin:
		content = a.loginView.View()
	case tui.StateRegister:
		content = a.registerView.View()
	case tui.StateForgotPassword:
		content = a.forgotView.View()
	case tui.StateResetPassword:
		content = a.resetView.View()
	case tui.StateHome:
		content = a.homeView.View()
	case tui.StateInterview:
		content = a.interviewView.View()
	case tui.StateDashboard:
		content = a.dashboardView.View()
	default:
		content = tui.DimStyle.Render("Loading...")
	}

	if a.model.CtrlCPending {
		content += "\n" + tui.WarningStyle.Render("Press Ctrl+C again to quit")
	}
	return content
}

func isEsc(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	return ok && key.String() == tui.KeyEsc
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return fmt.Sprintf("%v", err)
}
