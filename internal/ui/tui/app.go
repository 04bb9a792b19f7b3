package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"

	"github.com/fitodo/fitodo/internal/catalog"
	"github.com/fitodo/fitodo/internal/host"
	"github.com/fitodo/fitodo/internal/onboarding"
)

// noticeTTL is how long a notice stays on screen.
const noticeTTL = 3 * time.Second

// AppOptions configures the host app.
type AppOptions struct {
	// Profile skips the sign-up form when it carries a name.
	Profile  onboarding.Profile
	Capture  CaptureOptions
	Logger   logr.Logger
	Recorder Recorder
}

// AppModel is the Bubble Tea model of the host app: sign-up gate, tabs,
// overlays and the mounted capture wizard.
type AppModel struct {
	router  *host.Router
	profile *onboarding.Profile
	signup  *huh.Form
	wizard  *CaptureModel
	opts    AppOptions

	keys AppKeyMap
	help help.Model

	cursor    int
	notice    *host.Notice
	noticeSeq int

	// Sessions holds every capture session that exited during this run.
	Sessions []CaptureExitedMsg

	Width    int
	Height   int
	Quitting bool
}

// NewAppModel creates the host app model.
func NewAppModel(opts AppOptions) AppModel {
	m := AppModel{
		opts: opts,
		keys: DefaultAppKeyMap(),
		help: help.New(),
	}

	ropts := []host.Option{host.WithLogger(opts.Logger)}
	if strings.TrimSpace(opts.Profile.Name) != "" {
		ropts = append(ropts, host.WithProfile(opts.Profile.Name, opts.Profile.Role))
	} else {
		p := opts.Profile
		m.profile = &p
		m.signup = onboarding.NewForm(m.profile)
	}
	m.router = host.NewRouter(ropts...)
	return m
}

// Router returns the navigation state.
func (m AppModel) Router() *host.Router { return m.router }

// Notice returns the notice on screen, if any.
func (m AppModel) Notice() (host.Notice, bool) {
	if m.notice == nil {
		return host.Notice{}, false
	}
	return *m.notice, true
}

// Wizard returns the mounted capture wizard, if any.
func (m AppModel) Wizard() (CaptureModel, bool) {
	if m.wizard == nil {
		return CaptureModel{}, false
	}
	return *m.wizard, true
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	if m.signup != nil {
		return m.signup.Init()
	}
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width

	case CaptureExitedMsg:
		m.Sessions = append(m.Sessions, msg)
		m.wizard = nil
		m.cursor = 0
		return m, nil

	case NoticeMsg:
		return m.showNotice(msg.Notice)

	case noticeExpiredMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil
	}

	if m.signup != nil {
		return m.updateSignUp(msg)
	}

	if m.wizard != nil {
		updated, cmd := m.wizard.Update(msg)
		w := updated.(CaptureModel)
		m.wizard = &w
		if w.Quitting {
			m.Quitting = true
		}
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(k)
	}
	return m, nil
}

func (m AppModel) updateSignUp(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.signup.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.signup = f
	}

	switch m.signup.State {
	case huh.StateCompleted:
		m.signup = nil
		n := m.router.CompleteSignUp(strings.TrimSpace(m.profile.Name), m.profile.Role)
		next, noticeCmd := m.showNotice(n)
		return next, tea.Batch(cmd, noticeCmd)
	case huh.StateAborted:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m AppModel) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.router.Screen()

	switch {
	case key.Matches(k, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case screen.Overlay != host.OverlayNone:
		if key.Matches(k, m.keys.Back) {
			m.router.Back()
			m.cursor = 0
		}

	case key.Matches(k, m.keys.NextTab):
		m.switchTab(1)

	case key.Matches(k, m.keys.PrevTab):
		m.switchTab(-1)

	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(k, m.keys.Down):
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}

	case key.Matches(k, m.keys.Select):
		return m.selectItem()
	}

	return m, nil
}

func (m *AppModel) switchTab(delta int) {
	current := 0
	for i, t := range host.Tabs {
		if t == m.router.Screen().Tab {
			current = i
			break
		}
	}
	next := (current + delta + len(host.Tabs)) % len(host.Tabs)
	m.router.SetTab(host.Tabs[next])
	m.cursor = 0
}

// items returns the selectable entries of the current tab.
func (m AppModel) items() []host.Item {
	switch m.router.Screen().Tab {
	case host.TabHome:
		return host.HomeActions(m.router.Role())
	case host.TabTests:
		return testItems()
	case host.TabCommunity:
		return host.CommunityFeatures
	case host.TabProfile:
		return host.Settings
	case host.TabHelp:
		return host.HelpSections
	}
	return nil
}

func testItems() []host.Item {
	items := make([]host.Item, 0, len(catalog.Tests))
	for _, t := range catalog.Tests {
		desc := t.Duration + " • " + string(t.Difficulty)
		if t.Completed {
			desc += " • last " + t.LastScore
		}
		items = append(items, host.Item{ID: t.ID, Title: t.Title, Description: desc})
	}
	return items
}

func (m AppModel) selectItem() (tea.Model, tea.Cmd) {
	items := m.items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return m, nil
	}
	item := items[m.cursor]
	before := m.router.Screen()

	var n host.Notice
	switch before.Tab {
	case host.TabHome:
		n = m.router.Dispatch(item.ID)
	case host.TabTests:
		n = m.router.SelectTest(item.ID)
	case host.TabCommunity:
		n = m.router.Feature(item.ID)
	case host.TabProfile:
		n = m.router.Setting(item.ID)
	case host.TabHelp:
		n = m.router.Help(item.ID)
	}

	after := m.router.Screen()
	if after.Tab != before.Tab {
		m.cursor = 0
	}

	var cmds []tea.Cmd
	if after.Overlay == host.OverlayShuttleRun && m.wizard == nil {
		cmds = append(cmds, m.mountWizard())
	}
	next, noticeCmd := m.showNotice(n)
	cmds = append(cmds, noticeCmd)
	return next, tea.Batch(cmds...)
}

func (m *AppModel) mountWizard() tea.Cmd {
	opts := m.opts.Capture
	opts.OnExit = m.router.Back
	if opts.Recorder == nil {
		opts.Recorder = m.opts.Recorder
	}
	w := NewCaptureModel(opts)
	w.Width, w.Height = m.Width, m.Height
	w.help.Width = m.Width
	m.wizard = &w
	return w.Init()
}

func (m AppModel) showNotice(n host.Notice) (AppModel, tea.Cmd) {
	m.noticeSeq++
	m.notice = &n
	if m.opts.Recorder != nil {
		m.opts.Recorder.Notice(n.Kind.String())
	}
	seq := m.noticeSeq
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{Seq: seq}
	})
}

// Shutdown stops a mounted wizard's stopwatch.
func (m AppModel) Shutdown() {
	if m.wizard != nil {
		m.wizard.Shutdown()
	}
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.Quitting {
		return ""
	}
	return renderApp(m)
}
