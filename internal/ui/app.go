package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/five82/pigcat/internal/ai"
	"github.com/five82/pigcat/internal/logging"
	"github.com/five82/pigcat/internal/logtail"
	"github.com/five82/pigcat/internal/site"
	"github.com/five82/pigcat/internal/slideshow"
	"github.com/five82/pigcat/internal/state"
	"github.com/five82/pigcat/internal/task"
	"github.com/five82/pigcat/internal/visits"
)

// View represents the current page.
type View int

const (
	ViewHome View = iota
	ViewArchive
	ViewAbout
	ViewDream
	ViewAdmin
)

func (v View) String() string {
	switch v {
	case ViewArchive:
		return "Archive"
	case ViewAbout:
		return "About"
	case ViewDream:
		return "Dream"
	case ViewAdmin:
		return "Dashboard"
	default:
		return "Home"
	}
}

// focusTarget names the form currently receiving keystrokes.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusMessage
	focusDream
	focusAuthor
	focusField
	focusImage
	focusBanner
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Gateway   *ai.Gateway
	Gate      *state.AdminGate
	Visits    visits.Count
	Slideshow *slideshow.Ticker
	LogPath   string
	ThemeName string
	Logger    zerolog.Logger
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	store   *state.Store
	gateway *ai.Gateway
	gate    *state.AdminGate
	visits  visits.Count
	ticker  *slideshow.Ticker
	logPath string
	log     zerolog.Logger
	now     func() time.Time
	keys    keyMap

	// UI state
	themeName   string
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	modal       Modal
	focus       focusTarget

	// Home
	slide       int
	marquee     int
	messageForm form

	// Archive
	archiveSel int
	archiveVP  viewport.Model
	renderer   *glamour.TermRenderer
	rendererW  int

	// Dream analyzer
	dreamForm form
	dreamTask *task.Task[string]

	// Dashboard
	adminTab    adminTab
	adminSel    int
	fieldForm   form
	authorForm  form
	imageForm   form
	bannerForm  form
	composeTask *task.Task[site.DiaryEntry]
	logEntries  []logtail.Entry
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	gw := opts.Gateway
	if gw == nil {
		gw = ai.NewGateway(nil, nil, 0, opts.Logger)
	}
	gate := opts.Gate
	if gate == nil {
		gate = state.NewAdminGate("")
	}
	themeName := CanonicalTheme(opts.ThemeName)

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		gateway:     gw,
		gate:        gate,
		visits:      opts.Visits,
		ticker:      opts.Slideshow,
		logPath:     opts.LogPath,
		log:         logging.Component(opts.Logger, "ui"),
		now:         now,
		keys:        DefaultKeyMap(),
		themeName:   themeName,
		currentView: ViewHome,
		messageForm: newForm([]string{"이름 (생략 시 익명)"}, "메시지를 입력하세요...", 40),
		dreamForm:   newForm(nil, "예: 바닷가를 걷는데 하늘에서 픽셀 조각들이 눈처럼 내렸어요...", 60),
		fieldForm:   newForm([]string{"value"}, "", 60),
		authorForm:  newForm([]string{"제목", "이미지 URL (선택사항)"}, "내용", 60),
		imageForm:   newForm([]string{"https://..."}, "", 60),
		bannerForm:  newForm([]string{"Banner Image URL", "Target Site URL", "Banner Title"}, "", 60),
		dreamTask:   &task.Task[string]{},
		composeTask: &task.Task[site.DiaryEntry]{},
		archiveVP:   viewport.New(0, 0),
	}
	if m.ticker != nil {
		m.slide = m.ticker.Index()
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{marqueeCmd()}
	if m.ticker != nil {
		cmds = append(cmds, waitSlideCmd(m.ctx, m.ticker.Updates()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case marqueeMsg:
		m.marquee++
		return m, marqueeCmd()

	case slideMsg:
		m.slide = int(msg)
		return m, waitSlideCmd(m.ctx, m.ticker.Updates())

	case loginMsg:
		return m.handleLogin(msg)

	case composedMsg:
		return m.handleComposed(msg)

	case dreamMsg:
		if m.dreamTask.Complete(msg.run, msg.text) {
			m.log.Debug().Int("chars", len(msg.text)).Msg("dream analysis finished")
		}
		return m, nil

	case logsMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		return m, nil

	case deleteEntryMsg:
		return m.deleteEntry(msg.id)

	case resetSettingsMsg:
		return m.resetSettings()
	}

	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}
	if m.focus != focusNone {
		cmd := m.activeForm().Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey routes keyboard input: modal first, then the focused form, then
// global and page bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.focus != focusNone {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.themeName = NextTheme(m.themeName)
		m.applyTheme()
		m.renderer = nil
		return m, nil
	case key.Matches(msg, m.keys.Login):
		return m.toggleLogin()
	case key.Matches(msg, m.keys.ViewHome):
		m.currentView = ViewHome
		return m, nil
	case key.Matches(msg, m.keys.ViewArchive):
		m.currentView = ViewArchive
		m.refreshArchive()
		return m, nil
	case key.Matches(msg, m.keys.ViewAbout):
		m.currentView = ViewAbout
		return m, nil
	case key.Matches(msg, m.keys.ViewDream):
		m.currentView = ViewDream
		return m, nil
	case key.Matches(msg, m.keys.ViewAdmin):
		if !m.gate.IsAdmin() {
			return m.openLogin()
		}
		m.currentView = ViewAdmin
		return m, m.refreshLogs()
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewHome
		return m, nil
	}

	switch m.currentView {
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewArchive:
		return m.handleArchiveKey(msg)
	case ViewDream:
		return m.handleDreamKey(msg)
	case ViewAdmin:
		return m.handleAdminKey(msg)
	}
	return m, nil
}

// handleFormKey drives whichever form has focus. Enter on a single-line field
// advances, or submits from the last field; ctrl+s submits from anywhere.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.activeForm()
	switch {
	case key.Matches(msg, m.keys.Escape):
		f.Blur()
		m.focus = focusNone
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.NextField):
		cmd := f.Next()
		return m, cmd
	case msg.Type == tea.KeyEnter && !f.onArea():
		if f.onLast() {
			return m.submitForm()
		}
		cmd := f.Next()
		return m, cmd
	}
	cmd := f.Update(msg)
	return m, cmd
}

// activeForm returns the form bound to the current focus target.
func (m *Model) activeForm() *form {
	switch m.focus {
	case focusMessage:
		return &m.messageForm
	case focusDream:
		return &m.dreamForm
	case focusAuthor:
		return &m.authorForm
	case focusField:
		return &m.fieldForm
	case focusImage:
		return &m.imageForm
	case focusBanner:
		return &m.bannerForm
	}
	// Callers only reach here with focusNone; hand back an inert form.
	return &form{}
}

// focusForm gives keyboard focus to target.
func (m *Model) focusForm(target focusTarget) tea.Cmd {
	m.focus = target
	f := m.activeForm()
	f.focus = 0
	return f.Focus()
}

func (m *Model) blurForm() {
	m.activeForm().Blur()
	m.focus = focusNone
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusMessage:
		return m.sendMessage()
	case focusDream:
		return m.analyzeDream()
	case focusAuthor:
		return m.composeEntry()
	case focusField:
		return m.saveField()
	case focusImage:
		return m.addImage()
	case focusBanner:
		return m.addBanner()
	}
	return m, nil
}

// notify opens a notice modal.
func (m *Model) notify(text string) {
	m.modal = newNotice(text)
}

// fail opens an error notice for err.
func (m *Model) fail(err error) {
	m.modal = newErrorNotice(err.Error())
}

// applyTheme rebuilds the theme, picking up settings colors for the Site palette.
func (m *Model) applyTheme() {
	var s site.Settings
	if m.store != nil {
		s = m.store.Settings()
	} else {
		s = site.DefaultSettings()
	}
	m.theme = GetTheme(m.themeName, s)
}

// syncSlides tells the ticker how many images exist and reads back the
// clamped index.
func (m *Model) syncSlides() {
	n := len(m.settings().MainImages)
	if m.ticker != nil {
		m.ticker.SetImages(n)
		m.slide = m.ticker.Index()
		return
	}
	m.slide = slideshow.Clamp(m.slide, n)
}

func (m *Model) settings() site.Settings {
	if m.store == nil {
		return site.DefaultSettings()
	}
	return m.store.Settings()
}

func (m *Model) resize() {
	w := maxInt(m.width-4, LayoutMinWidth)
	m.messageForm.SetWidth(minInt(w, 50))
	m.dreamForm.SetWidth(w)
	m.fieldForm.SetWidth(w)
	m.authorForm.SetWidth(w)
	m.imageForm.SetWidth(w)
	m.bannerForm.SetWidth(w)
	m.archiveVP.Width = w
	m.archiveVP.Height = maxInt(m.height-chromeRows-archiveListRows-4, 3)
	m.refreshArchive()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Messages

type marqueeMsg time.Time

type slideMsg int

type composedMsg struct {
	run   uint64
	entry site.DiaryEntry
	err   error
}

type dreamMsg struct {
	run  uint64
	text string
}

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

type deleteEntryMsg struct{ id string }

type resetSettingsMsg struct{}

// Commands

func marqueeCmd() tea.Cmd {
	return tea.Tick(MarqueeInterval, func(t time.Time) tea.Msg {
		return marqueeMsg(t)
	})
}

// waitSlideCmd blocks until the ticker publishes the next index.
func waitSlideCmd(ctx context.Context, updates <-chan int) tea.Cmd {
	return func() tea.Msg {
		select {
		case idx := <-updates:
			return slideMsg(idx)
		case <-ctx.Done():
			return nil
		}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
