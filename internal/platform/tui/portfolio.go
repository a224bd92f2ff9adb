package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/content"
	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/easteregg"
	"github.com/vovakirdan/termfolio/internal/games/dodge"
	"github.com/vovakirdan/termfolio/internal/storage"
)

// Terminals report key presses but never releases. An arrow counts as held
// until no press or repeat has arrived for the hold window; the first press
// gets a longer window to bridge the keyboard's initial repeat delay.
const (
	initialHold = 250 * time.Millisecond
	repeatHold  = 100 * time.Millisecond
)

// Rows taken by the tab bar and the footer around the section viewport.
const (
	headerRows = 2
	footerRows = 2
)

// PortfolioOptions configures a PortfolioModel.
type PortfolioOptions struct {
	Portfolio content.Portfolio
	Store     *storage.Store     // Optional; scores and messages are dropped without it
	Dodge     config.DodgeConfig // Hidden game tuning
	TickRate  int                // Ticks per second, 60 if zero
	Seed      int64              // Game RNG seed, time-based if zero
	Logger    *log.Logger        // Discarding logger if nil
	Width     int
	Height    int
}

// scoreKeeper saves finished easter-egg rounds and tracks the best score.
type scoreKeeper struct {
	store  *storage.Store
	logger *log.Logger
	best   int
	last   int
}

func (k *scoreKeeper) record(score int) {
	k.last = score
	if score > k.best {
		k.best = score
	}
	if k.store == nil || score <= 0 {
		return
	}
	if _, err := k.store.SaveScore(dodge.ID, score); err != nil {
		k.logger.Warn("cannot save score", "game", dodge.ID, "error", err)
	}
}

// PortfolioModel is the terminal rendition of the portfolio page. Sections
// are shown one at a time; typing the secret code anywhere opens the hidden
// dodge game on top of the page.
type PortfolioModel struct {
	portfolio content.Portfolio
	sections  []content.Section
	section   int
	store     *storage.Store
	logger    *log.Logger
	keys      *KeyMapper
	tickRate  int
	width     int
	height    int

	viewport  viewport.Model
	hero      *Typewriter
	form      ContactForm
	status    string
	statusErr bool

	game      *easteregg.Controller
	frames    *easteregg.FrameQueue
	screen    *core.Screen
	surfaceOK bool
	scores    *scoreKeeper
	held      map[string]time.Time // Release deadline per held arrow
	lastTick  time.Time
	quitting  bool
}

// NewPortfolioModel creates the portfolio shell.
func NewPortfolioModel(opts PortfolioOptions) PortfolioModel {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Dodge.Field.Width <= 0 || opts.Dodge.Field.Height <= 0 {
		opts.Dodge = config.DefaultDodgeConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scores := &scoreKeeper{store: opts.Store, logger: logger}
	if opts.Store != nil {
		if best, err := opts.Store.HighScore(dodge.ID); err == nil {
			scores.best = best
		}
	}

	var rng dodge.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	params := dodge.ParamsFromConfig(opts.Dodge)
	frames := easteregg.NewFrameQueue()
	game := easteregg.NewController(easteregg.Options{
		Code:       opts.Dodge.Activation.Code,
		Params:     &params,
		Difficulty: config.NewDifficultyManager(opts.Dodge.Difficulty),
		Rand:       rng,
		Frames:     frames,
		Logger:     logger,
		OnGameOver: scores.record,
	})

	m := PortfolioModel{
		portfolio: opts.Portfolio,
		sections:  content.Sections(),
		store:     opts.Store,
		logger:    logger,
		keys:      NewKeyMapper(),
		tickRate:  opts.TickRate,
		width:     opts.Width,
		height:    opts.Height,
		viewport:  viewport.New(opts.Width, bodyHeight(opts.Height)),
		hero:      NewTypewriter(opts.Portfolio.Profile.Roles, typeDelay, typePause),
		form:      NewContactForm(),
		game:      game,
		frames:    frames,
		screen:    core.NewScreen(opts.Width, gameHeight(opts.Height)),
		scores:    scores,
		held:      make(map[string]time.Time),
	}
	m.attachSurface()
	m.refresh()
	return m
}

func bodyHeight(h int) int {
	return max(h-headerRows-footerRows, 1)
}

// gameHeight leaves the last row for the overlay's key hints.
func gameHeight(h int) int {
	return max(h-1, 1)
}

// attachSurface fits the game field onto the screen buffer. A screen that
// is too small leaves the controller without a surface.
func (m *PortfolioModel) attachSurface() {
	params := m.game.Params()
	surface, err := dodge.NewScreenSurface(m.screen, params.FieldW, params.FieldH)
	if err != nil {
		m.surfaceOK = false
		m.game.SetSurface(nil)
		return
	}
	m.surfaceOK = true
	m.game.SetSurface(surface)
	if m.game.Visible() {
		dodge.Draw(m.game.Snapshot().World, params, surface)
	}
}

// Init starts the shared tick loop.
func (m PortfolioModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m PortfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	if !m.game.Visible() {
		m.refresh()
	}
	return m, cmd
}

func (m PortfolioModel) update(msg tea.Msg) (PortfolioModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = bodyHeight(msg.Height)
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		m.screen.Clear()
		m.attachSurface()
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		m.lastTick = now
		m.hero.Advance(now)
		m.releaseExpired(now)
		m.frames.Fire(now)
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

func (m PortfolioModel) handleKey(msg tea.KeyMsg) (PortfolioModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Visible() {
		return m.handleGameKey(msg)
	}

	if r, ok := Rune(msg); ok && m.game.HandleKeyDown(r) {
		m.screen.Clear()
		m.clearHeld()
		m.form.Blur()
		return m, nil
	}

	if m.form.Focused() {
		return m.handleFormKey(msg)
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyRight, tea.KeyTab:
		m.setSection(m.section + 1)
		return m, nil
	case tea.KeyLeft, tea.KeyShiftTab:
		m.setSection(m.section - 1)
		return m, nil
	}

	// Digits jump straight to a section
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(m.sections) {
		m.setSection(int(s[0] - '1'))
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm:
		if m.currentSection().ID == "contact" {
			m.status = ""
			return m, m.form.Focus()
		}
	}
	return m, nil
}

// handleGameKey routes keys while the hidden game is on screen.
func (m PortfolioModel) handleGameKey(msg tea.KeyMsg) (PortfolioModel, tea.Cmd) {
	if key, ok := m.keys.HeldKey(msg); ok {
		m.pressHeld(key)
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionRestart:
		if m.game.Phase() == easteregg.PhaseGameOver {
			m.screen.Clear()
			m.clearHeld()
			m.game.Restart()
		}
	case core.ActionClose, core.ActionBack:
		m.game.Close()
		m.clearHeld()
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m PortfolioModel) handleFormKey(msg tea.KeyMsg) (PortfolioModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.form.Blur()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.form.Next()
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.form.Prev()
	case tea.KeyEnter:
		if m.form.OnLastField() {
			m.submit()
			return m, nil
		}
		return m, m.form.Next()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// submit validates the contact form and stores the message.
func (m *PortfolioModel) submit() {
	msg, err := m.form.Message()
	if err != nil {
		m.setStatus(strings.TrimPrefix(err.Error(), content.ErrInvalid.Error()+": "), true)
		return
	}
	if m.store == nil {
		m.setStatus("Messages cannot be delivered right now.", true)
		return
	}
	if _, err := m.store.SaveMessage(msg); err != nil {
		m.logger.Error("cannot save message", "error", err)
		m.setStatus("Could not send your message. Please try again later.", true)
		return
	}

	m.logger.Info("message received", "email", msg.Email)
	m.form.Reset()
	m.form.Blur()
	m.setStatus("Message sent! Thank you for your message. I'll get back to you soon.", false)
}

func (m *PortfolioModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// pressHeld marks an arrow as held. Pressing one arrow releases the other.
func (m *PortfolioModel) pressHeld(key string) {
	for other := range m.held {
		if other != key {
			m.game.HandleKeyUp(other)
			delete(m.held, other)
		}
	}

	hold := initialHold
	if _, ok := m.held[key]; ok {
		hold = repeatHold
	}
	m.held[key] = m.clock().Add(hold)
	m.game.HandleKeyDown(key)
}

// releaseExpired releases arrows whose hold window has passed.
func (m *PortfolioModel) releaseExpired(now time.Time) {
	for key, deadline := range m.held {
		if !now.Before(deadline) {
			m.game.HandleKeyUp(key)
			delete(m.held, key)
		}
	}
}

func (m *PortfolioModel) clearHeld() {
	for key := range m.held {
		m.game.HandleKeyUp(key)
		delete(m.held, key)
	}
}

// clock is the time of the latest tick, so key deadlines share the game's
// time base.
func (m PortfolioModel) clock() time.Time {
	if m.lastTick.IsZero() {
		return time.Now()
	}
	return m.lastTick
}

func (m *PortfolioModel) setSection(i int) {
	n := len(m.sections)
	if i < 0 || i >= n {
		i = (i%n + n) % n
	}
	if i == m.section {
		return
	}
	m.section = i
	m.form.Blur()
	m.viewport.GotoTop()
}

func (m PortfolioModel) currentSection() content.Section {
	return m.sections[m.section]
}

// refresh re-renders the current section into the viewport.
func (m *PortfolioModel) refresh() {
	v := sectionView{
		portfolio: m.portfolio,
		width:     m.width,
		heroLine:  m.hero.Text(),
		form:      m.form,
		status:    m.status,
		statusErr: m.statusErr,
	}
	m.viewport.SetContent(v.render(m.currentSection().ID))
}

// View renders the current state to a string for display.
func (m PortfolioModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game.Visible() {
		return m.viewGame()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		m.viewport.View(),
		m.viewFooter(),
	)
}

func (m PortfolioModel) viewTabs() string {
	tabs := make([]string, len(m.sections))
	for i, s := range m.sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title)
		if i == m.section {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(bar) > m.width {
		bar = activeTabStyle.Render(fmt.Sprintf("< %d/%d %s >",
			m.section+1, len(m.sections), m.currentSection().Title))
	}
	return bar + "\n"
}

func (m PortfolioModel) viewFooter() string {
	hint := "←/→ sections  ↑/↓ scroll  q quit"
	if m.form.Focused() {
		hint = "ctrl+c quit"
	}
	return "\n" + dimStyle.Render(hint)
}

func (m PortfolioModel) viewGame() string {
	if !m.surfaceOK {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small for the game")
		return RenderScreen(m.screen) + "\n" + dimStyle.Render("c/esc close")
	}

	snap := m.game.Snapshot()
	hint := "←/→ move  c/esc close"
	if snap.Phase == easteregg.PhaseGameOver {
		dodge.DrawMessage(m.screen, "GAME OVER!",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, m.scores.best))
		hint = "r restart  c/esc close"
	}
	return RenderScreen(m.screen) + "\n" + dimStyle.Render(hint)
}

// Section returns the ID of the section on screen.
func (m PortfolioModel) Section() string {
	return m.currentSection().ID
}

// Game exposes the easter-egg controller.
func (m PortfolioModel) Game() *easteregg.Controller {
	return m.game
}

// Status returns the contact form's last status line.
func (m PortfolioModel) Status() (string, bool) {
	return m.status, m.statusErr
}

// ErrNoPortfolio is returned by RunPortfolio when there is nothing to show.
var ErrNoPortfolio = errors.New("tui: portfolio has no profile")

// RunPortfolio starts the portfolio shell in the local terminal.
func RunPortfolio(opts PortfolioOptions) error {
	if opts.Portfolio.Profile.Name == "" {
		return ErrNoPortfolio
	}
	_, err := tea.NewProgram(NewPortfolioModel(opts), tea.WithAltScreen()).Run()
	return err
}
