package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thanvi-nagalla/portfolio/internal/config"
	"github.com/thanvi-nagalla/portfolio/internal/content"
	"github.com/thanvi-nagalla/portfolio/internal/section"
)

type frameMsg struct {
	id int
}

// scrollAnim moves the viewport from one offset to another over a fixed
// number of frames.
type scrollAnim struct {
	id     int
	from   int
	to     int
	frame  int
	frames int
}

func (a scrollAnim) position() int {
	t := float64(a.frame) / float64(a.frames)
	if t > 1 {
		t = 1
	}
	// ease-out cubic
	e := 1 - (1-t)*(1-t)*(1-t)
	return a.from + int(float64(a.to-a.from)*e+0.5)
}

type Model struct {
	nav      *section.Nav
	names    []string
	render   renderer
	styles   styles
	viewport viewport.Model
	keys     keyMap
	help     help.Model

	revealed map[string]bool
	focus    int
	anim     *scrollAnim
	animID   int

	width      int
	height     int
	ready      bool
	breakpoint int
	frames     int
	fps        int
}

func New(cfg *config.Config) Model {
	tracker := section.NewTracker(cfg.Sections.Names,
		section.WithBias(cfg.TUI.Bias),
		section.WithInitial(cfg.Sections.Default),
	)

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return Model{
		nav:        section.NewNav(tracker),
		names:      tracker.Names(),
		render:     renderer{profile: cfg.Profile, year: time.Now().Year()},
		styles:     newStyles(cfg.TUI.Accent),
		viewport:   vp,
		keys:       newKeyMap(),
		help:       help.New(),
		revealed:   make(map[string]bool),
		breakpoint: cfg.TUI.Breakpoint,
		frames:     cfg.TUI.Frames,
		fps:        cfg.TUI.FPS,
	}
}

func (m Model) Active() string {
	return m.nav.Active()
}

func (m Model) MenuOpen() bool {
	return m.nav.MenuOpen()
}

func (m Model) Offset() int {
	return m.viewport.YOffset
}

func (m Model) Layout() section.Layout {
	return m.nav.Tracker().Layout()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) narrow() bool {
	return m.width < m.breakpoint
}

func (m Model) headerHeight() int {
	h := 2
	if m.narrow() && m.nav.MenuOpen() {
		h += len(m.names)
	}
	return h
}

func (m *Model) resizeViewport() {
	h := m.height - m.headerHeight() - 1
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// rebuild renders every block and refreshes the cached layout table. It
// runs on resize and when a section is revealed, never on plain scrolls.
func (m *Model) rebuild() {
	m.render.width = m.width

	var (
		blocks  = make([]string, 0, len(m.names)+1)
		extents = make([]int, 0, len(m.names))
	)
	for _, name := range m.names {
		st := m.styles
		if !m.revealed[name] {
			st = st.faded()
		}
		b := m.render.block(name, st)
		blocks = append(blocks, b)
		extents = append(extents, lipgloss.Height(b))
	}
	footer := m.render.footer(m.styles)
	blocks = append(blocks, footer)

	layout := section.Stack(m.names, extents)
	m.nav.Tracker().SetLayout(layout)

	// pad so the last section can still reach the top of the viewport
	total := lipgloss.Height(footer)
	for _, e := range extents {
		total += e
	}
	if n := len(layout); n > 0 {
		if pad := layout[n-1].Offset + m.viewport.Height - total; pad > 0 {
			blocks = append(blocks, strings.Repeat("\n", pad-1))
		}
	}

	off := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(blocks, "\n"))
	m.viewport.SetYOffset(off)
}

// reveal marks every section intersecting the viewport. Revealed sections
// stay revealed.
func (m *Model) reveal() bool {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	changed := false
	for _, s := range m.nav.Tracker().Layout() {
		if m.revealed[s.Name] {
			continue
		}
		if s.Offset < bottom && s.Offset+s.Extent > top {
			m.revealed[s.Name] = true
			changed = true
		}
	}
	return changed
}

// scrolled is the scroll notification: it runs after every change of the
// viewport offset.
func (m *Model) scrolled() {
	m.nav.Scroll(m.viewport.YOffset)
	if m.reveal() {
		m.rebuild()
	}
}

func (m Model) tick(id int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

// click follows a navigation link: the section is active immediately and
// the viewport animates to it.
func (m *Model) click(name string) tea.Cmd {
	offset, measured, ok := m.nav.Click(name)
	if !ok {
		return nil
	}
	for i, n := range m.names {
		if n == name {
			m.focus = i
		}
	}
	m.resizeViewport()
	m.rebuild()
	if !measured {
		return nil
	}

	m.animID++
	m.anim = &scrollAnim{
		id:     m.animID,
		from:   m.viewport.YOffset,
		to:     offset,
		frames: m.frames,
	}
	return m.tick(m.animID)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		m.rebuild()
		m.ready = true
		m.scrolled()
		return m, nil

	case frameMsg:
		if m.anim == nil || msg.id != m.anim.id {
			return m, nil
		}
		m.anim.frame++
		m.viewport.SetYOffset(m.anim.position())
		m.scrolled()
		if m.anim.frame >= m.anim.frames {
			m.anim = nil
			return m, nil
		}
		return m, m.tick(msg.id)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Menu):
			m.nav.ToggleMenu()
			m.resizeViewport()
			m.rebuild()
			return m, nil
		case key.Matches(msg, m.keys.Jump):
			i := int(msg.Runes[0] - '1')
			if i < len(m.names) {
				return m, m.click(m.names[i])
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % len(m.names)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus - 1 + len(m.names)) % len(m.names)
			return m, nil
		case key.Matches(msg, m.keys.Follow):
			return m, m.click(m.names[m.focus])
		case key.Matches(msg, m.keys.Contact):
			return m, m.click(content.Contact)
		case key.Matches(msg, m.keys.Work):
			return m, m.click(content.Projects)
		case key.Matches(msg, m.keys.Top):
			m.anim = nil
			m.viewport.GotoTop()
			m.scrolled()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.anim = nil
			m.viewport.GotoBottom()
			m.scrolled()
			return m, nil
		}
	}

	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		// manual scrolling cancels a running animation
		m.anim = nil
		m.scrolled()
	}
	return m, cmd
}

func (m Model) header() string {
	logo := m.styles.Logo.Render(m.render.profile.Initials)

	var right string
	if m.narrow() {
		icon := "☰"
		if m.nav.MenuOpen() {
			icon = "✕"
		}
		right = m.styles.Link.Render(icon)
	} else {
		right = strings.Join(m.links(), "")
	}

	gap := m.width - lipgloss.Width(logo) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	lines := []string{" " + logo + strings.Repeat(" ", gap) + right}

	if m.narrow() && m.nav.MenuOpen() {
		lines = append(lines, m.links()...)
	}
	lines = append(lines, m.styles.Rule.Render(strings.Repeat("─", max(m.width, 1))))
	return strings.Join(lines, "\n")
}

func (m Model) links() []string {
	out := make([]string, 0, len(m.names))
	for i, name := range m.names {
		st := m.styles.Link
		switch {
		case m.nav.IsActive(name):
			st = m.styles.Active
		case i == m.focus:
			st = m.styles.Focused
		}
		out = append(out, st.Render(content.Title(name)))
	}
	return out
}

func (m Model) View() string {
	if !m.ready {
		return "\n  loading…"
	}
	return m.header() + "\n" + m.viewport.View() + "\n" + m.help.View(m.keys)
}
