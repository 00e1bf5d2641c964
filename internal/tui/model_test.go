package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/thanvi-nagalla/portfolio/internal/config"
)

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.TUI.Frames = 4

	m := New(cfg)
	return update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return update(t, m, msg)
}

// settle plays the remaining frames of a smooth scroll.
func settle(t *testing.T, m Model) Model {
	t.Helper()

	for m.anim != nil {
		m = update(t, m, frameMsg{id: m.anim.id})
	}
	return m
}

func TestLayoutMeasuredOnResize(t *testing.T) {
	m := newTestModel(t, 100, 30)

	layout := m.Layout()
	require.Len(t, layout, 4)
	require.Equal(t, "home", layout[0].Name)
	require.Zero(t, layout[0].Offset)
	for i := 1; i < len(layout); i++ {
		require.Equal(t, layout[i-1].Offset+layout[i-1].Extent, layout[i].Offset)
		require.Greater(t, layout[i].Extent, m.nav.Tracker().Bias())
	}
	require.Equal(t, "home", m.Active())
}

func TestScrollTracksSections(t *testing.T) {
	m := newTestModel(t, 100, 30)

	for _, s := range m.Layout() {
		m.viewport.SetYOffset(s.Offset)
		m.scrolled()
		require.Equal(t, s.Name, m.Active())

		m.viewport.SetYOffset(s.Offset + s.Extent - m.nav.Tracker().Bias() - 1)
		m.scrolled()
		require.Equal(t, s.Name, m.Active())
	}
}

func TestJumpIsOptimistic(t *testing.T) {
	m := newTestModel(t, 100, 30)

	m = press(t, m, "3")
	require.Equal(t, "projects", m.Active())
	require.Zero(t, m.Offset())
	require.NotNil(t, m.anim)

	m = settle(t, m)
	target, ok := m.nav.Tracker().Target("projects")
	require.True(t, ok)
	require.Equal(t, target, m.Offset())
	require.Equal(t, "projects", m.Active())
}

func TestCTAKeys(t *testing.T) {
	m := newTestModel(t, 100, 30)

	m = press(t, m, "c")
	require.Equal(t, "contact", m.Active())
	m = settle(t, m)
	require.Equal(t, "contact", m.Active())

	m = press(t, m, "w")
	require.Equal(t, "projects", m.Active())
}

func TestManualScrollCancelsAnimation(t *testing.T) {
	m := newTestModel(t, 100, 30)

	m = press(t, m, "4")
	id := m.anim.id
	m = update(t, m, frameMsg{id: id})
	m = press(t, m, "down")
	require.Nil(t, m.anim)

	off := m.Offset()
	m = update(t, m, frameMsg{id: id})
	require.Equal(t, off, m.Offset())
}

func TestNewClickSupersedesAnimation(t *testing.T) {
	m := newTestModel(t, 100, 30)

	m = press(t, m, "4")
	stale := m.anim.id
	m = press(t, m, "2")
	require.NotEqual(t, stale, m.anim.id)

	m = update(t, m, frameMsg{id: stale})
	require.Zero(t, m.anim.frame)
	m = settle(t, m)

	target, _ := m.nav.Tracker().Target("about")
	require.Equal(t, target, m.Offset())
	require.Equal(t, "about", m.Active())
}

func TestTabAndEnter(t *testing.T) {
	m := newTestModel(t, 100, 30)

	m = press(t, m, "tab")
	m = press(t, m, "enter")
	require.Equal(t, "about", m.Active())
}

func TestMenuClosesOnClick(t *testing.T) {
	m := newTestModel(t, 60, 30)
	require.True(t, m.narrow())
	require.NotContains(t, m.header(), "Projects")

	m = press(t, m, "m")
	require.True(t, m.MenuOpen())
	header := m.header()
	require.Contains(t, header, "✕")
	require.Contains(t, header, "Projects")
	require.Equal(t, 30-m.headerHeight()-1, m.viewport.Height)

	m = press(t, m, "2")
	require.False(t, m.MenuOpen())
	require.Equal(t, "about", m.Active())
	require.Contains(t, m.header(), "☰")
}

func TestWideHeaderShowsLinks(t *testing.T) {
	m := newTestModel(t, 120, 30)

	header := m.header()
	for _, label := range []string{"Home", "About", "Projects", "Contact"} {
		require.Contains(t, header, label)
	}
	require.NotContains(t, header, "☰")
}

func TestRevealOnce(t *testing.T) {
	m := newTestModel(t, 100, 20)
	require.True(t, m.revealed["home"])
	require.False(t, m.revealed["contact"])

	m = press(t, m, "4")
	m = settle(t, m)
	require.True(t, m.revealed["contact"])

	m = press(t, m, "g")
	require.Equal(t, "home", m.Active())
	require.True(t, m.revealed["contact"])
}

func TestViewBeforeResize(t *testing.T) {
	m := New(config.DefaultConfig())
	require.True(t, strings.Contains(m.View(), "loading"))
}
