package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNavClickIsOptimistic(t *testing.T) {
	t.Parallel()

	nav := NewNav(pageTracker())
	off, measured, ok := nav.Click("projects")
	require.True(t, ok)
	require.True(t, measured)
	require.Equal(t, 1600, off)
	require.Equal(t, "projects", nav.Active())
	require.True(t, nav.IsActive("projects"))
}

func TestNavClickClosesMenu(t *testing.T) {
	t.Parallel()

	for _, name := range pageNames {
		nav := NewNav(pageTracker())
		nav.ToggleMenu()
		require.True(t, nav.MenuOpen())

		_, _, ok := nav.Click(name)
		require.True(t, ok)
		require.False(t, nav.MenuOpen())
	}
}

func TestNavClickUnknown(t *testing.T) {
	t.Parallel()

	nav := NewNav(pageTracker())
	nav.ToggleMenu()

	_, _, ok := nav.Click("resume")
	require.False(t, ok)
	require.True(t, nav.MenuOpen())
	require.Equal(t, DefaultSection, nav.Active())
}

func TestNavClickUnmeasured(t *testing.T) {
	t.Parallel()

	nav := NewNav(NewTracker(pageNames))
	_, measured, ok := nav.Click("contact")
	require.True(t, ok)
	require.False(t, measured)
	require.Equal(t, "contact", nav.Active())
}

func TestNavScrollAfterClick(t *testing.T) {
	t.Parallel()

	nav := NewNav(pageTracker())
	nav.Click("contact")
	nav.Scroll(750)
	require.Equal(t, "about", nav.Active())
}
