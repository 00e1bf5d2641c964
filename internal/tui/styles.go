package tui

import "github.com/charmbracelet/lipgloss"

const muted = lipgloss.Color("#636e72")

type styles struct {
	accent    lipgloss.Color
	Logo      lipgloss.Style
	Link      lipgloss.Style
	Active    lipgloss.Style
	Focused   lipgloss.Style
	Rule      lipgloss.Style
	Title     lipgloss.Style
	Highlight lipgloss.Style
	Subtitle  lipgloss.Style
	Text      lipgloss.Style
	Tag       lipgloss.Style
	Button    lipgloss.Style
	Card      lipgloss.Style
	URL       lipgloss.Style
	Footer    lipgloss.Style
}

func newStyles(accent string) styles {
	c := lipgloss.Color(accent)
	return styles{
		accent: c,
		Logo:   lipgloss.NewStyle().Bold(true).Foreground(c),
		Link:   lipgloss.NewStyle().Padding(0, 1),
		Active: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(c).Underline(true),
		Focused: lipgloss.NewStyle().
			Padding(0, 1).
			Reverse(true),
		Rule:      lipgloss.NewStyle().Foreground(muted),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(c).MarginBottom(1),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(c),
		Subtitle:  lipgloss.NewStyle().Foreground(muted),
		Text:      lipgloss.NewStyle(),
		Tag: lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Background(lipgloss.Color("#dfe6e9")).
			Foreground(lipgloss.Color("#2d3436")),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(2).
			Bold(true).
			Background(c).
			Foreground(lipgloss.Color("#ffffff")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 1),
		URL:    lipgloss.NewStyle().Foreground(c).Underline(true),
		Footer: lipgloss.NewStyle().Foreground(muted),
	}
}

// faded is used for sections that have not scrolled into view yet.
func (s styles) faded() styles {
	f := s
	for _, st := range []*lipgloss.Style{
		&f.Title, &f.Highlight, &f.Subtitle, &f.Text, &f.URL, &f.Footer,
	} {
		*st = st.Foreground(muted).Faint(true)
	}
	f.Tag = f.Tag.UnsetBackground().Foreground(muted).Faint(true)
	f.Button = f.Button.UnsetBackground().Foreground(muted).Faint(true)
	f.Card = f.Card.BorderForeground(muted)
	return f
}
