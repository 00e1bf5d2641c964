package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thanvi-nagalla/portfolio/internal/content"
)

const maxTextWidth = 96

type renderer struct {
	profile content.Profile
	width   int
	year    int
}

func (r renderer) textWidth() int {
	w := r.width - 4
	if w > maxTextWidth {
		w = maxTextWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// block renders one named page region.
func (r renderer) block(name string, st styles) string {
	var body string
	switch name {
	case content.Home:
		body = r.hero(st)
	case content.About:
		body = r.about(st)
	case content.Projects:
		body = r.projects(st)
	case content.Contact:
		body = r.contact(st)
	default:
		body = st.Title.Render(content.Title(name))
	}
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(body)
}

func (r renderer) paragraph(st styles, src string) string {
	return st.Text.Width(r.textWidth()).Render(content.Plain(src))
}

func (r renderer) hero(st styles) string {
	p := r.profile
	lines := []string{
		"",
		st.Text.Render("Hi, I'm ") + st.Highlight.Render(p.Name),
		st.Subtitle.Render(p.Headline),
		"",
		r.paragraph(st, p.Tagline),
		"",
		st.Button.Render("c  Get In Touch") + st.Button.Render("w  View My Work"),
		"",
	}
	return strings.Join(lines, "\n")
}

func (r renderer) about(st styles) string {
	p := r.profile
	parts := []string{st.Title.Render("About Me")}
	for _, para := range p.About {
		parts = append(parts, r.paragraph(st, para), "")
	}
	if p.Education.Institution != "" {
		edu := p.Education.Degree + ", " + p.Education.Institution
		if p.Education.Year != "" {
			edu += " (" + p.Education.Year + ")"
		}
		parts = append(parts, st.Highlight.Render("Education"), r.paragraph(st, edu), "")
	}
	parts = append(parts, st.Highlight.Render("Technical Skills"), r.tags(st, p.Skills), "")
	parts = append(parts, r.social(st))
	return strings.Join(parts, "\n")
}

// tags lays tags out in rows that fit the text width.
func (r renderer) tags(st styles, tags []string) string {
	var (
		rows []string
		row  string
	)
	for _, t := range tags {
		cell := st.Tag.Render(t)
		if row != "" && lipgloss.Width(row)+lipgloss.Width(cell) > r.textWidth() {
			rows = append(rows, row)
			row = ""
		}
		row += cell
	}
	if row != "" {
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (r renderer) social(st styles) string {
	var links []string
	for _, l := range r.profile.Social {
		links = append(links, st.Highlight.Render(l.Label)+" "+st.URL.Render(strings.TrimPrefix(l.URL, "mailto:")))
	}
	return strings.Join(links, "\n")
}

func (r renderer) projects(st styles) string {
	p := r.profile
	title := "My Project"
	if len(p.Projects) > 1 {
		title += "s"
	}
	parts := []string{st.Title.Render(title)}

	inner := r.textWidth() - 4
	for _, proj := range p.Projects {
		card := []string{
			st.Highlight.Render(proj.Title),
			"",
			st.Text.Width(inner).Render(content.Plain(proj.Description)),
			"",
			r.tags(st, proj.Tags),
		}
		if proj.Demo != "" {
			card = append(card, "", st.Subtitle.Render("View Project ")+st.URL.Render(proj.Demo))
		}
		if proj.Source != "" {
			card = append(card, st.Subtitle.Render("Source Code  ")+st.URL.Render(proj.Source))
		}
		parts = append(parts, st.Card.Width(r.textWidth()).Render(strings.Join(card, "\n")))
	}
	return strings.Join(parts, "\n")
}

func (r renderer) contact(st styles) string {
	p := r.profile
	parts := []string{
		st.Title.Render("Get In Touch"),
		r.paragraph(st, p.Pitch),
	}
	if p.Email != "" {
		parts = append(parts, "", st.Button.Render("Say Hello")+" "+st.URL.Render(p.Email))
	}
	return strings.Join(parts, "\n")
}

func (r renderer) footer(st styles) string {
	rule := st.Footer.Render(strings.Repeat("─", r.textWidth()))
	var labels []string
	for _, l := range r.profile.Social {
		labels = append(labels, l.Label)
	}
	lines := []string{
		rule,
		st.Highlight.Render(r.profile.Initials) + "  " + st.Footer.Render(strings.Join(labels, " · ")),
		st.Footer.Render(fmt.Sprintf("© %d %s. All rights reserved.", r.year, r.profile.Name)),
	}
	return lipgloss.NewStyle().Padding(0, 2, 1).Render(strings.Join(lines, "\n"))
}
