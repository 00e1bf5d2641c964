package web

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thanvi-nagalla/portfolio/internal/config"
	"github.com/thanvi-nagalla/portfolio/internal/content"
	"github.com/thanvi-nagalla/portfolio/internal/section"
)

type navLink struct {
	Name   string
	Label  string
	Href   string
	Active bool
}

type projectView struct {
	content.Project
	Body template.HTML
}

// Page renders the single portfolio page.
type Page struct {
	profile    content.Profile
	about      []template.HTML
	projects   []projectView
	pitch      template.HTML
	names      []string
	initial    string
	bias       int
	breakpoint int
	now        func() time.Time
}

func NewPage(cfg *config.Config) (*Page, error) {
	p := &Page{
		profile:    cfg.Profile,
		names:      cfg.Sections.Names,
		initial:    cfg.Sections.Default,
		bias:       cfg.Sections.Bias,
		breakpoint: cfg.Server.Breakpoint,
		now:        time.Now,
	}

	for i, para := range cfg.Profile.About {
		h, err := content.HTML(para)
		if err != nil {
			return nil, fmt.Errorf("about paragraph %d: %w", i, err)
		}
		p.about = append(p.about, h)
	}
	for _, proj := range cfg.Profile.Projects {
		h, err := content.HTML(proj.Description)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", proj.Title, err)
		}
		p.projects = append(p.projects, projectView{Project: proj, Body: h})
	}
	pitch, err := content.HTML(cfg.Profile.Pitch)
	if err != nil {
		return nil, fmt.Errorf("contact pitch: %w", err)
	}
	p.pitch = pitch

	return p, nil
}

// nav builds the per-request navigation state. Without a browser-side
// layout the only input is the clicked link carried in the query.
func (p *Page) nav(c *gin.Context) *section.Nav {
	tracker := section.NewTracker(p.names,
		section.WithBias(p.bias),
		section.WithInitial(p.initial),
	)
	nav := section.NewNav(tracker)
	// section records an earlier click; menu is the toggle state after it
	if name := c.Query("section"); name != "" {
		nav.Click(name)
	}
	if c.Query("menu") == "open" {
		nav.ToggleMenu()
	}
	return nav
}

func sectionHref(name string) string {
	q := url.Values{"section": {name}}
	return "/?" + q.Encode() + "#" + name
}

func (p *Page) Home(c *gin.Context) {
	nav := p.nav(c)

	links := make([]navLink, 0, len(p.names))
	for _, name := range p.names {
		links = append(links, navLink{
			Name:   name,
			Label:  content.Title(name),
			Href:   sectionHref(name),
			Active: nav.IsActive(name),
		})
	}

	// the toggle keeps the clicked section and flips the menu
	q := url.Values{}
	if active := nav.Active(); active != p.initial {
		q.Set("section", active)
	}
	if !nav.MenuOpen() {
		q.Set("menu", "open")
	}
	menuHref := "/"
	if len(q) > 0 {
		menuHref = "/?" + q.Encode()
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":    p.profile,
		"about":      p.about,
		"projects":   p.projects,
		"pitch":      p.pitch,
		"links":      links,
		"active":     nav.Active(),
		"menuOpen":   nav.MenuOpen(),
		"menuHref":   menuHref,
		"contact":    sectionHref(content.Contact),
		"work":       sectionHref(content.Projects),
		"mailto":     p.profile.MailTo(),
		"breakpoint": p.breakpoint,
		"bias":       p.bias,
		"year":       p.now().Year(),
	})
}

func (p *Page) Register(r gin.IRouter) {
	r.GET("/", p.Home)
}
