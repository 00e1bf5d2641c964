package content

import (
	"fmt"
	"strings"
)

// Section names, in page order.
const (
	Home     = "home"
	About    = "about"
	Projects = "projects"
	Contact  = "contact"
)

var SectionNames = []string{Home, About, Projects, Contact}

type Link struct {
	Label string `yaml:"label" koanf:"label"`
	URL   string `yaml:"url" koanf:"url"`
	Icon  string `yaml:"icon" koanf:"icon"`
}

type Project struct {
	Title       string   `yaml:"title" koanf:"title"`
	Description string   `yaml:"description" koanf:"description"`
	Tags        []string `yaml:"tags" koanf:"tags"`
	Demo        string   `yaml:"demo" koanf:"demo"`
	Source      string   `yaml:"source" koanf:"source"`
}

type Education struct {
	Degree      string `yaml:"degree" koanf:"degree"`
	Institution string `yaml:"institution" koanf:"institution"`
	Year        string `yaml:"year" koanf:"year"`
}

// Profile is every piece of copy shown on the page.
type Profile struct {
	Name      string    `yaml:"name" koanf:"name"`
	Initials  string    `yaml:"initials" koanf:"initials"`
	Headline  string    `yaml:"headline" koanf:"headline"`
	Tagline   string    `yaml:"tagline" koanf:"tagline"`
	About     []string  `yaml:"about" koanf:"about"`
	Skills    []string  `yaml:"skills" koanf:"skills"`
	Education Education `yaml:"education" koanf:"education"`
	Projects  []Project `yaml:"projects" koanf:"projects"`
	Pitch     string    `yaml:"pitch" koanf:"pitch"`
	Email     string    `yaml:"email" koanf:"email"`
	Social    []Link    `yaml:"social" koanf:"social"`
}

func Default() Profile {
	return Profile{
		Name:     "Nagalla Thanvi",
		Initials: "NT",
		Headline: Headline,
		Tagline:  Tagline,
		About:    []string{AboutIntro, AboutStudies},
		Skills: []string{
			"C",
			"Java",
			"HTML5",
			"CSS3",
			"JavaScript",
			"React",
			"Git",
			"Responsive Design",
		},
		Education: Education{
			Degree:      "B.Tech, Computer Science & Engineering (2nd year)",
			Institution: "KL University, Hyderabad",
		},
		Projects: []Project{
			{
				Title:       "ASSISTLY – Community Assistance Platform",
				Description: ProjectAssistly,
				Tags:        []string{"React", "HTML", "CSS", "JavaScript", "Firebase"},
				Demo:        "https://assistly-oojv.onrender.com",
				Source:      "https://github.com/nikhilkumarpanigrahi/ASSISTLY",
			},
		},
		Pitch: ContactPitch,
		Email: "nagallathanvi@gmail.com",
		Social: []Link{
			{Label: "GitHub", URL: "https://github.com/thanvi-nagalla", Icon: "github"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/thanvi-nagalla-162804368/", Icon: "linkedin"},
			{Label: "Email", URL: "mailto:nagallathanvi@gmail.com", Icon: "envelope"},
		},
	}
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	for i, proj := range p.Projects {
		if proj.Title == "" {
			return fmt.Errorf("project %d has no title", i)
		}
	}
	for i, l := range p.Social {
		if l.URL == "" {
			return fmt.Errorf("social link %d (%s) has no url", i, l.Label)
		}
	}
	return nil
}

// MailTo returns the mailto link for the contact address.
func (p Profile) MailTo() string {
	if p.Email == "" {
		return ""
	}
	return "mailto:" + p.Email
}

// Size is the total length of the copy in bytes.
func (p Profile) Size() int {
	n := len(p.Name) + len(p.Headline) + len(p.Tagline) + len(p.Pitch)
	for _, s := range p.About {
		n += len(s)
	}
	for _, s := range p.Skills {
		n += len(s)
	}
	for _, proj := range p.Projects {
		n += len(proj.Title) + len(proj.Description)
	}
	return n
}

// Title turns a section name into its link label.
func Title(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
