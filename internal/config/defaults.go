package config

import (
	"github.com/thanvi-nagalla/portfolio/internal/content"
	"github.com/thanvi-nagalla/portfolio/internal/section"
)

const DefaultPath = "portfolio.yml"

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:       ":8080",
			Mode:       "release",
			Gzip:       true,
			Breakpoint: 768,
		},
		Sections: SectionConfig{
			Names:   append([]string(nil), content.SectionNames...),
			Default: section.DefaultSection,
			Bias:    section.DefaultBias,
		},
		TUI: TUIConfig{
			Bias:       3,
			Breakpoint: 80,
			Frames:     12,
			FPS:        60,
			AltScreen:  true,
			Mouse:      true,
			Accent:     "#6c63ff",
		},
		Profile: content.Default(),
	}
}
