package config

import "github.com/thanvi-nagalla/portfolio/internal/content"

// Config is the top-level portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	Server   ServerConfig    `yaml:"server" koanf:"server"`
	Sections SectionConfig   `yaml:"sections" koanf:"sections"`
	TUI      TUIConfig       `yaml:"tui" koanf:"tui"`
	Profile  content.Profile `yaml:"profile" koanf:"profile"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" koanf:"addr"`
	// Mode is a gin mode: debug, release or test.
	Mode string `yaml:"mode" koanf:"mode"`
	Gzip bool   `yaml:"gzip" koanf:"gzip"`
	// Breakpoint is the viewport width in pixels below which the nav
	// collapses behind the menu toggle.
	Breakpoint int `yaml:"breakpoint" koanf:"breakpoint"`
}

// SectionConfig declares the tracked page regions.
type SectionConfig struct {
	Names   []string `yaml:"names" koanf:"names"`
	Default string   `yaml:"default" koanf:"default"`
	// Bias is in pixels for the web page.
	Bias int `yaml:"bias" koanf:"bias"`
}

type TUIConfig struct {
	// Bias is in terminal rows.
	Bias       int `yaml:"bias" koanf:"bias"`
	Breakpoint int `yaml:"breakpoint" koanf:"breakpoint"`
	Frames     int `yaml:"frames" koanf:"frames"`
	// FPS drives the smooth scroll animation.
	FPS       int    `yaml:"fps" koanf:"fps"`
	AltScreen bool   `yaml:"alt_screen" koanf:"alt_screen"`
	Mouse     bool   `yaml:"mouse" koanf:"mouse"`
	Accent    string `yaml:"accent" koanf:"accent"`
}
