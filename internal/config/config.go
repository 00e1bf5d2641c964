package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/thanvi-nagalla/portfolio/internal/content"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_SERVER__ADDR -> server.addr).
// PORT is honored for hosting platforms that set it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists in the file replace the defaults instead of merging into them.
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			ZeroFields:       true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if c.Server.Breakpoint <= 0 {
		return fmt.Errorf("server.breakpoint must be positive")
	}

	if len(c.Sections.Names) == 0 {
		return fmt.Errorf("sections.names must not be empty")
	}
	seen := make(map[string]bool, len(c.Sections.Names))
	for _, name := range c.Sections.Names {
		if name == "" {
			return fmt.Errorf("sections.names contains an empty name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate section %q", name)
		}
		if !slices.Contains(content.SectionNames, name) {
			return fmt.Errorf("unknown section %q: must be one of %s", name, strings.Join(content.SectionNames, ", "))
		}
		seen[name] = true
	}
	if !seen[c.Sections.Default] {
		return fmt.Errorf("sections.default %q is not a declared section", c.Sections.Default)
	}
	if c.Sections.Bias < 0 {
		return fmt.Errorf("sections.bias must be non-negative")
	}

	if c.TUI.Bias < 0 {
		return fmt.Errorf("tui.bias must be non-negative")
	}
	if c.TUI.Breakpoint <= 0 {
		return fmt.Errorf("tui.breakpoint must be positive")
	}
	if c.TUI.Frames < 1 {
		return fmt.Errorf("tui.frames must be at least 1")
	}
	if c.TUI.FPS < 1 {
		return fmt.Errorf("tui.fps must be at least 1")
	}

	if err := c.Profile.Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return nil
}
