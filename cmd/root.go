package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thanvi-nagalla/portfolio/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `Serves the single-page portfolio over HTTP, or opens the same page in
the terminal with scroll-linked navigation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
