package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanvi-nagalla/portfolio/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "portfolio dev")
}

func TestInitWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")

	out, err := run(t, "init", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, "Nagalla Thanvi", cfg.Profile.Name)

	_, err = run(t, "init", "--config", path)
	require.Error(t, err)

	_, err = run(t, "init", "--config", path, "--force")
	require.NoError(t, err)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte("sections:\n  default: blog\n"), 0644))

	cfgFile = path
	defer func() { cfgFile = config.DefaultPath }()

	_, err := loadConfig()
	require.Error(t, err)
}
