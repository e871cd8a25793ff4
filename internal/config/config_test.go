package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no config home so that a
// developer's own vstack.yaml or .env cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{"VSTACK_SCREEN", "VSTACK_THEME", "VSTACK_ACCOUNT_EMAIL", "VSTACK_SEED", "VSTACK_DEBUG_LOG", "VSTACK_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "businessContext", cfg.Screen)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, "john.doe@company.com", cfg.AccountEmail)
	assert.Empty(t, cfg.SeedPath)
	assert.Empty(t, cfg.DebugLog)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vstack.yaml"), []byte("screen: citations\ntheme: light\naccount:\n  email: file@x.test\n"), 0o600))
	t.Setenv("VSTACK_THEME", "dark")

	fs := pflag.NewFlagSet("t", pflag.ContinueOnError)
	fs.String("screen", "", "")
	fs.String("theme", "", "")
	require.NoError(t, fs.Parse([]string{"--screen", "settings"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "settings", cfg.Screen, "flag beats file")
	assert.Equal(t, "dark", cfg.Theme, "env beats file")
	assert.Equal(t, "file@x.test", cfg.AccountEmail)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VSTACK_ACCOUNT_EMAIL=env@x.test\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("VSTACK_ACCOUNT_EMAIL") })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "env@x.test", cfg.AccountEmail)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	isolate(t)
	t.Setenv("VSTACK_THEME", "neon")
	_, err := Load("", nil)
	assert.Error(t, err)
}
