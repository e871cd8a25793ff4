package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"visibilitystack-cli/internal/model"
	"visibilitystack-cli/internal/nav"
	"visibilitystack-cli/internal/tui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps config lookups away from the developer's real files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{"VSTACK_SCREEN", "VSTACK_THEME", "VSTACK_SEED", "VSTACK_DEBUG_LOG", "VSTACK_LOG_LEVEL", "VSTACK_ACCOUNT_EMAIL"} {
		t.Setenv(k, "")
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedCmd_DefaultJSON(t *testing.T) {
	isolate(t)
	out, err := execute(t, "seed")
	require.NoError(t, err)

	var snap model.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "VisibilityStack.ai", snap.Profile.Name)
	require.Len(t, snap.ICPs, 2)
	assert.Equal(t, int64(1), snap.ICPs[0].ID)
	assert.Len(t, snap.Competitors, 3)
}

func TestSeedCmd_EDNFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile:
  name: Acme
icps:
  - id: 7
    name: Retail
    type: SMB
`), 0o644))

	out, err := execute(t, "seed", "--seed", path, "--format", "edn")
	require.NoError(t, err)
	assert.Contains(t, out, `"Acme"`)
	assert.Contains(t, out, `"Retail"`)
	assert.Contains(t, out, ":id 7")
}

func TestSeedCmd_InvalidSeedFails(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icps:\n  - id: 1\n    name: X\n    type: Huge\n"), 0o644))

	_, err := execute(t, "seed", "--seed", path)
	require.Error(t, err)
}

func TestSeedCmd_UnknownFormat(t *testing.T) {
	isolate(t)
	_, err := execute(t, "seed", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestScreensCmd(t *testing.T) {
	isolate(t)
	out, err := execute(t, "screens")
	require.NoError(t, err)

	var got []screenInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(nav.Screens()))

	byID := map[string]screenInfo{}
	for _, s := range got {
		byID[s.ID] = s
	}
	assert.True(t, byID[string(nav.BusinessContext)].Default)
	assert.True(t, byID[string(nav.Citations)].Sidebar)
	assert.False(t, byID[string(nav.Settings)].Sidebar)
}

func TestRoot_RunsDashboardWithConfiguredScreen(t *testing.T) {
	isolate(t)
	var got tui.Options
	// Record the options instead of taking over the terminal.
	cmd := newRootCmd(&App{runTUI: func(o tui.Options) error {
		got = o
		return nil
	}})
	cmd.SetArgs([]string{"--screen", "citations", "--theme", "dark"})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, got.Nav)
	require.NotNil(t, got.Store)
	assert.Equal(t, nav.Citations, got.Nav.Current())
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "john.doe@company.com", got.AccountEmail)
	assert.Len(t, got.Store.ICPs(), 2)
}

func TestRoot_RejectsUnknownScreen(t *testing.T) {
	isolate(t)
	cmd := newRootCmd(&App{runTUI: func(tui.Options) error {
		t.Fatal("dashboard must not start")
		return nil
	}})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--screen", "billing"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, nav.ErrInvalidScreenID))
}

func TestRoot_AccountEmailFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("VSTACK_ACCOUNT_EMAIL", "ops@example.com")
	var got tui.Options
	cmd := newRootCmd(&App{runTUI: func(o tui.Options) error { got = o; return nil }})
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "ops@example.com", got.AccountEmail)
}

func TestRoot_DebugLogWritten(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "debug.log")
	cmd := newRootCmd(&App{runTUI: func(tui.Options) error { return nil }})
	cmd.SetArgs([]string{"--debug-log", logPath})
	require.NoError(t, cmd.Execute())

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "dashboard starting"), "log: %s", b)
}

func TestDocsCmd(t *testing.T) {
	isolate(t)
	out, err := execute(t, "docs")
	require.NoError(t, err)
	assert.Equal(t, "config\nkeys\nseed\n", out)

	out, err = execute(t, "docs", "seed", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Seed file")

	_, err = execute(t, "docs", "nope")
	require.Error(t, err)
}
