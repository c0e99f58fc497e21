package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv isolates config lookup and returns a fresh database path.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, key := range []string{"ALBUMLIST_DB", "ALBUMLIST_ICONS", "ALBUMLIST_COLOR", "ALBUMLIST_LOG_FILE", "ALBUMLIST_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(dir)
	return filepath.Join(dir, "albums.db")
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Scenario(t *testing.T) {
	db := setupEnv(t)

	steps := []struct {
		args     []string
		expected string
	}{
		{[]string{"Boards of Canada", "Geogaddi", "cd"}, "✔ Boards of Canada - Geogaddi (cd) added.\n"},
		{[]string{"Boards of Canada", "Geogaddi", "cd"}, "⚠ Boards of Canada - Geogaddi (cd) Already in Database.\n"},
		{[]string{"Boards of Canada", "Geogaddi", "cd", "-r"}, "✔ Boards of Canada - Geogaddi (cd) removed.\n"},
		{[]string{"Boards of Canada", "Geogaddi", "cd", "-s"}, "⚠ Boards of Canada - Geogaddi (cd) not found.\n"},
	}

	for _, step := range steps {
		code, stdout, stderr := execute(t, append(step.args, "--db", db)...)
		assert.Equal(t, 0, code, "args %v, stderr %q", step.args, stderr)
		assert.Equal(t, step.expected, stdout, "args %v", step.args)
	}
}

func TestRun_SynonymAndVerbose(t *testing.T) {
	db := setupEnv(t)

	code, _, _ := execute(t, "Burial", "Untrue", "VIN", "--db", db)
	require.Equal(t, 0, code)

	code, stdout, _ := execute(t, "Aphex Twin", "Drukqs", "Dig", "--db", db, "--verbose")
	require.Equal(t, 0, code)

	expected := "✔ Aphex Twin - Drukqs (digital) added.\n" +
		"\n" +
		"1: Aphex Twin - Drukqs (digital)\n" +
		"2: Burial - Untrue (vinyl)\n"
	assert.Equal(t, expected, stdout)
}

func TestRun_VerboseInvalidSort(t *testing.T) {
	db := setupEnv(t)

	code, stdout, _ := execute(t, "Burial", "Untrue", "cd", "--db", db, "-v", "--sort", "year")

	assert.Equal(t, 0, code)
	expected := "✔ Burial - Untrue (cd) added.\n" +
		"\n" +
		"⚠ Table only sortable by \"artist\", \"album\" or \"mediatype\"\n"
	assert.Equal(t, expected, stdout)
}

func TestRun_UnknownMediaType(t *testing.T) {
	db := setupEnv(t)

	code, stdout, stderr := execute(t, "Burial", "Untrue", "VHS", "--db", db)

	assert.Equal(t, 1, code)
	assert.Equal(t, "❌ \"vhs\" is an unknown media type.\n", stdout)
	assert.Empty(t, stderr)

	_, err := os.Stat(db)
	assert.True(t, os.IsNotExist(err), "database should not be touched")
}

func TestRun_RemoveAndSearchConflict(t *testing.T) {
	db := setupEnv(t)

	code, stdout, stderr := execute(t, "Burial", "Untrue", "cd", "--db", db, "-r", "-s")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "remove")
	assert.Contains(t, stderr, "search")
}

func TestRun_WrongArgCount(t *testing.T) {
	db := setupEnv(t)

	code, stdout, stderr := execute(t, "Burial", "Untrue", "--db", db)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "accepts 3 arg(s), received 2")
}

func TestRun_ConfigFile(t *testing.T) {
	db := setupEnv(t)

	cfgPath := filepath.Join(t.TempDir(), "albumlist.toml")
	content := "database = \"" + db + "\"\nicons = \"none\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	code, stdout, _ := execute(t, "Burial", "Untrue", "cd", "--config", cfgPath)

	assert.Equal(t, 0, code)
	assert.Equal(t, "[ok] Burial - Untrue (cd) added.\n", stdout)
	_, err := os.Stat(db)
	assert.NoError(t, err)
}

func TestRun_BadConfig(t *testing.T) {
	setupEnv(t)

	code, stdout, stderr := execute(t, "Burial", "Untrue", "cd", "--config", "/nonexistent/albumlist.toml")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Failed to load configuration")
}

func TestRun_LogFile(t *testing.T) {
	db := setupEnv(t)
	logPath := filepath.Join(t.TempDir(), "albumlist.log")
	t.Setenv("ALBUMLIST_LOG_FILE", logPath)
	t.Setenv("ALBUMLIST_LOG_LEVEL", "debug")

	code, _, _ := execute(t, "Burial", "Untrue", "cd", "--db", db, "-s")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"action":"search"`)
	assert.Contains(t, string(data), `"msg":"using catalogue"`)
	assert.Contains(t, string(data), `"path":"`+db+`"`)
}

func TestRun_HelpDocumentsExitStatus(t *testing.T) {
	setupEnv(t)

	code, stdout, _ := execute(t, "--help")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Exit status:")
	assert.Contains(t, stdout, "1 for an unknown media type")
}
