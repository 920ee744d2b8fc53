// Test Type: Integration Test
// Description: Tests for the mimeglob command line, run end to end against temporary databases

package mimeglob

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
	"github.com/arthur-debert/mimeglob/pkg/testutil"
	"github.com/arthur-debert/mimeglob/pkg/ui/display"
	"github.com/arthur-debert/mimeglob/pkg/ui/styles"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGlobs2 = `# test database
50:text/plain:*.txt
50:application/x-bzip2:*.bz2
50:application/x-bzip2-compressed-tar:*.tar.bz2
50:text/x-c++src:*.C:cs
50:text/x-csrc:*.c
10:text/x-readme:README*
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestMatchCommand(t *testing.T) {
	env := testutil.NewEnvironment(t)
	db := env.AddFile(t, "globs2", testGlobs2)

	out, err := execute(t, "match", "--no-system", "--globs", db,
		"docs/notes.TXT", "backup.tar.bz2", "main.C", "README.md", "unknown.xyz")
	require.NoError(t, err)

	assert.Equal(t,
		"docs/notes.TXT: text/plain\n"+
			"backup.tar.bz2: application/x-bzip2-compressed-tar (also: application/x-bzip2)\n"+
			"main.C: text/x-csrc, text/x-c++src\n"+
			"README.md: text/x-readme\n"+
			"unknown.xyz: (no match)\n",
		out)
}

func TestMatchCommandJSON(t *testing.T) {
	env := testutil.NewEnvironment(t)
	db := env.AddFile(t, "globs2", testGlobs2)

	out, err := execute(t, "match", "--no-system", "--globs", db, "--format", "json", "backup.tar.bz2")
	require.NoError(t, err)

	var report display.MatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Files, 1)
	assert.Equal(t, []string{"application/x-bzip2-compressed-tar"}, report.Files[0].Winners)
	assert.Equal(t, "tar.bz2", report.Files[0].KnownSuffix)
}

func TestMatchCommandUsesSystemDatabases(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.AddSystemGlobs(t, testutil.NewGlobs2().
		Glob(50, "text/plain", "*.txt").
		Glob(50, "text/x-readme", "README*").
		String())
	env.AddUserGlobs(t, testutil.NewGlobs2().NoGlobs("text/x-readme").String())

	out, err := execute(t, "match", "a.txt", "README")
	require.NoError(t, err)
	assert.Equal(t, "a.txt: text/plain\nREADME: (no match)\n", out)

	out, err = execute(t, "match", "--no-system", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt: (no match)\n", out)
}

func TestMatchCommandConfigFile(t *testing.T) {
	env := testutil.NewEnvironment(t)
	cfg := env.AddFile(t, "mimeglob.toml", `
[database]
use_system = false

[[globs]]
pattern = "*.mg"
mime_type = "text/x-mg"

[[globs]]
pattern = "Mgfile"
mime_type = "text/x-mgfile"
weight = 80
`)

	out, err := execute(t, "match", "--config", cfg, "x.mg", "Mgfile")
	require.NoError(t, err)
	assert.Equal(t, "x.mg: text/x-mg\nMgfile: text/x-mgfile\n", out)
}

func TestMatchCommandUserConfig(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.AddSystemGlobs(t, testutil.NewGlobs2().Glob(50, "text/plain", "*.txt").String())
	env.AddUserConfig(t, "config.yaml", "output:\n  format: json\n")

	out, err := execute(t, "match", "a.txt")
	require.NoError(t, err)

	var report display.MatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"text/plain"}, report.Files[0].Winners)

	out, err = execute(t, "match", "--format", "text", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt: text/plain\n", out, "flags override the user config")
}

func TestClassifyCommand(t *testing.T) {
	testutil.NewEnvironment(t)

	out, err := execute(t, "classify", "--no-system", "Makefile", "*.txt", "README*", "*.[ch]")
	require.NoError(t, err)
	assert.Equal(t,
		"Makefile: literal, specificity 0\n"+
			"*.txt: suffix, specificity 3\n"+
			"README*: prefix, specificity 0\n"+
			"*.[ch]: generic, specificity 0\n",
		out)

	_, err = execute(t, "classify", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyPattern))
}

func TestProbeCommand(t *testing.T) {
	testutil.NewEnvironment(t)

	out, err := execute(t, "probe", "*.txt", "NOTES.TXT")
	require.NoError(t, err)
	assert.Equal(t, "*.txt NOTES.TXT: match\n", out)

	out, err = execute(t, "probe", "--case-sensitive", "*.C", "main.c")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoMatch))
	assert.Equal(t, "*.C main.c: no match\n", out)

	_, err = execute(t, "probe", "*.txt")
	require.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	env := testutil.NewEnvironment(t)
	db := env.AddFile(t, "globs2", testGlobs2)

	out, err := execute(t, "export", "--no-system", "--globs", db)
	require.NoError(t, err)
	assert.Contains(t, out, "50:text/plain:*.txt\n")
	assert.Contains(t, out, "50:text/x-c++src:*.C:cs\n")
	assert.Contains(t, out, "10:text/x-readme:README*\n")

	t.Run("toml to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "globs.toml")
		_, err := execute(t, "export", "--no-system", "--globs", db, "--format", "toml", "--output", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var listing display.GlobListing
		require.NoError(t, toml.Unmarshal(data, &listing))
		require.Len(t, listing.Globs, 6)
		assert.Equal(t, glob.NewGlob("*.txt", "text/plain"), listing.Globs[0])
		assert.True(t, listing.Globs[3].CaseSensitive)
	})

	t.Run("round trip through globs2", func(t *testing.T) {
		exported := testutil.CreateFile(t, t.TempDir(), "globs2", out)
		again, err := execute(t, "export", "--no-system", "--globs", exported)
		require.NoError(t, err)
		assert.Equal(t, out, again)
	})

	t.Run("renderer error leaves no file", func(t *testing.T) {
		t.Setenv("MIMEGLOB_OUTPUT_STYLES", filepath.Join(env.Root, "missing-styles.yaml"))
		path := filepath.Join(t.TempDir(), "globs2")
		_, err := execute(t, "export", "--no-system", "--globs", db, "--output", path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
		assert.False(t, testutil.FileExists(t, path))
	})

	t.Run("unwritable output", func(t *testing.T) {
		path := filepath.Join(env.Root, "no-such-dir", "globs2")
		_, err := execute(t, "export", "--no-system", "--globs", db, "--output", path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	})
}

func TestRootCommandErrors(t *testing.T) {
	env := testutil.NewEnvironment(t)

	_, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = execute(t, "match", "--format", "xml", "a.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	_, err = execute(t, "match", "--no-system", "--globs", filepath.Join(env.Root, "missing"), "a.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestStylesFile(t *testing.T) {
	env := testutil.NewEnvironment(t)
	db := env.AddFile(t, "globs2", testGlobs2)
	t.Cleanup(func() { _ = styles.LoadDefaults() })

	t.Setenv("MIMEGLOB_OUTPUT_STYLES", filepath.Join(env.Root, "nope.yaml"))
	_, err := execute(t, "match", "--no-system", "--globs", db, "a.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	custom := env.AddFile(t, "styles.yaml", "styles:\n  MimeType:\n    bold: true\n")
	t.Setenv("MIMEGLOB_OUTPUT_STYLES", custom)
	out, err := execute(t, "match", "--no-system", "--globs", db, "--format", "term", "a.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "text/plain")
	assert.Equal(t, []string{"MimeType"}, styles.Names())
}

func TestVersionAndCompletion(t *testing.T) {
	testutil.NewEnvironment(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mimeglob version dev")

	out, err = execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "mimeglob")

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestHelpMarkdown(t *testing.T) {
	testutil.NewEnvironment(t)

	out, err := execute(t, "help", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Text output is a `globs2` file")
	assert.Contains(t, out, "--output")

	assert.Equal(t, MsgExportLong, renderHelp(MsgExportLong, false))

	styled := renderHelp(MsgExportLong, true)
	assert.NotEqual(t, MsgExportLong, styled)
	assert.Contains(t, styled, "Export writes every glob in the registry")
}
