package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// Environment is an isolated set of XDG base directories
type Environment struct {
	Root       string
	ConfigHome string
	ConfigDir  string
	DataHome   string
	DataDir    string
	StateHome  string
}

// NewEnvironment points the XDG variables at a temporary tree and reloads
// the xdg package. Everything is restored when the test ends. NO_COLOR is
// set so rendered output is plain.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	// registered first so it runs after the variables are restored
	t.Cleanup(xdg.Reload)

	root := t.TempDir()
	env := &Environment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		ConfigDir:  filepath.Join(root, "etc", "xdg"),
		DataHome:   filepath.Join(root, "data"),
		DataDir:    filepath.Join(root, "usr", "share"),
		StateHome:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", env.ConfigDir)
	t.Setenv("XDG_DATA_HOME", env.DataHome)
	t.Setenv("XDG_DATA_DIRS", env.DataDir)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()

	return env
}

// AddSystemGlobs writes the system mime/globs2 database
func (e *Environment) AddSystemGlobs(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.DataDir, filepath.Join("mime", "globs2"), content)
}

// AddSystemPackage writes a mime/packages XML source to the system data dir
func (e *Environment) AddSystemPackage(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, e.DataDir, filepath.Join("mime", "packages", name), content)
}

// AddUserGlobs writes the user mime/globs2 database
func (e *Environment) AddUserGlobs(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.DataHome, filepath.Join("mime", "globs2"), content)
}

// AddUserConfig writes the user config file; name selects the format,
// e.g. "config.toml" or "config.yaml"
func (e *Environment) AddUserConfig(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, e.ConfigHome, filepath.Join("mimeglob", name), content)
}

// AddFile writes a file anywhere under the environment root
func (e *Environment) AddFile(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, e.Root, name, content)
}
