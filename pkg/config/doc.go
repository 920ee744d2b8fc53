// Package config loads mimeglob settings. Layers are applied in order:
// embedded defaults, the user config file from the XDG config directories,
// an explicit config file, MIMEGLOB_* environment variables and finally
// command-line overrides.
package config
