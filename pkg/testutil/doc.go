// Package testutil provides utilities for testing mimeglob components.
//
// Key components:
//   - Environment: points every XDG base directory at a temporary tree
//   - Globs2Builder: declarative globs2 database content
//   - file helpers that fail the test instead of returning errors
package testutil
