package globs2

import (
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
	"github.com/arthur-debert/mimeglob/pkg/logging"
	"github.com/rs/zerolog"
)

// Loader applies glob database files to a registry
type Loader struct {
	// Strict makes malformed lines and rejected records fail the load
	// instead of being logged and skipped
	Strict bool

	logger zerolog.Logger
}

// NewLoader creates a lenient loader
func NewLoader() *Loader {
	return &Loader{
		logger: logging.GetLogger("globs2.loader"),
	}
}

// LoadFile applies the database at path, guessing its format from the name.
// It returns the number of records applied.
func (l *Loader) LoadFile(reg *glob.Registry, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrapf(err, errors.ErrFileNotFound, "glob database %s not found", path).
				WithDetail("path", path)
		}
		return 0, errors.Wrapf(err, errors.ErrDatabaseRead, "cannot open glob database %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	n, err := l.Load(reg, f, FormatForPath(path))
	if err != nil {
		return n, errors.Wrapf(err, errors.GetErrorCode(err), "failed to load %s", path).
			WithDetail("path", path)
	}

	l.logger.Debug().
		Str("path", path).
		Int("records", n).
		Msg("Loaded glob database")

	return n, nil
}

// Load applies every record read from r in order
func (l *Loader) Load(reg *glob.Registry, r io.Reader, format Format) (int, error) {
	entries, err := parse(r, format, l.skipUnlessStrict)
	if err != nil {
		return 0, err
	}
	return l.Apply(reg, entries)
}

// Apply registers entries in order; a NoGlobs entry removes the MIME type
// from the registry first
func (l *Loader) Apply(reg *glob.Registry, entries []Entry) (int, error) {
	applied := 0
	for _, entry := range entries {
		if entry.NoGlobs {
			reg.RemoveMimeType(entry.MimeType)
			applied++
			continue
		}

		if err := reg.AddGlob(entry.Glob); err != nil {
			err = errors.Wrapf(err, errors.GetErrorCode(err), "line %d", entry.Line).
				WithDetail("line", entry.Line)
			if err := l.skipUnlessStrict(err); err != nil {
				return applied, err
			}
			continue
		}
		applied++
	}
	return applied, nil
}

func (l *Loader) skipUnlessStrict(err error) error {
	if l.Strict {
		return err
	}
	l.logger.Warn().Err(err).Msg("Skipping glob database record")
	return nil
}

// SystemFiles lists the glob databases of the XDG data directories, lowest
// priority first
func SystemFiles() []string {
	return FindFiles(xdg.DataHome, xdg.DataDirs)
}

// FindFiles returns, for each directory, mime/globs2 or failing that the
// legacy mime/globs, and when neither exists the mime/packages/*.xml sources
// the database is compiled from. The result runs from the last entry of dataDirs to the
// first and ends with dataHome, so loading in order lets the more important
// directories override the others.
func FindFiles(dataHome string, dataDirs []string) []string {
	dirs := make([]string, 0, len(dataDirs)+1)
	for i := len(dataDirs) - 1; i >= 0; i-- {
		dirs = append(dirs, dataDirs[i])
	}
	if dataHome != "" {
		dirs = append(dirs, dataHome)
	}

	// a directory listed twice keeps its most important position
	last := make(map[string]int, len(dirs))
	for i, dir := range dirs {
		last[filepath.Clean(dir)] = i
	}

	var files []string
	for i, dir := range dirs {
		dir = filepath.Clean(dir)
		if last[dir] != i {
			continue
		}

		files = append(files, dirFiles(filepath.Join(dir, "mime"))...)
	}
	return files
}

// dirFiles picks the globs2 file of a mime directory, then the legacy globs
// file, then the package sources in name order
func dirFiles(mimeDir string) []string {
	for _, name := range []string{FormatGlobs2.String(), FormatGlobs.String()} {
		path := filepath.Join(mimeDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return []string{path}
		}
	}

	packages, _ := filepath.Glob(filepath.Join(mimeDir, "packages", "*."+FormatXML.String()))
	return packages
}
