// Test Type: Unit Test
// Description: Tests for the glob registry and its three lookup phases

package glob_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, globs []glob.Glob, opts ...glob.Option) *glob.Registry {
	t.Helper()
	r := glob.NewRegistry(opts...)
	require.NoError(t, r.AddGlobs(globs))
	return r
}

func weighted(pattern, mimeType string, weight int) glob.Glob {
	return glob.Glob{Pattern: pattern, MimeType: mimeType, Weight: weight}
}

func TestRegistryWeightPrecedence(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		weighted("*.txt", "B", 20),
		weighted("*.txt", "A", 80),
	})

	result := r.MatchingGlobs("notes.txt")
	assert.Equal(t, []string{"A"}, result.Winners())
	assert.Equal(t, []string{"A", "B"}, result.AllMatches())
}

func TestRegistrySpecificityTieBreak(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.bz2", "application/x-bzip2"),
		glob.NewGlob("*.tar.bz2", "application/x-bzip2-compressed-tar"),
	})

	result := r.MatchingGlobs("archive.tar.bz2")
	assert.Equal(t, []string{"application/x-bzip2-compressed-tar"}, result.Winners())
	assert.Equal(t, []string{"application/x-bzip2-compressed-tar", "application/x-bzip2"}, result.AllMatches())
	assert.Equal(t, "tar.bz2", result.Suffix("archive.tar.bz2"))

	plain := r.MatchingGlobs("archive.bz2")
	assert.Equal(t, []string{"application/x-bzip2"}, plain.Winners())
	assert.Equal(t, "bz2", plain.Suffix("archive.bz2"))
}

func TestRegistryHighWeightBeatsIndexedExtension(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.gz", "application/gzip"),
		weighted("*.tar.*", "application/x-tarball", 60),
	})

	result := r.MatchingGlobs("x.tar.gz")
	assert.Equal(t, []string{"application/x-tarball"}, result.Winners())
	assert.Equal(t, []string{"application/x-tarball", "application/gzip"}, result.AllMatches())
	assert.Equal(t, 0, result.KnownSuffixLength())
}

func TestRegistryIdempotentQueries(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.bz2", "application/x-bzip2"),
		glob.NewGlob("*.tar.bz2", "application/x-bzip2-compressed-tar"),
		weighted("*.tar.*", "application/x-tarball", 60),
		weighted("archive*", "application/x-archive", 30),
	})

	first := r.MatchingGlobs("archive.tar.bz2")
	second := r.MatchingGlobs("archive.tar.bz2")
	assert.Equal(t, first.Winners(), second.Winners())
	assert.Equal(t, first.AllMatches(), second.AllMatches())
}

func TestRegistryFastIndexIsTransparent(t *testing.T) {
	globs := []glob.Glob{
		glob.NewGlob("*.gz", "application/gzip"),
		glob.NewGlob("*.GZ", "application/x-gzip"),
		glob.NewGlob("*.txt", "text/plain"),
		glob.NewGlob("*.TXT", "text/x-upper"),
		glob.NewGlob("*.txt", "text/plain"),
		glob.NewGlob("*.c", "text/x-csrc"),
		glob.NewGlob("*.C", "text/x-c++src"),
		glob.NewGlob("*.tgz", "application/x-compressed-tar"),
		glob.NewGlob("*.é", "text/x-accent"),
	}
	filenames := []string{
		"a.gz", "A.GZ", "a.tar.gz", "txt", ".txt", "x.TXT", "main.c",
		"MAIN.C", "noext", "a.txt.gz", "a.", "", "x.tgz", "a.É",
	}

	indexed := newRegistry(t, globs)
	scanned := newRegistry(t, globs, glob.WithoutFastIndex())

	for _, name := range filenames {
		t.Run(name, func(t *testing.T) {
			want := scanned.MatchingGlobs(name)
			got := indexed.MatchingGlobs(name)
			assert.Equal(t, want.Winners(), got.Winners())
			assert.Equal(t, want.AllMatches(), got.AllMatches())
			assert.Equal(t, want.KnownSuffixLength(), got.KnownSuffixLength())
		})
	}
}

func TestRegistryFastIndexKeepsPhaseOrder(t *testing.T) {
	tests := []struct {
		name     string
		globs    []glob.Glob
		filename string
		winners  []string
		all      []string
	}{
		{
			name: "prefix registered before extension",
			globs: []glob.Glob{
				glob.NewGlob("notes*", "text/x-notes"),
				glob.NewGlob("*.txt", "text/plain"),
			},
			filename: "notes.txt",
			winners:  []string{"text/plain"},
			all:      []string{"text/plain"},
		},
		{
			name: "literal registered before extension",
			globs: []glob.Glob{
				glob.NewGlob("readme.txt", "text/x-readme"),
				glob.NewGlob("*.txt", "text/plain"),
			},
			filename: "README.txt",
			winners:  []string{"text/plain"},
			all:      []string{"text/plain"},
		},
		{
			name: "high weight still first",
			globs: []glob.Glob{
				glob.NewGlob("*.txt", "text/plain"),
				weighted("notes*", "text/x-notes", 70),
			},
			filename: "notes.txt",
			winners:  []string{"text/x-notes"},
			all:      []string{"text/x-notes", "text/plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, enabled := range []bool{true, false} {
				r := newRegistry(t, tt.globs, glob.WithFastIndex(enabled))
				result := r.MatchingGlobs(tt.filename)
				assert.Equal(t, tt.winners, result.Winners(), "fast index %v", enabled)
				assert.Equal(t, tt.all, result.AllMatches(), "fast index %v", enabled)
			}
		})
	}
}

func TestRegistryRemoveMimeTypeWithoutFastIndex(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.gz", "application/gzip"),
		glob.NewGlob("*.tar.gz", "application/x-compressed-tar"),
	}, glob.WithoutFastIndex())

	r.RemoveMimeType("application/gzip")

	assert.True(t, r.MatchingGlobs("a.gz").Empty())
	assert.Equal(t, []string{"application/x-compressed-tar"}, r.MatchingGlobs("a.tar.gz").AllMatches())
}

func TestRegistryInvalidUTF8IsNotFolded(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		r := newRegistry(t, []glob.Glob{
			glob.NewGlob("*.\xff", "application/x-ff"),
			glob.NewGlob("data\xfe*", "application/x-fe"),
		}, glob.WithFastIndex(enabled))

		assert.Equal(t, []string{"application/x-ff"}, r.MatchingGlobs("a.\xff").Winners(), "fast index %v", enabled)
		assert.True(t, r.MatchingGlobs("a.\xfe").Empty(), "fast index %v", enabled)
		assert.Equal(t, []string{"application/x-fe"}, r.MatchingGlobs("DATA\xfe.bin").Winners(), "fast index %v", enabled)
		assert.True(t, r.MatchingGlobs("data\xff.bin").Empty(), "fast index %v", enabled)
	}
}

func TestRegistryLogsOnlyWhenAsked(t *testing.T) {
	level := zerolog.GlobalLevel()
	global := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = global
	})
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var globalBuf bytes.Buffer
	log.Logger = zerolog.New(&globalBuf).Level(zerolog.TraceLevel)

	quiet := newRegistry(t, []glob.Glob{glob.NewGlob("*.txt", "text/plain")})
	quiet.MatchingGlobs("a.txt")
	assert.Empty(t, globalBuf.String())

	var buf bytes.Buffer
	loud := newRegistry(t, []glob.Glob{glob.NewGlob("*.txt", "text/plain")},
		glob.WithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)))
	loud.MatchingGlobs("a.txt")
	assert.Contains(t, buf.String(), "Matched file name")
	assert.Empty(t, globalBuf.String())
}

func TestRegistryCaseSensitivity(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		{Pattern: "README", MimeType: "text/x-readme", Weight: 50, CaseSensitive: true},
		glob.NewGlob("*.TXT", "text/plain"),
	})

	assert.True(t, r.MatchingGlobs("readme").Empty())
	assert.Equal(t, []string{"text/x-readme"}, r.MatchingGlobs("README").Winners())
	assert.Equal(t, []string{"text/plain"}, r.MatchingGlobs("file.txt").Winners())
}

func TestRegistryDeduplicatesMimeTypes(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.txt", "text/plain"),
		glob.NewGlob("notes*", "text/plain"),
		weighted("notes.txt", "text/plain", 70),
	})

	result := r.MatchingGlobs("notes.txt")
	assert.Equal(t, []string{"text/plain"}, result.Winners())
	assert.Equal(t, []string{"text/plain"}, result.AllMatches())
}

// A MIME type keeps the position of its first hit within a scan, even when
// a later pattern for it is heavier.
func TestRegistryFirstSightIsFinal(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		weighted("*.foo", "A", 30),
		weighted("*.foo", "B", 40),
		weighted("*.foo", "A", 45),
	})

	result := r.MatchingGlobs("x.foo")
	assert.Equal(t, []string{"B"}, result.Winners())
	assert.Equal(t, []string{"B", "A"}, result.AllMatches())
}

func TestRegistryRejectsInvalidGlobs(t *testing.T) {
	tests := []struct {
		name string
		glob glob.Glob
		code errors.ErrorCode
	}{
		{"empty pattern", glob.NewGlob("", "text/plain"), errors.ErrEmptyPattern},
		{"empty mime type", glob.NewGlob("*.txt", ""), errors.ErrInvalidInput},
		{"weight too high", weighted("*.txt", "text/plain", 101), errors.ErrInvalidWeight},
		{"weight too low", weighted("*.txt", "text/plain", -5), errors.ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := glob.NewRegistry()
			err := r.AddGlob(tt.glob)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestRegistryAddGlobsStopsAtFirstError(t *testing.T) {
	r := glob.NewRegistry()
	err := r.AddGlobs([]glob.Glob{
		glob.NewGlob("*.txt", "text/plain"),
		glob.NewGlob("", "text/plain"),
		glob.NewGlob("*.md", "text/markdown"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyPattern), "got %v", err)
	assert.Equal(t, 1, errors.GetErrorDetails(err)["index"])
	assert.Equal(t, 1, r.Len())
}

func TestRegistryBrokenGenericIsIsolated(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.[ch", "text/x-broken"),
		glob.NewGlob("*.c", "text/x-csrc"),
		weighted("*.[ch", "text/x-broken-heavy", 90),
	})

	assert.Equal(t, 3, r.Len())
	result := r.MatchingGlobs("main.c")
	assert.Equal(t, []string{"text/x-csrc"}, result.Winners())
	assert.Equal(t, []string{"text/x-csrc"}, result.AllMatches())
}

func TestRegistryRemoveMimeType(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.gz", "application/gzip"),
		weighted("*.tgz", "application/gzip", 60),
		glob.NewGlob("*.tar.gz", "application/x-compressed-tar"),
		weighted("gzip*", "application/gzip", 10),
	})

	r.RemoveMimeType("application/gzip")

	assert.True(t, r.MatchingGlobs("a.gz").Empty())
	assert.True(t, r.MatchingGlobs("a.tgz").Empty())
	assert.True(t, r.MatchingGlobs("gzip.log").Empty())
	assert.Equal(t, []string{"application/x-compressed-tar"}, r.MatchingGlobs("a.tar.gz").Winners())
	assert.Equal(t, []glob.Glob{glob.NewGlob("*.tar.gz", "application/x-compressed-tar")}, r.Globs())
	assert.Equal(t, []string{"application/x-compressed-tar"}, r.MimeTypes())

	t.Run("unknown mime type is a no-op", func(t *testing.T) {
		r.RemoveMimeType("application/unknown")
		assert.Equal(t, 1, r.Len())
	})

	t.Run("re-adding after removal", func(t *testing.T) {
		require.NoError(t, r.AddGlob(glob.NewGlob("*.gz", "application/gzip")))
		assert.Equal(t, []string{"application/gzip"}, r.MatchingGlobs("a.gz").Winners())
	})
}

func TestRegistryGlobsKeepRegistrationOrder(t *testing.T) {
	globs := []glob.Glob{
		weighted("*.tar.*", "application/x-tarball", 60),
		glob.NewGlob("*.gz", "application/gzip"),
		glob.NewGlob("Makefile", "text/x-makefile"),
		weighted("*.gz", "application/x-gzip-heavy", 80),
	}
	r := newRegistry(t, globs)

	assert.Equal(t, globs, r.Globs())
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{
		"application/gzip",
		"application/x-gzip-heavy",
		"application/x-tarball",
		"text/x-makefile",
	}, r.MimeTypes())
}

func TestRegistryLegacyShapes(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("[0-9][0-9][0-9].vdr", "video/x-vdr"),
		glob.NewGlob("*.anim[1-9j]", "video/x-anim"),
	})

	assert.Equal(t, []string{"video/x-vdr"}, r.MatchingGlobs("007.vdr").Winners())
	assert.True(t, r.MatchingGlobs("07.vdr").Empty())
	assert.Equal(t, []string{"video/x-anim"}, r.MatchingGlobs("x.animj").Winners())
	assert.True(t, r.MatchingGlobs("x.anim0").Empty())
}

func TestRegistryLowWeightLiteralBelowIndexed(t *testing.T) {
	r := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.txt", "text/plain"),
		weighted("CMakeLists.txt", "text/x-cmake", 50),
	})

	// Same weight, and the literal has no suffix specificity, so the
	// indexed "*.txt" keeps the lead and the literal is dropped.
	result := r.MatchingGlobs("CMakeLists.txt")
	assert.Equal(t, []string{"text/plain"}, result.Winners())
	assert.Equal(t, []string{"text/plain"}, result.AllMatches())

	heavy := newRegistry(t, []glob.Glob{
		glob.NewGlob("*.txt", "text/plain"),
		weighted("CMakeLists.txt", "text/x-cmake", 55),
	})
	result = heavy.MatchingGlobs("CMakeLists.txt")
	assert.Equal(t, []string{"text/x-cmake"}, result.Winners())
	assert.Equal(t, []string{"text/x-cmake", "text/plain"}, result.AllMatches())
}
