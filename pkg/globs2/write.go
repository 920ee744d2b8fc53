package globs2

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
)

const header = "# This file was automatically generated by mimeglob.\n"

// Write renders globs in the globs2 format, in the given order
func Write(w io.Writer, globs []glob.Glob) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(header); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write globs2 header")
	}

	for _, g := range globs {
		line := strconv.Itoa(g.Weight) + ":" + g.MimeType + ":" + g.Pattern
		if g.CaseSensitive {
			line += ":" + caseSensitiveFlag
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to write globs2 record")
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to flush globs2 output")
	}
	return nil
}
