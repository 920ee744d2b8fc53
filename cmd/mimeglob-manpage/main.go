// Command mimeglob-manpage writes the mimeglob man pages. With no argument
// the page for the root command goes to stdout; with a directory argument
// one page per command is written there.
package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mimeglob/cmd/mimeglob"
	"github.com/arthur-debert/mimeglob/internal/version"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := mimeglob.NewRootCmd()
	root.DisableAutoGenTag = true

	header := &doc.GenManHeader{
		Title:   "MIMEGLOB",
		Section: "1",
		Source:  "mimeglob " + version.Version,
		Manual:  "mimeglob manual",
	}

	var err error
	switch len(os.Args) {
	case 1:
		err = doc.GenMan(root, header, os.Stdout)
	case 2:
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(root, header, dir)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [DIR]\n", os.Args[0])
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
