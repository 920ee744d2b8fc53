package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mimeglob/cmd/mimeglob"
	"github.com/arthur-debert/mimeglob/pkg/ui/styles"
)

func main() {
	err := mimeglob.NewRootCmd().Execute()
	if err != nil && !mimeglob.Silent(err) {
		fmt.Fprintln(os.Stderr, styles.GetStyle("Error").Render("Error: "+err.Error()))
	}
	os.Exit(mimeglob.ExitCode(err))
}
