// Command fontinstall-manpage writes the fontinstall(1) man page to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/tbjgolden/install-custom-font/cmd/fontinstall"
	"github.com/tbjgolden/install-custom-font/internal/version"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "FONTINSTALL",
		Section: "1",
		Source:  version.String(),
		Manual:  "fontinstall manual",
	}

	if err := doc.GenMan(fontinstall.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
