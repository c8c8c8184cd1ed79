// Package buildinfo exposes version metadata injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/skicka/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Commit  = "N/A"
	Date    = "N/A"
)

// PrintBuildData writes the banner and build metadata to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintln(w, `   _____ _    _      _         `)
	fmt.Fprintln(w, `  / ____| |  (_)    | |        `)
	fmt.Fprintln(w, ` | (___ | | ___  ___| | ____ _ `)
	fmt.Fprintln(w, `  \___ \| |/ / |/ __| |/ / _`+"`"+` |`)
	fmt.Fprintln(w, `  ____) |   <| | (__|   < (_| |`)
	fmt.Fprintln(w, ` |_____/|_|\_\_|\___|_|\_\__,_|`)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
