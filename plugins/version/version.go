// Package version is a plugin that prints the version of the program.
//
// It handles the whole command line itself, so `interfacer version`
// prints the version instead of a subcommand listing.
package version

import (
	"fmt"

	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/plugin"
	v "github.com/interfacer/interfacer/version"
)

type versionCategory struct{}

var _ interfacer.Runner = versionCategory{}

func (versionCategory) Name() string        { return "version" }
func (versionCategory) Description() string { return "show version number" }

func (versionCategory) SubCommands() []interfacer.SubCommand {
	return nil
}

func (versionCategory) Run(w interfacer.Streams, argv []string) int {
	if len(argv) > 2 {
		fmt.Fprintf(w.Stderr, "error: version takes no arguments\n")
		return 1
	}
	fmt.Fprintln(w.Stdout, v.Version)
	return 0
}

// New returns the version category.
func New() interfacer.Category {
	return versionCategory{}
}

func init() {
	plugin.Register("version", New)
}
