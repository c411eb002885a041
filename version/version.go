// Package version holds the release version of interfacer.
package version

// Version is set at build time, see task/build.go.
var Version = "(devel)"
