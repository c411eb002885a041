package interfacer

import (
	"io"
	"os"
)

// Category is a named group of subcommands, selected by the first
// command-line argument.
type Category interface {
	// Name is matched against the lowercased first argument.
	Name() string
	Description() string
	SubCommands() []SubCommand
}

// SubCommand is a leaf command inside a Category.
//
// Embed Base to get placeholder Name and Description and an empty
// option list. Run has no default.
type SubCommand interface {
	Name() string
	Description() string

	// Options declares the flags Dispatch parses before calling Run.
	Options() []OptionSpec

	// Run executes the command with the parsed options and the
	// remaining positional arguments. The returned integer is the
	// exit status.
	Run(w Streams, opts *Options, args []string) int
}

// Runner is implemented by categories that want the full argument
// list instead of the default subcommand routing. argv is the same
// slice the Router was given.
type Runner interface {
	Run(w Streams, argv []string) int
}

// Service is an interface that categories can implement to set up and
// tear down state for the subcommand being dispatched.
//
// As with the exit code of the subcommand, Setup and Teardown only
// get to signal a boolean success. Any detail should be exposed via
// log.
type Service interface {
	Setup() (ok bool)
	Teardown() (ok bool)
}

// SynopsisGetter is used to describe the positional arguments of a
// subcommand. The synopsis is appended to its usage line.
//
// The typical way to implement this is to embed Synopsis in the
// command struct.
type SynopsisGetter interface {
	GetSynopsis() string
}

// Synopsis contains a short summary of the positional arguments that
// can be passed in.
type Synopsis string

var _ SynopsisGetter = Synopsis("")

// GetSynopsis returns the synopsis. See SynopsisGetter.
func (s Synopsis) GetSynopsis() string {
	return string(s)
}

// Streams are the output destinations of one invocation.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Std returns the process standard output and standard error.
func Std() Streams {
	return Streams{Stdout: os.Stdout, Stderr: os.Stderr}
}

const (
	placeholderName        = "generic_subcommand_you_should_override_this"
	placeholderDescription = "generic description, you should override this"
)

// Base provides defaults for the optional parts of SubCommand. A
// subcommand that forgets to override Name or Description still
// works, it just shows up with a placeholder label.
type Base struct{}

// Name returns a placeholder.
func (Base) Name() string { return placeholderName }

// Description returns a placeholder.
func (Base) Description() string { return placeholderDescription }

// Options returns no options.
func (Base) Options() []OptionSpec { return nil }
