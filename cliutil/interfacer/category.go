package interfacer

import (
	"fmt"
	"io"
)

// RunCategory routes argv to one of the subcommands of cat. It is what
// the Router does for every Category that does not implement Runner;
// a Runner may call it to fall back to the default routing.
func RunCategory(w Streams, cat Category, argv []string) int {
	return runCategory(w, cat, argv, nil)
}

func runCategory(w Streams, cat Category, argv []string, debug func(interface{})) int {
	subs := cat.SubCommands()

	if len(argv) <= 2 || argv[2] == "-h" || argv[2] == "--help" {
		listSubCommands(w.Stdout, cat, argv)
		return 1
	}

	token := argv[2]
	var matched []SubCommand
	for _, sub := range subs {
		// unlike categories, subcommands match case-sensitively
		if sub.Name() == token {
			matched = append(matched, sub)
		}
	}
	if debug != nil {
		debug(subCommandEvent{Category: cat.Name(), Token: token, Matches: len(matched)})
	}

	switch len(matched) {
	case 1:
		fmt.Fprintln(w.Stdout)
		code := serve(w, cat, matched[0], argv)
		fmt.Fprintln(w.Stdout)
		if debug != nil {
			debug(exitEvent{Category: cat.Name(), SubCommand: token, Code: code})
		}
		return code
	case 0:
		fmt.Fprintf(w.Stderr, "error: subcommand (%s) not found\n\n", token)
	default:
		fmt.Fprintf(w.Stderr, "error: multiple commands respond to (%s)\n\n", token)
	}
	return 1
}

// serve dispatches to sub inside the Service lifetime of cat, if it
// has one.
func serve(w Streams, cat Category, sub SubCommand, argv []string) (code int) {
	svc, ok := cat.(Service)
	if !ok {
		return Dispatch(w, cat, sub, argv)
	}
	if !svc.Setup() {
		return 1
	}
	defer func() {
		// teardown failures can cause non-successful exit
		if !svc.Teardown() && code == 0 {
			code = 1
		}
	}()
	return Dispatch(w, cat, sub, argv)
}

func listSubCommands(w io.Writer, cat Category, argv []string) {
	app := ""
	if len(argv) > 0 {
		app = argv[0]
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "usage: %s %s <subcommand> [--options]\n", app, cat.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  choose a subcommand:")
	fmt.Fprintln(w)
	for _, sub := range cat.SubCommands() {
		writeEntry(w, sub.Name(), sub.Description())
	}
	fmt.Fprintln(w)
}

// writeEntry writes one line of a category or subcommand listing.
func writeEntry(w io.Writer, name, desc string) {
	fmt.Fprintf(w, "%20s - %s\n", name, desc)
}
