package interfacer

import (
	"fmt"
	"strings"
)

// Router is the top-level entry point. It owns the categories of one
// invocation and routes the command line to them.
type Router struct {
	name       string
	categories []Category

	// Streams receive listings and diagnostics. New sets them to the
	// process standard output and error.
	Streams Streams

	// Debug, if set, is called with an event value at each routing
	// decision. The events are plain structs, suitable for logging as
	// JSON.
	Debug func(msg interface{})
}

// New returns a Router over categories. name is the program name used
// when the command line is empty. The categories are routed in the
// order given; callers normally pass them sorted by name.
func New(name string, categories []Category) *Router {
	return &Router{
		name:       name,
		categories: categories,
		Streams:    Std(),
	}
}

// Categories returns the categories of r, in routing order.
func (r *Router) Categories() []Category {
	return r.categories
}

// Run routes argv and returns the exit status. argv[0] is the
// invocation name shown in usage messages.
func (r *Router) Run(argv []string) int {
	app := r.name
	if len(argv) > 0 {
		app = argv[0]
	} else {
		argv = []string{app}
	}

	if len(argv) == 1 || isHelp(argv[1]) {
		return r.listCategories(app)
	}

	if len(r.categories) == 0 {
		fmt.Fprintf(r.Streams.Stderr, "error: no modules loaded\n")
		return 1
	}

	token := strings.ToLower(argv[1])
	for _, cat := range r.categories {
		if cat.Name() != token {
			continue
		}
		if r.Debug != nil {
			r.Debug(routeEvent{App: app, Category: cat.Name()})
		}
		if runner, ok := cat.(Runner); ok {
			return runner.Run(r.Streams, argv)
		}
		return runCategory(r.Streams, cat, argv, r.Debug)
	}

	if r.Debug != nil {
		r.Debug(routeEvent{App: app, Category: argv[1], NotFound: true})
	}
	fmt.Fprintf(r.Streams.Stderr, "error: category (%s) not found\n", argv[1])
	return 1
}

func isHelp(arg string) bool {
	switch arg {
	case "--help", "-h", "help":
		return true
	}
	return false
}

func (r *Router) listCategories(app string) int {
	w := r.Streams.Stdout
	fmt.Fprintln(w)
	fmt.Fprintf(w, "usage: %s <category> [subcommand] [--options]\n", app)
	fmt.Fprintln(w)

	if len(r.categories) == 0 {
		fmt.Fprintf(r.Streams.Stderr, "error: no modules loaded\n")
		return 1
	}

	fmt.Fprintln(w, "  choose a category for information about available commands:")
	for _, cat := range r.categories {
		writeEntry(w, cat.Name(), cat.Description())
	}
	fmt.Fprintln(w)
	return 1
}
