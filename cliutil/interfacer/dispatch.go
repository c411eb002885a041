package interfacer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
)

// Dispatch parses the options of sub out of argv and runs it.
//
// argv is the full command line, program name included; argv[1] and
// argv[2] are the category and subcommand tokens and the rest is
// parsed against sub.Options(). A parse error is reported to
// w.Stderr together with the usage message and returns 1, as does a
// request for help. Otherwise the result of sub.Run is returned as
// is.
func Dispatch(w Streams, cat Category, sub SubCommand, argv []string) int {
	prog := ""
	if len(argv) > 0 {
		prog = filepath.Base(argv[0])
	}
	usage := fmt.Sprintf("%s %s %s [options]", prog, cat.Name(), sub.Name())
	if s, ok := sub.(SynopsisGetter); ok {
		if syn := s.GetSynopsis(); syn != "" {
			usage += " " + syn
		}
	}

	parser := newOptionParser(usage)
	for _, o := range sub.Options() {
		parser.add(o)
	}
	parser.addHelp()

	var rest []string
	if len(argv) > 3 {
		rest = argv[3:]
	}
	opts, args, err := parser.parse(rest)
	if err == pflag.ErrHelp {
		fmt.Fprint(w.Stdout, parser.usageText())
		return 1
	}
	if err != nil {
		fmt.Fprint(w.Stderr, parser.usageText())
		fmt.Fprintf(w.Stderr, "\n%s: error: %v\n", prog, err)
		return 1
	}
	return sub.Run(w, opts, args)
}
