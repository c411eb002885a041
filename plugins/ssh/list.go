package ssh

import (
	"fmt"
	"strings"

	"github.com/interfacer/interfacer/cliutil/interfacer"
)

var tribbles = []string{"xyork", "slorg", "rooster", "blinky", "poorboy", "willy"}

type listCommand struct {
	interfacer.Base
}

func (*listCommand) Name() string        { return "list" }
func (*listCommand) Description() string { return "list the tribbles" }

func (*listCommand) Options() []interfacer.OptionSpec {
	return []interfacer.OptionSpec{
		interfacer.Option("-n", "--name", interfacer.OptionConfig{
			Dest: "name",
			Help: "list tribbles only with this name",
		}),
	}
}

func (*listCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	if len(args) > 0 {
		return opts.Usagef(w, "too many arguments")
	}
	if !opts.IsSet("name") {
		for _, x := range tribbles {
			fmt.Fprintln(w.Stdout, x)
		}
		return 0
	}

	name := opts.String("name")
	needle := strings.ToLower(name)
	found := false
	for _, x := range tribbles {
		if strings.Contains(x, needle) {
			found = true
			fmt.Fprintln(w.Stdout, x)
		}
	}
	if !found {
		fmt.Fprintf(w.Stderr, "error: tribble (%s) not found\n", name)
		return 1
	}
	return 0
}
