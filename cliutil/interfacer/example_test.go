package interfacer_test

import (
	"fmt"
	"os"

	"github.com/interfacer/interfacer/cliutil/interfacer"
)

type greetCategory struct{}

func (greetCategory) Name() string        { return "greet" }
func (greetCategory) Description() string { return "say things" }

func (greetCategory) SubCommands() []interfacer.SubCommand {
	return []interfacer.SubCommand{helloCommand{}}
}

type helloCommand struct {
	interfacer.Base
}

func (helloCommand) Name() string        { return "hello" }
func (helloCommand) Description() string { return "greet someone" }

func (helloCommand) Options() []interfacer.OptionSpec {
	return []interfacer.OptionSpec{
		interfacer.Option("-n", "--name", interfacer.OptionConfig{Default: "stranger", Help: "who to greet"}),
	}
}

func (helloCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	fmt.Fprintf(w.Stdout, "hello, %s\n", opts.String("name"))
	return 0
}

func Example() {
	r := interfacer.New("greeter", []interfacer.Category{greetCategory{}})
	r.Streams = interfacer.Streams{Stdout: os.Stdout, Stderr: os.Stdout}
	code := r.Run([]string{"greeter", "greet", "hello", "--name", "world"})
	fmt.Println("exit", code)
	// Output:
	// hello, world
	//
	// exit 0
}

func ExampleRouter_Run_listing() {
	r := interfacer.New("greeter", []interfacer.Category{greetCategory{}})
	r.Streams = interfacer.Streams{Stdout: os.Stdout, Stderr: os.Stdout}
	code := r.Run([]string{"greeter"})
	fmt.Println("exit", code)
	// Output:
	// usage: greeter <category> [subcommand] [--options]
	//
	//   choose a category for information about available commands:
	//                greet - say things
	//
	// exit 1
}
