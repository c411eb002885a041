package interfacer_test

import (
	"bytes"

	"github.com/interfacer/interfacer/cliutil/interfacer"
)

type testCategory struct {
	name string
	desc string
	subs []interfacer.SubCommand
}

var _ interfacer.Category = (*testCategory)(nil)

func (c *testCategory) Name() string                          { return c.name }
func (c *testCategory) Description() string                   { return c.desc }
func (c *testCategory) SubCommands() []interfacer.SubCommand { return c.subs }

// testSub records what it was run with.
type testSub struct {
	interfacer.Base
	name    string
	desc    string
	options []interfacer.OptionSpec
	code    int

	calls int
	opts  *interfacer.Options
	args  []string
}

var _ interfacer.SubCommand = (*testSub)(nil)

func (s *testSub) Name() string                       { return s.name }
func (s *testSub) Description() string                { return s.desc }
func (s *testSub) Options() []interfacer.OptionSpec { return s.options }

func (s *testSub) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	s.calls++
	s.opts = opts
	s.args = args
	return s.code
}

type output struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (o *output) streams() interfacer.Streams {
	return interfacer.Streams{Stdout: &o.stdout, Stderr: &o.stderr}
}

func newRouter(out *output, categories ...interfacer.Category) *interfacer.Router {
	r := interfacer.New("prog", categories)
	r.Streams = out.streams()
	return r
}
