package plugin_test

import (
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/plugin"
)

type stubCategory struct {
	name string
}

func (c *stubCategory) Name() string                          { return c.name }
func (c *stubCategory) Description() string                   { return "stub " + c.name }
func (c *stubCategory) SubCommands() []interfacer.SubCommand { return nil }

func stub(name string) plugin.Factory {
	return func() interfacer.Category {
		return &stubCategory{name: name}
	}
}

func names(cats []interfacer.Category) []string {
	l := make([]string, len(cats))
	for i, c := range cats {
		l[i] = c.Name()
	}
	return l
}

func newRegistry() *plugin.Registry {
	r := &plugin.Registry{}
	r.Register("ssh", stub("ssh"))
	r.Register("bolt", stub("bolt"))
	r.Register("version", stub("version"))
	// registered name and category name need not agree
	r.Register("zeta", stub("alpha"))
	return r
}
