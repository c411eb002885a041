package plugin_test

import (
	"testing"

	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/config"
	"github.com/interfacer/interfacer/plugin"
)

type configurableCategory struct {
	stubCategory
	cfg *config.Config
}

func (c *configurableCategory) Configure(cfg *config.Config) {
	c.cfg = cfg
}

func TestConfigure(t *testing.T) {
	cfg := &config.Config{BoltPath: "x.bolt"}
	c := &configurableCategory{stubCategory: stubCategory{name: "c"}}
	cats := []interfacer.Category{&stubCategory{name: "plain"}, c}
	plugin.Configure(cats, cfg)
	if c.cfg != cfg {
		t.Errorf("configuration not handed down: %v", c.cfg)
	}
}
