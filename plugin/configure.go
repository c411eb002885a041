package plugin

import (
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/config"
)

// Configurable is implemented by categories that need the resolved
// configuration of the invocation.
type Configurable interface {
	Configure(cfg *config.Config)
}

// Configure hands cfg to every category implementing Configurable.
func Configure(cats []interfacer.Category, cfg *config.Config) {
	for _, cat := range cats {
		if c, ok := cat.(Configurable); ok {
			c.Configure(cfg)
		}
	}
}
