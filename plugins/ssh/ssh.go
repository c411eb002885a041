// Package ssh is a demo plugin grouping commands that deal with ssh
// keys, plus the classic tribble listing.
package ssh

import (
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/plugin"
)

type sshCategory struct{}

func (sshCategory) Name() string        { return "ssh" }
func (sshCategory) Description() string { return "does things with ssh" }

func (sshCategory) SubCommands() []interfacer.SubCommand {
	return []interfacer.SubCommand{
		&listCommand{},
		&keygenCommand{},
		newFingerprintCommand(),
	}
}

// New returns the ssh category.
func New() interfacer.Category {
	return sshCategory{}
}

func init() {
	plugin.Register("ssh", New)
}
