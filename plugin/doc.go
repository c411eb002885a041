// Package plugin discovers the categories a Router dispatches to.
//
// Plugins are Go packages that register a Factory from init(), the
// same way commands register themselves on a subcommand shell. The
// binary imports the plugin packages it ships for their side effects
// (see plugins.gen.go at the top of the repository).
//
// Which of the registered plugins a given installation exposes is
// decided by a directory of manifests, one file per plugin, named
// NAME.plugin and written in protocol buffer text format:
//
//     # ssh.plugin
//     factory: "ssh"
//
// Files whose name starts with an underscore are skipped, as are
// manifests with "disabled: true". Manifests only name factories, no
// code is loaded from the directory.
package plugin
