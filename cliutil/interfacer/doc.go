// Package interfacer is a two-level command-line dispatch framework.
//
// A Router selects a Category by the first argument, and the Category
// selects one of its SubCommands by the second. The subcommand's
// options are declared as a list of OptionSpec values and parsed by
// the framework before the subcommand runs, so plugins never see raw
// flags.
//
//     prog CATEGORY SUBCOMMAND [--options] [ARGS..]
//
// Required capabilities are interface methods. Optional ones are
// detected with type assertions:
//
//     - Runner: a Category that handles its own arguments, skipping
//       the subcommand layer
//     - Service: a Category that sets up and tears down state around
//       the subcommand it dispatches to
//     - SynopsisGetter: a SubCommand that describes its positional
//       arguments in the usage line
//
// Every dispatch level reports its outcome as a process exit code.
// Help output and all failures detected by the framework return 1.
package interfacer
