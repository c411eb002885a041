package cli

import (
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/config"
	"github.com/interfacer/interfacer/plugin"
	"github.com/tv42/jog"
)

// PluginSet is the name of the plugin manifest directory looked up
// with plugin.Locate when no directory is configured.
const PluginSet = "interfacer-plugins"

type app struct {
	config *config.Config
	log    *log.Logger
}

var _ = interfacer.Service(&app{})

func (a *app) Setup() (ok bool) {
	if a.config.CPUProfile != "" {
		f, err := os.Create(a.config.CPUProfile)
		if err != nil {
			a.log.Printf("cpu profiling: %v", err)
			return false
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			a.log.Printf("cpu profiling: %v", err)
			return false
		}
	}
	return true
}

func (a *app) Teardown() (ok bool) {
	if a.config.CPUProfile != "" {
		pprof.StopCPUProfile()
	}
	return true
}

// categories loads the plugins: from the configured directory if any,
// else from a located plugin set, else every built-in plugin. The
// loaded plugins get the configuration of the invocation.
func (a *app) categories() ([]interfacer.Category, error) {
	var cats []interfacer.Category
	var err error
	if dir := a.config.PluginDir; dir != "" {
		cats, err = plugin.Discover(dir)
	} else if dir, ok := plugin.Locate(PluginSet, a.config.DataDir.String()); ok {
		cats, err = plugin.Discover(dir)
	} else {
		cats = plugin.Builtin()
	}
	if err != nil {
		return nil, err
	}
	plugin.Configure(cats, a.config)
	return cats, nil
}

// Run executes one command line with configuration read through
// lookup, and returns the exit status. Diagnostics of the front end
// go to w.Stderr, with the prefix of the standard logger.
func Run(argv []string, lookup func(key string) (string, bool), w interfacer.Streams) (exitstatus int) {
	logger := log.New(w.Stderr, log.Prefix(), log.Flags())

	cfg, err := config.Load(lookup)
	if err != nil {
		logger.Printf("config: %v", err)
		return 1
	}
	a := &app{config: cfg, log: logger}

	cats, err := a.categories()
	if err != nil {
		logger.Printf("loading plugins: %v", err)
		return 1
	}

	r := interfacer.New(config.AppName, cats)
	r.Streams = w
	if cfg.Debug {
		log := jog.New(nil)
		r.Debug = log.Event
	}

	if !a.Setup() {
		return 1
	}
	defer func() {
		// teardown failures can cause non-successful exit
		if !a.Teardown() && exitstatus == 0 {
			exitstatus = 1
		}
	}()
	return r.Run(argv)
}

// Main is primary entry point into the interfacer command line
// application.
func Main() (exitstatus int) {
	progName := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(progName + ": ")

	return Run(os.Args, os.LookupEnv, interfacer.Std())
}
