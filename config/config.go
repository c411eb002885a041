// Package config resolves the settings of the command line front end
// from the environment.
//
// Settings are environment variables rather than flags because every
// command-line argument before the subcommand is a routing token.
package config

import (
	"fmt"
	"strconv"

	"github.com/Wessie/appdirs"
	"github.com/interfacer/interfacer/cliutil/flagx"
)

// AppName names the application in per-user and site-wide
// directories.
const AppName = "interfacer"

// Environment variables understood by Load.
const (
	EnvPluginDir  = "INTERFACER_PLUGIN_DIR"
	EnvDataDir    = "INTERFACER_DATA_DIR"
	EnvBoltPath   = "INTERFACER_BOLT_PATH"
	EnvDebug      = "INTERFACER_DEBUG"
	EnvCPUProfile = "INTERFACER_CPUPROFILE"
)

// DefaultBoltPath is the Bolt database of the bolt category, relative
// to the data directory.
const DefaultBoltPath = "interfacer.bolt"

// Config is the resolved configuration of one invocation.
type Config struct {
	// PluginDir is the directory of plugin manifests. Empty means
	// locate it, falling back to the built-in plugins.
	PluginDir string
	DataDir   flagx.AbsPath
	// BoltPath is relative to DataDir unless absolute.
	BoltPath   string
	Debug      bool
	CPUProfile string
}

// App returns the appdirs description of this application.
func App() *appdirs.App {
	return appdirs.New(AppName, "", "")
}

// DataDir returns the default per-user data directory.
func DataDir() string {
	return App().UserData()
}

// Load reads the configuration through lookup, which is normally
// os.LookupEnv.
func Load(lookup func(key string) (string, bool)) (*Config, error) {
	c := &Config{
		BoltPath: DefaultBoltPath,
	}

	dataDir := DataDir()
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		dataDir = v
	}
	// ensure absolute path, relative ones would move with the working
	// directory of the subcommand
	if err := c.DataDir.Set(dataDir); err != nil {
		return nil, fmt.Errorf("%s: %v", EnvDataDir, err)
	}

	if v, ok := lookup(EnvPluginDir); ok {
		c.PluginDir = v
	}
	if v, ok := lookup(EnvBoltPath); ok && v != "" {
		c.BoltPath = v
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", EnvDebug, err)
		}
		c.Debug = debug
	}
	if v, ok := lookup(EnvCPUProfile); ok {
		c.CPUProfile = v
	}
	return c, nil
}

// BoltFile returns the absolute path of the Bolt database.
func (c *Config) BoltFile() string {
	return c.DataDir.Join(c.BoltPath)
}
