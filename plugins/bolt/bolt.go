// Package bolt is a plugin for inspecting and editing a Bolt
// key-value database.
//
// Keys and bucket names on the command line are quoted: fragments
// separated by colons are concatenated, and a fragment starting with
// @ is hex. Nested buckets are separated by slashes:
//
//     interfacer bolt put peers/@0001:name key <value
package bolt

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/config"
	"github.com/interfacer/interfacer/plugin"
)

// Category manages the connection to the database, for the
// subcommands below it.
type Category struct {
	// Path is the database file. If empty, Setup uses the one named
	// by the configuration.
	Path string
	// Stdin is read by put. Defaults to os.Stdin.
	Stdin io.Reader

	config *config.Config
	db     *bolt.DB
}

var _ interfacer.Service = (*Category)(nil)
var _ plugin.Configurable = (*Category)(nil)

func (c *Category) Name() string        { return "bolt" }
func (c *Category) Description() string { return "Bolt key-value manipulation" }

func (c *Category) SubCommands() []interfacer.SubCommand {
	return []interfacer.SubCommand{
		newBucketsCommand(c),
		newListCommand(c),
		newGetCommand(c),
		newPutCommand(c),
	}
}

// Configure sets the configuration the database path is taken from.
func (c *Category) Configure(cfg *config.Config) {
	c.config = cfg
}

func (c *Category) path() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	if c.config == nil {
		return "", errors.New("no database path configured")
	}
	return c.config.BoltFile(), nil
}

func (c *Category) Setup() (ok bool) {
	path, err := c.path()
	if err != nil {
		log.Printf("cannot open database: %v", err)
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		log.Printf("cannot create database directory: %v", err)
		return false
	}
	c.db, err = bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		log.Printf("cannot open database: %v", err)
		return false
	}
	return true
}

func (c *Category) Teardown() (ok bool) {
	if c.db == nil {
		return true
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		log.Printf("closing database: %v", err)
		return false
	}
	return true
}

func (c *Category) stdin() io.Reader {
	if c.Stdin != nil {
		return c.Stdin
	}
	return os.Stdin
}

// New returns a bolt category using the configured database.
func New() interfacer.Category {
	return &Category{}
}

func init() {
	plugin.Register("bolt", New)
}
