package bolt

import (
	"fmt"
	"io/ioutil"

	"github.com/boltdb/bolt"
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/cliutil/positional"
)

type putCommand struct {
	interfacer.Base
	interfacer.Synopsis
	cat *Category
}

func newPutCommand(cat *Category) *putCommand {
	return &putCommand{
		Synopsis: interfacer.Synopsis(positional.Usage(keyArgs{}) + " <FILE"),
		cat:      cat,
	}
}

func (*putCommand) Name() string        { return "put" }
func (*putCommand) Description() string { return "put a value into the database" }

func (*putCommand) Options() []interfacer.OptionSpec {
	return []interfacer.OptionSpec{
		interfacer.Option("-c", "--create", interfacer.OptionConfig{
			Action: interfacer.StoreTrue,
			Help:   "create missing buckets",
		}),
	}
}

func (c *putCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	var arguments keyArgs
	if err := positional.Parse(&arguments, args); err != nil {
		return opts.Usagef(w, "%v", err)
	}
	buckets, key, err := arguments.decode()
	if err != nil {
		return opts.Usagef(w, "%v", err)
	}

	val, err := ioutil.ReadAll(c.cat.stdin())
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: reading value: %v\n", err)
		return 1
	}

	create := opts.Bool("create")
	err = c.cat.db.Update(func(tx *bolt.Tx) error {
		bucket, err := LookupBucket(tx, buckets, create)
		if err != nil {
			return err
		}
		return bucket.Put(key, val)
	})
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
