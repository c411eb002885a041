package bolt

import (
	"bytes"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/cliutil/positional"
)

type listArgs struct {
	Bucket string `positional:"metavar=BUCKET[/BUCKET..]"`
}

type listCommand struct {
	interfacer.Base
	interfacer.Synopsis
	cat *Category
}

func newListCommand(cat *Category) *listCommand {
	return &listCommand{
		Synopsis: interfacer.Synopsis(positional.Usage(listArgs{})),
		cat:      cat,
	}
}

func (*listCommand) Name() string        { return "list" }
func (*listCommand) Description() string { return "list keys in the database" }

func (*listCommand) Options() []interfacer.OptionSpec {
	return []interfacer.OptionSpec{
		interfacer.Option("-p", "--prefix", interfacer.OptionConfig{
			Help: "only list keys starting with this quoted prefix",
		}),
	}
}

func (c *listCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	var arguments listArgs
	if err := positional.Parse(&arguments, args); err != nil {
		return opts.Usagef(w, "%v", err)
	}
	buckets, err := SplitBuckets(arguments.Bucket)
	if err != nil {
		return opts.Usagef(w, "%v", err)
	}
	var prefix []byte
	if opts.IsSet("prefix") {
		prefix, err = DecodeKey(opts.String("prefix"))
		if err != nil {
			return opts.Usagef(w, "%v", err)
		}
	}

	err = c.cat.db.View(func(tx *bolt.Tx) error {
		bucket, err := LookupBucket(tx, buckets, false)
		if err != nil {
			return err
		}
		cur := bucket.Cursor()
		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			if v == nil {
				// skip buckets
				continue
			}
			if _, err := fmt.Fprintln(w.Stdout, EncodeKey(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
