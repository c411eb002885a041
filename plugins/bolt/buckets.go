package bolt

import (
	"bytes"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/cliutil/positional"
)

type bucketsArgs struct {
	positional.Optional
	Bucket *string `positional:"metavar=BUCKET[/BUCKET..]"`
}

type bucketsCommand struct {
	interfacer.Base
	interfacer.Synopsis
	cat *Category
}

func newBucketsCommand(cat *Category) *bucketsCommand {
	return &bucketsCommand{
		Synopsis: interfacer.Synopsis(positional.Usage(bucketsArgs{})),
		cat:      cat,
	}
}

func (*bucketsCommand) Name() string        { return "buckets" }
func (*bucketsCommand) Description() string { return "list buckets in the database" }

func (*bucketsCommand) Options() []interfacer.OptionSpec {
	return []interfacer.OptionSpec{
		interfacer.Option("-p", "--prefix", interfacer.OptionConfig{
			Help: "only list buckets starting with this quoted prefix",
		}),
	}
}

func (c *bucketsCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	var arguments bucketsArgs
	if err := positional.Parse(&arguments, args); err != nil {
		return opts.Usagef(w, "%v", err)
	}
	var buckets [][]byte
	if arguments.Bucket != nil {
		var err error
		buckets, err = SplitBuckets(*arguments.Bucket)
		if err != nil {
			return opts.Usagef(w, "%v", err)
		}
	}
	var prefix []byte
	if opts.IsSet("prefix") {
		var err error
		prefix, err = DecodeKey(opts.String("prefix"))
		if err != nil {
			return opts.Usagef(w, "%v", err)
		}
	}

	err := c.cat.db.View(func(tx *bolt.Tx) error {
		var cur *bolt.Cursor
		if buckets == nil {
			cur = tx.Cursor()
		} else {
			bucket, err := LookupBucket(tx, buckets, false)
			if err != nil {
				return err
			}
			cur = bucket.Cursor()
		}
		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			if v != nil {
				// not a bucket
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
