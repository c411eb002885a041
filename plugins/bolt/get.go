package bolt

import (
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/cliutil/positional"
)

type keyArgs struct {
	Bucket string `positional:"metavar=BUCKET[/BUCKET..]"`
	Key    string
}

// decode parses the bucket path and key.
func (a *keyArgs) decode() ([][]byte, []byte, error) {
	buckets, err := SplitBuckets(a.Bucket)
	if err != nil {
		return nil, nil, err
	}
	key, err := DecodeKey(a.Key)
	if err != nil {
		return nil, nil, err
	}
	return buckets, key, nil
}

type getCommand struct {
	interfacer.Base
	interfacer.Synopsis
	cat *Category
}

func newGetCommand(cat *Category) *getCommand {
	return &getCommand{
		Synopsis: interfacer.Synopsis(positional.Usage(keyArgs{}) + " >FILE"),
		cat:      cat,
	}
}

func (*getCommand) Name() string        { return "get" }
func (*getCommand) Description() string { return "get a value from the database" }

func (c *getCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	var arguments keyArgs
	if err := positional.Parse(&arguments, args); err != nil {
		return opts.Usagef(w, "%v", err)
	}
	buckets, key, err := arguments.decode()
	if err != nil {
		return opts.Usagef(w, "%v", err)
	}

	var val []byte
	err = c.cat.db.View(func(tx *bolt.Tx) error {
		bucket, err := LookupBucket(tx, buckets, false)
		if err != nil {
			return err
		}
		// only valid inside the transaction
		if v := bucket.Get(key); v != nil {
			val = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: %v\n", err)
		return 1
	}
	if val == nil {
		fmt.Fprintf(w.Stderr, "error: database key not found: %s\n", EncodeKey(key))
		return 1
	}
	if _, err := w.Stdout.Write(val); err != nil {
		fmt.Fprintf(w.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
