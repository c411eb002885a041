package bolt

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/boltdb/bolt"
)

const FragSeparator = ':'
const PathSeparator = '/'

// ErrBucketNotFound is returned when a bucket path does not resolve.
type ErrBucketNotFound struct {
	Path [][]byte
}

func (e *ErrBucketNotFound) Error() string {
	quoted := make([]string, len(e.Path))
	for i, b := range e.Path {
		quoted[i] = EncodeKey(b)
	}
	return "bucket not found: " + strings.Join(quoted, string(PathSeparator))
}

// SplitBuckets decodes a slash-separated path of quoted bucket names.
func SplitBuckets(quoted string) ([][]byte, error) {
	var result [][]byte
	for _, q := range strings.Split(quoted, string(PathSeparator)) {
		k, err := DecodeKey(q)
		if err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	return result, nil
}

// LookupBucket walks tx down the bucket path. With create set,
// missing buckets are created, which needs a writable transaction.
func LookupBucket(tx *bolt.Tx, buckets [][]byte, create bool) (*bolt.Bucket, error) {
	if len(buckets) == 0 {
		return nil, fmt.Errorf("empty bucket path")
	}
	var b *bolt.Bucket
	for i, name := range buckets {
		var next *bolt.Bucket
		var err error
		switch {
		case create && b == nil:
			next, err = tx.CreateBucketIfNotExists(name)
		case create:
			next, err = b.CreateBucketIfNotExists(name)
		case b == nil:
			next = tx.Bucket(name)
		default:
			next = b.Bucket(name)
		}
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, &ErrBucketNotFound{Path: buckets[:i+1]}
		}
		b = next
	}
	return b, nil
}

// DecodeKey turns the quoted form of a key back into bytes.
func DecodeKey(quoted string) ([]byte, error) {
	var key []byte
	for _, frag := range strings.Split(quoted, string(FragSeparator)) {
		if frag == "" {
			return nil, fmt.Errorf("quoted key cannot have empty fragment: %s", quoted)
		}
		if strings.HasPrefix(frag, "@") {
			f, err := hex.DecodeString(frag[1:])
			if err != nil {
				return nil, fmt.Errorf("bad hex in quoted key %s: %v", quoted, err)
			}
			key = append(key, f...)
			continue
		}
		key = append(key, frag...)
	}
	return key, nil
}

func isSafe(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case '.', ',', '-':
		return true
	}
	return false
}

// runs of safe bytes this short are left in the hex
const prettyThreshold = 2

// EncodeKey quotes key for display, keeping printable prefixes and
// suffixes readable. DecodeKey reverses it.
func EncodeKey(key []byte) string {
	// only the beginning and end are checked for safe bytes, large
	// binary values would otherwise turn into a mess of fragments
	var parts []string
	var right string

	if mid := bytes.TrimLeftFunc(key, isSafe); len(key)-len(mid) > prettyThreshold {
		parts = append(parts, string(key[:len(key)-len(mid)]))
		key = mid
	}
	if mid := bytes.TrimRightFunc(key, isSafe); len(key)-len(mid) > prettyThreshold {
		right = string(key[len(mid):])
		key = mid
	}
	if len(key) > 0 {
		parts = append(parts, "@"+hex.EncodeToString(key))
	}
	if right != "" {
		parts = append(parts, right)
	}
	return strings.Join(parts, string(FragSeparator))
}
