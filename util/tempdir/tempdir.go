// Package tempdir provides scratch directories for tests.
package tempdir

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

type Dir struct {
	Path string
	t    testing.TB
}

// New creates a temporary directory. Call Cleanup when done.
func New(t testing.TB) Dir {
	dir, err := ioutil.TempDir("", "interfacer-test-")
	if err != nil {
		t.Fatalf("cannot create temp directory: %v", err)
	}
	return Dir{Path: dir, t: t}
}

func (d Dir) Cleanup() {
	if err := os.RemoveAll(d.Path); err != nil {
		d.t.Errorf("tempdir cleanup failed: %v", err)
	}
}

// Join returns the path of name inside the directory.
func (d Dir) Join(name string) string {
	return filepath.Join(d.Path, name)
}

// WriteFile creates name inside the directory with the given
// contents, and returns its path. Failures are fatal to the test.
func (d Dir) WriteFile(name string, contents string) string {
	p := d.Join(name)
	if err := ioutil.WriteFile(p, []byte(contents), 0644); err != nil {
		d.t.Fatalf("cannot write %s: %v", name, err)
	}
	return p
}

// Mkdir creates the subdirectory name and returns its path.
func (d Dir) Mkdir(name string) string {
	p := d.Join(name)
	if err := os.MkdirAll(p, 0755); err != nil {
		d.t.Fatalf("cannot create %s: %v", name, err)
	}
	return p
}
