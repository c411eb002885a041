package plugin_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/interfacer/interfacer/plugin"
	"github.com/interfacer/interfacer/util/tempdir"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	return func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	}
}

const setName = "interfacer-test-plugin-set"

func TestLocateWorkingDir(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	tmp.Mkdir(setName)
	tmp.Mkdir("sub")

	defer chdir(t, tmp.Path)()
	path, ok := plugin.Locate(setName, "")
	if !ok {
		t.Fatal("plugin set not found")
	}
	if g, e := path, setName; g != e {
		t.Errorf("unexpected path: %q != %q", g, e)
	}
}

func TestLocateParentDir(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	tmp.Mkdir(setName)
	sub := tmp.Mkdir("sub")

	defer chdir(t, sub)()
	path, ok := plugin.Locate(setName, "")
	if !ok {
		t.Fatal("plugin set not found")
	}
	if g, e := path, filepath.Join("..", setName); g != e {
		t.Errorf("unexpected path: %q != %q", g, e)
	}
}

func TestLocateMissing(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	sub := tmp.Mkdir("sub")

	defer chdir(t, sub)()
	if path, ok := plugin.Locate(setName, ""); ok {
		t.Errorf("unexpected plugin set: %q", path)
	}
}

func TestLocateDataDir(t *testing.T) {
	tmp := tempdir.New(t)
	defer tmp.Cleanup()
	data := tmp.Mkdir("data")
	want := tmp.Mkdir(filepath.Join("data", setName))
	sub := tmp.Mkdir("sub")

	defer chdir(t, sub)()
	path, ok := plugin.Locate(setName, data)
	if !ok {
		t.Fatal("plugin set not found")
	}
	if g, e := path, want; g != e {
		t.Errorf("unexpected path: %q != %q", g, e)
	}
}
