package version_test

import (
	"bytes"
	"testing"

	"github.com/interfacer/interfacer/cliutil/interfacer"
	pluginversion "github.com/interfacer/interfacer/plugins/version"
	"github.com/interfacer/interfacer/version"
)

func run(argv ...string) (code int, stdout, stderr string) {
	var o, e bytes.Buffer
	r := interfacer.New("prog", []interfacer.Category{pluginversion.New()})
	r.Streams = interfacer.Streams{Stdout: &o, Stderr: &e}
	code = r.Run(argv)
	return code, o.String(), e.String()
}

func TestVersion(t *testing.T) {
	code, stdout, stderr := run("prog", "version")
	if g, e := code, 0; g != e {
		t.Fatalf("unexpected exit status: %d != %d: %s", g, e, stderr)
	}
	if g, e := stdout, version.Version+"\n"; g != e {
		t.Errorf("unexpected output: %q != %q", g, e)
	}
}

func TestVersionNoSubCommandLayer(t *testing.T) {
	code, stdout, _ := run("prog", "VERSION")
	if g, e := code, 0; g != e {
		t.Fatalf("unexpected exit status: %d != %d", g, e)
	}
	if bytes.Contains([]byte(stdout), []byte("choose a subcommand")) {
		t.Errorf("version listed subcommands: %q", stdout)
	}
}

func TestVersionExtraArgs(t *testing.T) {
	code, stdout, stderr := run("prog", "version", "frob")
	if g, e := code, 1; g != e {
		t.Fatalf("unexpected exit status: %d != %d", g, e)
	}
	if stdout != "" {
		t.Errorf("unexpected output: %q", stdout)
	}
	if g, e := stderr, "error: version takes no arguments\n"; g != e {
		t.Errorf("unexpected error output: %q != %q", g, e)
	}
}
