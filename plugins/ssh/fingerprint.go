package ssh

import (
	"bytes"
	"fmt"
	"io/ioutil"

	"github.com/interfacer/interfacer/cliutil/interfacer"
	"github.com/interfacer/interfacer/cliutil/positional"
	"golang.org/x/crypto/ssh"
)

type fingerprintArgs struct {
	File string
}

type fingerprintCommand struct {
	interfacer.Base
	interfacer.Synopsis
}

func newFingerprintCommand() *fingerprintCommand {
	return &fingerprintCommand{
		Synopsis: interfacer.Synopsis(positional.Usage(fingerprintArgs{})),
	}
}

func (*fingerprintCommand) Name() string { return "fingerprint" }

func (*fingerprintCommand) Description() string {
	return "show fingerprints of authorized_keys entries"
}

// Fingerprint describes one public key of an authorized_keys file.
type Fingerprint struct {
	SHA256  string
	KeyID   string
	Comment string
}

// Fingerprints parses authorized_keys content and fingerprints every
// key in it. Blank lines and comments are skipped.
func Fingerprints(data []byte) ([]Fingerprint, error) {
	var l []Fingerprint
	for i, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pub, comment, _, _, err := ssh.ParseAuthorizedKey(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		l = append(l, Fingerprint{
			SHA256:  ssh.FingerprintSHA256(pub),
			KeyID:   KeyID(pub),
			Comment: comment,
		})
	}
	return l, nil
}

func (c *fingerprintCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	var arguments fingerprintArgs
	if err := positional.Parse(&arguments, args); err != nil {
		return opts.Usagef(w, "%v", err)
	}

	data, err := ioutil.ReadFile(arguments.File)
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: %v\n", err)
		return 1
	}
	fps, err := Fingerprints(data)
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: %s: %v\n", arguments.File, err)
		return 1
	}
	if len(fps) == 0 {
		fmt.Fprintf(w.Stderr, "error: %s: no keys found\n", arguments.File)
		return 1
	}
	for _, fp := range fps {
		if fp.Comment != "" {
			fmt.Fprintf(w.Stdout, "%s %s %s\n", fp.SHA256, fp.KeyID, fp.Comment)
		} else {
			fmt.Fprintf(w.Stdout, "%s %s\n", fp.SHA256, fp.KeyID)
		}
	}
	return 0
}
