package ssh

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/agl/ed25519"
	"github.com/interfacer/interfacer/cliutil/interfacer"
	xed25519 "golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/ssh"
)

type keygenCommand struct {
	interfacer.Base
	// random source, crypto/rand if nil
	rand io.Reader
}

func (*keygenCommand) Name() string        { return "keygen" }
func (*keygenCommand) Description() string { return "generate an ed25519 key pair" }

func (*keygenCommand) Options() []interfacer.OptionSpec {
	return []interfacer.OptionSpec{
		interfacer.Option("-c", "--comment", interfacer.OptionConfig{
			Help: "comment to put in the authorized_keys line",
		}),
		interfacer.Option("-o", "--out", interfacer.OptionConfig{
			Type: interfacer.Path,
			Help: "write the private key to this file",
		}),
	}
}

// Key is a freshly generated ed25519 key pair.
type Key struct {
	Pub  *[ed25519.PublicKeySize]byte
	Priv *[ed25519.PrivateKeySize]byte
}

// GenerateKey creates a new key pair, reading randomness from r.
func GenerateKey(r io.Reader) (*Key, error) {
	pub, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, err
	}
	return &Key{Pub: pub, Priv: priv}, nil
}

// Signer returns the key as an ssh signer.
func (k *Key) Signer() (ssh.Signer, error) {
	return ssh.NewSignerFromKey(xed25519.PrivateKey(k.Priv[:]))
}

// AuthorizedKey formats the public half as an authorized_keys line.
func AuthorizedKey(pub ssh.PublicKey, comment string) string {
	line := bytes.TrimSuffix(ssh.MarshalAuthorizedKey(pub), []byte{'\n'})
	if comment != "" {
		line = append(line, ' ')
		line = append(line, comment...)
	}
	return string(line)
}

func writePrivateKey(path string, k *Key) error {
	// refuse to clobber an existing key
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, hex.EncodeToString(k.Priv[:])); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (c *keygenCommand) Run(w interfacer.Streams, opts *interfacer.Options, args []string) int {
	if len(args) > 0 {
		return opts.Usagef(w, "too many arguments")
	}
	r := c.rand
	if r == nil {
		r = rand.Reader
	}
	k, err := GenerateKey(r)
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: generating key: %v\n", err)
		return 1
	}
	signer, err := k.Signer()
	if err != nil {
		fmt.Fprintf(w.Stderr, "error: %v\n", err)
		return 1
	}
	pub := signer.PublicKey()

	if opts.IsSet("out") {
		if err := writePrivateKey(opts.String("out"), k); err != nil {
			fmt.Fprintf(w.Stderr, "error: writing private key: %v\n", err)
			return 1
		}
	}

	fmt.Fprintln(w.Stdout, AuthorizedKey(pub, opts.String("comment")))
	fmt.Fprintf(w.Stdout, "key id: %s\n", KeyID(pub))
	return 0
}
