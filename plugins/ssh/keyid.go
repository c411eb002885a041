package ssh

import (
	"github.com/codahale/blake2"
	"github.com/tv42/zbase32"
	"golang.org/x/crypto/ssh"
)

const keyIDPersonalization = "interfacer:keyid"

// keyIDSize is the length of a key identifier, in bytes before
// encoding.
const keyIDSize = 20

// KeyID returns a short human-friendly identifier for a public key.
// It is a personalized BLAKE2b hash of the key in ssh wire format,
// encoded as z-base-32.
func KeyID(pub ssh.PublicKey) string {
	var pers [blake2.PersonalSize]byte
	copy(pers[:], keyIDPersonalization)
	h := blake2.New(&blake2.Config{
		Size:     keyIDSize,
		Personal: pers[:],
	})
	_, _ = h.Write(pub.Marshal())
	return zbase32.EncodeToString(h.Sum(nil))
}
