package ssi

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"

	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/mr-tron/base58"
)

var ErrInvalidVerKey = errors.New("invalid verkey")

// KeyPair is an ed25519 key pair presented the way Indy does: verkey is the
// base58 of the public key and the DID is the base58 of its first 16 bytes.
type KeyPair struct {
	Seed   []byte
	Public ed25519.PublicKey
}

// NewKeyPair creates a key pair from the seed. An empty seed means a random
// key pair. The same seed gives always the same key pair.
func NewKeyPair(seed string) (kp *KeyPair, err error) {
	defer err2.Handle(&err, "new key pair")

	try.To(ValidateSeed(seed))
	s := []byte(seed)
	if seed == "" {
		s = make([]byte, ed25519.SeedSize)
		try.To1(rand.Read(s))
	}
	return KeyPairFromSeed(s), nil
}

// KeyPairFromSeed returns the key pair of the raw ed25519 seed.
func KeyPairFromSeed(seed []byte) *KeyPair {
	priv := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		Seed:   append(seed[:0:0], seed...),
		Public: priv.Public().(ed25519.PublicKey),
	}
}

func (k *KeyPair) VerKey() string {
	return base58.Encode(k.Public)
}

func (k *KeyPair) Did() string {
	return base58.Encode(k.Public[:16])
}

func (k *KeyPair) Sign(msg []byte) []byte {
	return ed25519.Sign(ed25519.NewKeyFromSeed(k.Seed), msg)
}

// Verify checks the signature with the base58 verkey.
func Verify(verKey string, msg, sig []byte) (ok bool, err error) {
	defer err2.Handle(&err, "verify")

	pub := try.To1(base58.Decode(verKey))
	if len(pub) != ed25519.PublicKeySize {
		return false, ErrInvalidVerKey
	}
	return ed25519.Verify(pub, msg, sig), nil
}

// FullVerKey expands an abbreviated verkey (~ prefixed) of the DID. Full
// verkeys are returned as is.
func FullVerKey(did, verKey string) (full string, err error) {
	defer err2.Handle(&err, "full verkey")

	if len(verKey) == 0 || verKey[0] != '~' {
		return verKey, nil
	}
	head := try.To1(base58.Decode(Unqualify(did)))
	tail := try.To1(base58.Decode(verKey[1:]))
	if len(head)+len(tail) != ed25519.PublicKeySize {
		return "", ErrInvalidVerKey
	}
	return base58.Encode(append(head, tail...)), nil
}

// AbbreviateVerKey returns the ~ prefixed short form of the verkey when the
// DID is derived from it.
func AbbreviateVerKey(did, verKey string) (string, error) {
	pub, err := base58.Decode(verKey)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return "", ErrInvalidVerKey
	}
	if base58.Encode(pub[:16]) != Unqualify(did) {
		return verKey, nil
	}
	return "~" + base58.Encode(pub[16:]), nil
}
