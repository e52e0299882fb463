package wallet

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/argon2"
)

// Key derivation methods libindy knows.
const (
	KeyMethodRaw      = "RAW"
	KeyMethodArgon2I  = "ARGON2I_MOD"
	KeyMethodArgon2IT = "ARGON2I_INT"
)

const storageKeyLen = 32

var ErrInvalidKey = errors.New("invalid wallet key")

// storageKey derives the storage encryption key from the wallet
// credentials. RAW keys are base58 encoded 32 bytes, others are passphrases
// stretched with argon2i. The salt is bound to the wallet id.
func storageKey(walletID, key, method string) ([]byte, error) {
	switch method {
	case "", KeyMethodRaw:
		k, err := base58.Decode(key)
		if err != nil || len(k) != storageKeyLen {
			return nil, fmt.Errorf("%w: RAW key must be base58 encoded %d bytes",
				ErrInvalidKey, storageKeyLen)
		}
		return k, nil
	case KeyMethodArgon2I:
		return argon2.Key([]byte(key), salt(walletID), 2, 64*1024, 2, storageKeyLen), nil
	case KeyMethodArgon2IT:
		return argon2.Key([]byte(key), salt(walletID), 1, 32*1024, 2, storageKeyLen), nil
	}
	return nil, fmt.Errorf("%w: unknown key derivation method %q", ErrInvalidKey, method)
}

func salt(walletID string) []byte {
	s := sha256.Sum256([]byte("findy-fixture-wallet:" + walletID))
	return s[:16]
}
