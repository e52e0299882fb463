package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NamePrefix starts every fixture namespace name. The janitor uses it to
// tell fixture artifacts apart from other wallets and pools.
const NamePrefix = "fx_"

// NameLen is the length of every name returned by NewName.
const NameLen = len(NamePrefix) + 32

// NewName generates a new fixture namespace name. The name is safe to use as
// a file name. Collision avoidance relies on the 122 random bits of the UUID,
// there is no reservation table.
func NewName() string {
	return NamePrefix + strings.ReplaceAll(UUID(), "-", "")
}

// IsName tells if the s looks like a name generated by NewName.
func IsName(s string) bool {
	if len(s) != NameLen || !strings.HasPrefix(s, NamePrefix) {
		return false
	}
	for _, c := range s[len(NamePrefix):] {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}
	return true
}

// UUID generates new nonce with Go's crypto package, and returns value
// as string.
func UUID() string {
	return uuid.New().String()
}
