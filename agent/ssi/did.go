package ssi

import (
	"errors"
	"strings"
)

// Well-known seeds of the ledger's genesis identities. A DID created from
// the same seed is always the same DID.
const (
	TrusteeSeed = "000000000000000000000000Trustee1"
	StewardSeed = "000000000000000000000000Steward1"
)

// SeedLen is the only accepted length of a non-empty seed.
const SeedLen = 32

// Ledger roles of the NYM transaction.
const (
	RoleTrustee        = "TRUSTEE"
	RoleSteward        = "STEWARD"
	RoleEndorser       = "ENDORSER"
	RoleNetworkMonitor = "NETWORK_MONITOR"
)

// MethodSov is the DID method of the qualified identifiers.
const MethodSov = "sov"

var (
	ErrNoWalletID  = errors.New("wallet id cannot be empty")
	ErrInvalidID   = errors.New("wallet id must be a plain file name")
	ErrInvalidSeed = errors.New("seed must be empty or length of 32")
	ErrInvalidRole = errors.New("unknown ledger role")
)

// Qualify returns a DID in its fully qualified form, did:sov:<id>. Already
// qualified DIDs are returned as is.
func Qualify(did string) string {
	if IsQualified(did) {
		return did
	}
	return "did:" + MethodSov + ":" + did
}

// Unqualify strips the method prefix from a qualified DID.
func Unqualify(did string) string {
	if !IsQualified(did) {
		return did
	}
	parts := strings.SplitN(did, ":", 3)
	return parts[2]
}

func IsQualified(did string) bool {
	return strings.HasPrefix(did, "did:") && strings.Count(did, ":") >= 2
}

// ValidateSeed checks that seed is empty or exactly SeedLen long.
func ValidateSeed(seed string) error {
	if seed != "" && len(seed) != SeedLen {
		return ErrInvalidSeed
	}
	return nil
}

// ValidateRole checks that role is one of the ledger roles. Empty role is
// allowed: it's a NYM without a role.
func ValidateRole(role string) error {
	switch role {
	case "", RoleTrustee, RoleSteward, RoleEndorser, RoleNetworkMonitor:
		return nil
	}
	return ErrInvalidRole
}
