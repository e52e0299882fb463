// Package managed offers the handle types of the resources a fixture owns.
// Handles are plain integers given by the collaborator which opened the
// resource. The zero value is reserved: it never denotes a live resource.
package managed

import "strconv"

// WalletHandle is a handle of an open wallet. You should always use this
// type instead of plain int when passing wallet handles around.
type WalletHandle int

// PoolHandle is a handle of an open pool ledger connection.
type PoolHandle int

const (
	// InvalidWallet is the only WalletHandle value which means no wallet.
	InvalidWallet WalletHandle = 0

	// InvalidPool is the only PoolHandle value which means no pool.
	InvalidPool PoolHandle = 0
)

// Valid tells if the handle refers to an open wallet.
func (h WalletHandle) Valid() bool {
	return h != InvalidWallet
}

func (h WalletHandle) String() string {
	if !h.Valid() {
		return "wallet(invalid)"
	}
	return "wallet(" + strconv.Itoa(int(h)) + ")"
}

// Valid tells if the handle refers to an open pool connection.
func (h PoolHandle) Valid() bool {
	return h != InvalidPool
}

func (h PoolHandle) String() string {
	if !h.Valid() {
		return "pool(invalid)"
	}
	return "pool(" + strconv.Itoa(int(h)) + ")"
}
