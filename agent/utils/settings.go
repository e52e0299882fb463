package utils

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/glog"
)

const (
	// DefaultWalletKey is the RAW wallet key used by fixture wallets. It's
	// a base58 encoded 32 byte key, which is what libindy expects for RAW
	// key derivation.
	DefaultWalletKey = "6cih1cVgRH8yHD54nEYyPKLmdv67o8QbufxaTHot3Qxp"

	// DefaultKeyMethod is the key derivation method of the fixture wallets.
	// RAW skips ARGON2I which keeps wallet creation fast enough for tests.
	DefaultKeyMethod = "RAW"

	// DefaultProtocolVersion is the pool protocol version set before the
	// pool ledger is opened.
	DefaultProtocolVersion = 2

	// DefaultMaxAge is how old a fixture namespace must be before the
	// janitor removes it.
	DefaultMaxAge = 2 * time.Hour
)

var Settings = &Hub{}

type Hub struct {
	baseDir         string        // root where .indy_client lives, $HOME by default
	walletKey       string        // RAW key of the fixture wallets
	keyMethod       string        // wallet key derivation method
	genesisTxnFile  string        // pool genesis transactions, empty for built-in genesis
	protocolVersion uint64        // pool protocol version
	maxAge          time.Duration // janitor: namespace age limit

	l sync.RWMutex
}

// SetBaseDir sets the directory under which .indy_client is created. Tests
// should set it to a temp dir.
func (h *Hub) SetBaseDir(dir string) {
	h.l.Lock()
	defer h.l.Unlock()
	h.baseDir = dir
}

// BaseDir returns the base dir set by SetBaseDir or the user's home dir.
func (h *Hub) BaseDir() string {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.baseDir == "" {
		return IndyBaseDir()
	}
	return h.baseDir
}

// ClientDir returns the .indy_client dir under the current base dir.
func (h *Hub) ClientDir() string {
	return filepath.Join(h.BaseDir(), ".indy_client")
}

func (h *Hub) SetWalletKey(key string) {
	h.l.Lock()
	defer h.l.Unlock()
	h.walletKey = key
}

func (h *Hub) WalletKey() string {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.walletKey == "" {
		return DefaultWalletKey
	}
	return h.walletKey
}

func (h *Hub) SetKeyMethod(m string) {
	h.l.Lock()
	defer h.l.Unlock()
	h.keyMethod = m
}

func (h *Hub) KeyMethod() string {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.keyMethod == "" {
		return DefaultKeyMethod
	}
	return h.keyMethod
}

// SetGenesisTxnFile sets the pool genesis file. When it's empty, the pool
// collaborator writes its built-in genesis.
func (h *Hub) SetGenesisTxnFile(filename string) {
	h.l.Lock()
	defer h.l.Unlock()
	h.genesisTxnFile = filename
}

func (h *Hub) GenesisTxnFile() string {
	h.l.RLock()
	defer h.l.RUnlock()
	return h.genesisTxnFile
}

func (h *Hub) SetProtocolVersion(v uint64) {
	h.l.Lock()
	defer h.l.Unlock()
	h.protocolVersion = v
}

func (h *Hub) ProtocolVersion() uint64 {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.protocolVersion == 0 {
		return DefaultProtocolVersion
	}
	return h.protocolVersion
}

func (h *Hub) SetMaxAge(d time.Duration) {
	h.l.Lock()
	defer h.l.Unlock()
	h.maxAge = d
}

func (h *Hub) MaxAge() time.Duration {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.maxAge == 0 {
		return DefaultMaxAge
	}
	return h.maxAge
}

// Reset sets all the settings back to defaults.
func (h *Hub) Reset() {
	if glog.V(3) {
		glog.Info("resetting settings")
	}
	h.l.Lock()
	defer h.l.Unlock()
	h.baseDir = ""
	h.walletKey = ""
	h.keyMethod = ""
	h.genesisTxnFile = ""
	h.protocolVersion = 0
	h.maxAge = 0
}
