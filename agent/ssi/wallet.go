package ssi

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

const (
	// StorageTypeDefault is the file based wallet storage.
	StorageTypeDefault = "default"

	// StorageTypeInMem is the storage type registered for plugged wallets.
	// Plugged wallets live in process memory and leave no files.
	StorageTypeInMem = "inmem"
)

// Config is a wallet config in the format libindy accepts.
type Config struct {
	ID            string         `json:"id"`
	StorageType   string         `json:"storage_type,omitempty"`
	StorageConfig *StorageConfig `json:"storage_config,omitempty"`
}

type StorageConfig struct {
	Path string `json:"path,omitempty"`
}

// Credentials is a wallet credentials in the format libindy accepts.
type Credentials struct {
	Key                 string `json:"key"`
	KeyDerivationMethod string `json:"key_derivation_method,omitempty"`
}

// Wallet is the wallet configuration a fixture needs to close and delete
// its wallet. Its JSON presentation is the fixture's wallet config.
type Wallet struct {
	Config      Config      `json:"config"`
	Credentials Credentials `json:"credentials"`
}

func NewRawWalletCfg(name, key string) (w *Wallet) {
	return &Wallet{
		Config: Config{ID: name},
		Credentials: Credentials{
			Key:                 key,
			KeyDerivationMethod: "RAW",
		},
	}
}

// NewFixtureWalletCfg returns wallet config with the key and the key method
// from utils.Settings.
func NewFixtureWalletCfg(name string) *Wallet {
	w := NewRawWalletCfg(name, utils.Settings.WalletKey())
	w.Credentials.KeyDerivationMethod = utils.Settings.KeyMethod()
	return w
}

// PluggedBy makes a copy of the wallet cfg which uses a storage type given.
// The path is optional.
func (w Wallet) PluggedBy(storageType, path string) *Wallet {
	w.Config.StorageType = storageType
	if path != "" {
		w.Config.StorageConfig = &StorageConfig{Path: path}
	}
	return &w
}

// ParseWalletCfg parses the wallet config JSON made by Wallet.JSON.
func ParseWalletCfg(cfgJSON string) (w *Wallet, err error) {
	defer err2.Handle(&err, "parse wallet config")

	w = new(Wallet)
	try.To(json.Unmarshal([]byte(cfgJSON), w))
	if w.Config.ID == "" {
		return nil, ErrNoWalletID
	}
	return w, nil
}

// ValidateWalletID checks that the id can be used as a wallet dir name.
func ValidateWalletID(id string) error {
	if id == "" {
		return ErrNoWalletID
	}
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return ErrInvalidID
	}
	return nil
}

func (w *Wallet) JSON() string {
	return dto.ToJSON(w)
}

// Plugged tells if the wallet uses other than the default storage.
func (w *Wallet) Plugged() bool {
	return w.Config.StorageType != "" && w.Config.StorageType != StorageTypeDefault
}

// Dir returns the directory where the wallet's storage files are.
func (w *Wallet) Dir() string {
	path := WalletPath()
	if w.Config.StorageConfig != nil && w.Config.StorageConfig.Path != "" {
		path = w.Config.StorageConfig.Path
	}
	return filepath.Join(path, w.Config.ID)
}

// UniqueID identifies the wallet among all wallets, including plugged ones.
func (w *Wallet) UniqueID() string {
	if w.Plugged() {
		return w.Config.StorageType + ":" + w.Dir()
	}
	return w.Dir()
}

func (w *Wallet) ID() string {
	return w.Config.ID
}

func (w *Wallet) Key() string {
	return w.Credentials.Key
}

// WalletPath returns the dir of the default wallets.
func WalletPath() string {
	return filepath.Join(utils.Settings.ClientDir(), "wallet")
}

// PoolPath returns the dir of the pool configurations.
func PoolPath() string {
	return filepath.Join(utils.Settings.ClientDir(), "pool")
}

// PluggedPath returns the storage path of the plugged wallets which are
// kept on disk, i.e. plugged wallets of libindy.
func PluggedPath() string {
	return filepath.Join(utils.Settings.ClientDir(), "plugged")
}
