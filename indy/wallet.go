//go:build indy

package indy

import (
	"errors"
	"os"
	"sync"

	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-wrapper-go/wallet"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// WalletAlreadyExistsError is the libindy error code of an existing wallet.
const WalletAlreadyExistsError = 203

var (
	ErrAlreadyExists  = errors.New("wallet already exists")
	ErrInvalidHandle  = errors.New("invalid wallet handle")
	ErrConfigMismatch = errors.New("wallet config doesn't match the handle")
)

// Wallets is the libindy wallet service. Wallets are deleted by removing
// their storage dirs after they are closed.
type Wallets struct {
	l      sync.Mutex
	opened map[managed.WalletHandle]string
}

func NewWallets() *Wallets {
	return &Wallets{opened: make(map[managed.WalletHandle]string)}
}

func indyWallet(w *ssi.Wallet) (wallet.Config, wallet.Credentials) {
	cfg := wallet.Config{ID: w.Config.ID}
	if w.Config.StorageConfig != nil {
		cfg.StorageConfig = &wallet.StorageConfig{Path: w.Config.StorageConfig.Path}
	}
	return cfg, wallet.Credentials{
		Key:                 w.Credentials.Key,
		KeyDerivationMethod: w.Credentials.KeyDerivationMethod,
	}
}

// OpenDefault creates and opens a wallet named by name in the default
// wallet dir.
func (s *Wallets) OpenDefault(name string) (h managed.WalletHandle, cfgJSON string, err error) {
	defer err2.Handle(&err, "open default wallet %s", name)

	return s.createAndOpen(ssi.NewFixtureWalletCfg(name))
}

// OpenPlugged creates and opens a wallet named by name with a custom storage
// path. The wallet is stored in the plugged dir instead of the default one.
func (s *Wallets) OpenPlugged(name string) (h managed.WalletHandle, cfgJSON string, err error) {
	defer err2.Handle(&err, "open plugged wallet %s", name)

	w := ssi.NewFixtureWalletCfg(name)
	w.Config.StorageConfig = &ssi.StorageConfig{Path: ssi.PluggedPath()}
	return s.createAndOpen(w)
}

func (s *Wallets) createAndOpen(w *ssi.Wallet) (h managed.WalletHandle, cfgJSON string, err error) {
	defer err2.Handle(&err)

	try.To(ssi.ValidateWalletID(w.ID()))
	cfg, creds := indyWallet(w)

	f := NewFuture(wallet.Create(cfg, creds))
	if f.ErrCode() == WalletAlreadyExistsError {
		return managed.InvalidWallet, "", ErrAlreadyExists
	}
	try.To(f.Err())

	if glog.V(3) {
		glog.Info("opening wallet: ", w.ID())
	}
	h = managed.WalletHandle(NewFuture(wallet.Open(cfg, creds)).Int())

	s.l.Lock()
	s.opened[h] = w.UniqueID()
	s.l.Unlock()
	return h, w.JSON(), nil
}

// CloseAndDelete closes the wallet handle and removes the wallet's storage
// dir.
func (s *Wallets) CloseAndDelete(h managed.WalletHandle, cfgJSON string) (err error) {
	defer err2.Handle(&err, "close and delete %s", h)

	w := try.To1(ssi.ParseWalletCfg(cfgJSON))

	s.l.Lock()
	id, ok := s.opened[h]
	if ok && id == w.UniqueID() {
		delete(s.opened, h)
	}
	s.l.Unlock()
	switch {
	case !ok:
		return ErrInvalidHandle
	case id != w.UniqueID():
		return ErrConfigMismatch
	}

	if glog.V(3) {
		glog.Infof("closing %s: %s", h, w.ID())
	}
	try.To(NewFuture(wallet.Close(int(h))).Err())
	return os.RemoveAll(w.Dir())
}
