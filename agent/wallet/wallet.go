/*
Package wallet is a pure Go wallet service with the same life cycle as libindy
wallets: a wallet is created, opened to get a handle, closed and deleted. The
default storage is an encrypted bolt file under
<base>/.indy_client/wallet/<id>/. The plugged storage type "inmem" keeps the
wallet in process memory and leaves no files.

Wallets hold keys and DIDs which the did package creates. Handles are never
reused during the process life time, and zero is never a handle.
*/
package wallet

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var (
	ErrAlreadyExists  = errors.New("wallet already exists")
	ErrAlreadyOpen    = errors.New("wallet already opened")
	ErrNotExists      = errors.New("wallet not exists")
	ErrInvalidHandle  = errors.New("invalid wallet handle")
	ErrConfigMismatch = errors.New("wallet config doesn't match the handle")
	ErrNotFound       = errors.New("wallet item not found")
	ErrStillOpen      = errors.New("wallet must be closed before delete")
	ErrUnknownStorage = errors.New("unknown wallet storage type")
)

const metaID = "wallet_id"

// Key is a key pair stored to the wallet. Secret is the ed25519 seed.
type Key struct {
	VerKey string
	Secret []byte
}

// DIDRecord is our DID stored to the wallet.
type DIDRecord struct {
	Did       string
	VerKey    string
	Qualified bool
}

type handle struct {
	h   managed.WalletHandle
	cfg ssi.Wallet
	st  store
}

// Service keeps track of the wallets and their open handles.
type Service struct {
	l      sync.Mutex
	last   managed.WalletHandle
	opened map[managed.WalletHandle]*handle
	byID   map[string]managed.WalletHandle
	inmem  map[string]*memStore
}

func New() *Service {
	return &Service{
		opened: make(map[managed.WalletHandle]*handle),
		byID:   make(map[string]managed.WalletHandle),
		inmem:  make(map[string]*memStore),
	}
}

// OpenDefault creates and opens a default storage wallet named by name. It
// returns the handle and the wallet config JSON which CloseAndDelete needs.
func (s *Service) OpenDefault(name string) (h managed.WalletHandle, cfgJSON string, err error) {
	defer err2.Handle(&err, "open default wallet %s", name)

	cfg := ssi.NewFixtureWalletCfg(name)
	try.To(s.Create(cfg))
	h = try.To1(s.Open(cfg))
	return h, cfg.JSON(), nil
}

// OpenPlugged creates and opens an in-memory wallet named by name.
func (s *Service) OpenPlugged(name string) (h managed.WalletHandle, cfgJSON string, err error) {
	defer err2.Handle(&err, "open plugged wallet %s", name)

	cfg := ssi.NewFixtureWalletCfg(name).PluggedBy(ssi.StorageTypeInMem, "")
	try.To(s.Create(cfg))
	h = try.To1(s.Open(cfg))
	return h, cfg.JSON(), nil
}

// CloseAndDelete closes the wallet handle and deletes the wallet storage.
// The config must be the one returned with the handle.
func (s *Service) CloseAndDelete(h managed.WalletHandle, cfgJSON string) (err error) {
	defer err2.Handle(&err, "close and delete %s", h)

	cfg := try.To1(ssi.ParseWalletCfg(cfgJSON))
	try.To(s.checkHandleCfg(h, cfg))
	try.To(s.Close(h))
	return s.Delete(cfg)
}

// Create creates the wallet storage. It's an error if the wallet exists.
func (s *Service) Create(cfg *ssi.Wallet) (err error) {
	defer err2.Handle(&err, "create wallet %s", cfg.ID())

	try.To(ssi.ValidateWalletID(cfg.ID()))
	key := try.To1(storageKey(cfg.ID(), cfg.Key(), cfg.Credentials.KeyDerivationMethod))

	s.l.Lock()
	defer s.l.Unlock()

	if s.exists(cfg) {
		return ErrAlreadyExists
	}

	var st store
	switch cfg.Config.StorageType {
	case "", ssi.StorageTypeDefault:
		st = try.To1(newBoltStore(cfg.Dir(), key))
	case ssi.StorageTypeInMem:
		m := newMemStore()
		s.inmem[cfg.UniqueID()] = m
		st = m
	default:
		return ErrUnknownStorage
	}
	defer err2.Handle(&err, func(err error) error {
		_ = st.close()
		return err
	})

	try.To(st.put(bucketMeta, metaID, []byte(cfg.ID())))
	if glog.V(3) {
		glog.Infoln("wallet created:", cfg.UniqueID())
	}
	return st.close()
}

// Open opens the created wallet and returns a new handle for it.
func (s *Service) Open(cfg *ssi.Wallet) (h managed.WalletHandle, err error) {
	defer err2.Handle(&err, "open wallet %s", cfg.ID())

	key := try.To1(storageKey(cfg.ID(), cfg.Key(), cfg.Credentials.KeyDerivationMethod))

	s.l.Lock()
	defer s.l.Unlock()

	if !s.exists(cfg) {
		return managed.InvalidWallet, ErrNotExists
	}
	if _, ok := s.byID[cfg.UniqueID()]; ok {
		return managed.InvalidWallet, ErrAlreadyOpen
	}

	var st store
	if cfg.Plugged() {
		st = s.inmem[cfg.UniqueID()]
	} else {
		st = try.To1(newBoltStore(cfg.Dir(), key))
	}
	defer err2.Handle(&err, func(err error) error {
		_ = st.close()
		return err
	})

	id, found := try.To2(st.get(bucketMeta, metaID))
	if !found || string(id) != cfg.ID() {
		return managed.InvalidWallet, ErrConfigMismatch
	}

	s.last++
	h = s.last
	s.opened[h] = &handle{h: h, cfg: *cfg, st: st}
	s.byID[cfg.UniqueID()] = h
	if glog.V(5) {
		glog.Infof("opened wallet %s as %s", cfg.ID(), h)
	}
	return h, nil
}

// Close closes the wallet handle. The handle is invalid after the call.
func (s *Service) Close(h managed.WalletHandle) (err error) {
	defer err2.Handle(&err, "close %s", h)

	s.l.Lock()
	w, ok := s.opened[h]
	if ok {
		delete(s.opened, h)
		delete(s.byID, w.cfg.UniqueID())
	}
	s.l.Unlock()

	if !ok {
		return ErrInvalidHandle
	}
	return w.st.close()
}

// Delete deletes the closed wallet and all of its data.
func (s *Service) Delete(cfg *ssi.Wallet) (err error) {
	defer err2.Handle(&err, "delete wallet %s", cfg.ID())

	s.l.Lock()
	defer s.l.Unlock()

	if _, ok := s.byID[cfg.UniqueID()]; ok {
		return ErrStillOpen
	}
	if !s.exists(cfg) {
		return ErrNotExists
	}
	if cfg.Plugged() {
		delete(s.inmem, cfg.UniqueID())
		return nil
	}
	try.To(os.RemoveAll(cfg.Dir()))
	if glog.V(3) {
		glog.Infoln("wallet deleted:", cfg.UniqueID())
	}
	return nil
}

// Exists tells if the wallet is created and not yet deleted.
func (s *Service) Exists(cfg *ssi.Wallet) bool {
	s.l.Lock()
	defer s.l.Unlock()
	return s.exists(cfg)
}

// OpenCount returns how many wallet handles are currently open.
func (s *Service) OpenCount() int {
	s.l.Lock()
	defer s.l.Unlock()
	return len(s.opened)
}

func (s *Service) exists(cfg *ssi.Wallet) bool {
	if cfg.Plugged() {
		_, ok := s.inmem[cfg.UniqueID()]
		return ok
	}
	_, err := os.Stat(filepath.Join(cfg.Dir(), StorageFilename))
	return err == nil
}

func (s *Service) checkHandleCfg(h managed.WalletHandle, cfg *ssi.Wallet) error {
	s.l.Lock()
	defer s.l.Unlock()

	w, ok := s.opened[h]
	if !ok {
		return ErrInvalidHandle
	}
	if w.cfg.UniqueID() != cfg.UniqueID() {
		return ErrConfigMismatch
	}
	return nil
}

func (s *Service) store(h managed.WalletHandle) (store, error) {
	s.l.Lock()
	defer s.l.Unlock()

	w, ok := s.opened[h]
	if !ok {
		return nil, ErrInvalidHandle
	}
	return w.st, nil
}

// StoreKey stores the key pair to the wallet by its verkey.
func (s *Service) StoreKey(h managed.WalletHandle, k Key) (err error) {
	defer err2.Handle(&err, "store key")

	st := try.To1(s.store(h))
	return st.put(bucketKey, k.VerKey, dto.ToGOB(k))
}

// Key returns the key pair by its verkey.
func (s *Service) Key(h managed.WalletHandle, verKey string) (k *Key, err error) {
	defer err2.Handle(&err, "get key")

	st := try.To1(s.store(h))
	data, found := try.To2(st.get(bucketKey, verKey))
	if !found {
		return nil, ErrNotFound
	}
	k = new(Key)
	dto.FromGOB(data, k)
	return k, nil
}

// StoreDID stores our DID to the wallet. The DID's key must be stored
// with StoreKey.
func (s *Service) StoreDID(h managed.WalletHandle, d DIDRecord) (err error) {
	defer err2.Handle(&err, "store did")

	st := try.To1(s.store(h))
	return st.put(bucketDID, d.Did, dto.ToGOB(d))
}

// DID returns our DID record by the DID.
func (s *Service) DID(h managed.WalletHandle, did string) (d *DIDRecord, err error) {
	defer err2.Handle(&err, "get did")

	st := try.To1(s.store(h))
	data, found := try.To2(st.get(bucketDID, did))
	if !found {
		return nil, ErrNotFound
	}
	d = new(DIDRecord)
	dto.FromGOB(data, d)
	return d, nil
}
