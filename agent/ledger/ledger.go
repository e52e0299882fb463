/*
Package ledger is a local pure Go pool ledger. It works like a libindy pool:
a pool config named by the pool name is created from a genesis transaction
file, and opening the pool gives a handle to it. The ledger itself is a bolt
file next to the genesis file and it stores the NYM transactions only, which
is what DID publishing needs.

Files of the pool named N are in <base>/.indy_client/pool/N/ where the
genesis transactions are in N.txn like libindy keeps them.
*/
package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrAlreadyOpen     = errors.New("pool ledger already opened")
	ErrInvalidHandle   = errors.New("invalid pool handle")
	ErrNotExists       = errors.New("pool ledger config not exists")
	ErrStillOpen       = errors.New("pool must be closed before delete")
	ErrProtocolVersion = errors.New("unsupported protocol version")
	ErrNymExists       = errors.New("nym already on the ledger")
	ErrNymNotFound     = errors.New("nym not found")
	ErrUnauthorized    = errors.New("submitter not authorized")
	ErrSignature       = errors.New("invalid request signature")
)

const (
	ledgerFilename = "ledger.bolt"
	openTimeout    = time.Second
)

var nymBucket = []byte("nym")

// Nym is a NYM transaction stored to the ledger. Role is the ledger role
// code.
type Nym struct {
	Dest      string
	VerKey    string
	Role      string
	Alias     string
	Submitter string
	SeqNo     uint64
}

// RoleName returns the role name of the NYM, e.g. TRUSTEE.
func (n *Nym) RoleName() string {
	return RoleName(n.Role)
}

type pool struct {
	name string
	db   *bolt.DB
}

// Service keeps track of the opened pool ledgers.
type Service struct {
	l      sync.Mutex
	last   managed.PoolHandle
	opened map[managed.PoolHandle]*pool
	byName map[string]managed.PoolHandle
}

func New() *Service {
	return &Service{
		opened: make(map[managed.PoolHandle]*pool),
		byName: make(map[string]managed.PoolHandle),
	}
}

// Dir returns the config dir of the pool.
func Dir(name string) string {
	return filepath.Join(ssi.PoolPath(), name)
}

// GenesisFile returns the genesis transaction file of the pool config.
func GenesisFile(name string) string {
	return filepath.Join(Dir(name), name+".txn")
}

// CreateConfig creates the pool config by copying the genesis transactions
// from the genesis file. An empty filename uses the built-in genesis of the
// local test network.
func (s *Service) CreateConfig(name, genesisFile string) (err error) {
	defer err2.Handle(&err, "create pool config %s", name)

	try.To(ssi.ValidateWalletID(name))
	data := try.To1(genesisData(genesisFile))
	try.To1(parseGenesis(data))

	try.To(os.MkdirAll(Dir(name), 0700))
	try.To(os.WriteFile(GenesisFile(name), data, 0600))
	if glog.V(3) {
		glog.Infoln("pool config created:", name)
	}
	return nil
}

// Open creates the pool config and opens the ledger. It returns a new
// handle which is never reused.
func (s *Service) Open(name string) (h managed.PoolHandle, err error) {
	defer err2.Handle(&err, "open pool %s", name)

	switch utils.Settings.ProtocolVersion() {
	case 1, 2:
	default:
		return managed.InvalidPool, ErrProtocolVersion
	}

	s.l.Lock()
	_, ok := s.byName[name]
	s.l.Unlock()
	if ok {
		return managed.InvalidPool, ErrAlreadyOpen
	}

	if !s.Exists(name) {
		try.To(s.CreateConfig(name, utils.Settings.GenesisTxnFile()))
	}
	db := try.To1(s.openDB(name))

	s.l.Lock()
	defer s.l.Unlock()

	if _, ok := s.byName[name]; ok {
		_ = db.Close()
		return managed.InvalidPool, ErrAlreadyOpen
	}
	s.last++
	h = s.last
	s.opened[h] = &pool{name: name, db: db}
	s.byName[name] = h
	if glog.V(5) {
		glog.Infof("opened pool %s as %s", name, h)
	}
	return h, nil
}

func (s *Service) openDB(name string) (db *bolt.DB, err error) {
	defer err2.Handle(&err, "open ledger db")

	nyms := try.To1(parseGenesis(try.To1(os.ReadFile(GenesisFile(name)))))

	db = try.To1(bolt.Open(filepath.Join(Dir(name), ledgerFilename), 0600,
		&bolt.Options{Timeout: openTimeout}))
	defer err2.Handle(&err, func(err error) error {
		_ = db.Close()
		return err
	})

	try.To(db.Update(func(tx *bolt.Tx) (err error) {
		defer err2.Handle(&err, "load genesis")

		b := try.To1(tx.CreateBucketIfNotExists(nymBucket))
		if b.Stats().KeyN > 0 {
			return nil
		}
		for _, n := range nyms {
			n.SeqNo = try.To1(b.NextSequence())
			try.To(b.Put([]byte(n.Dest), dto.ToGOB(n)))
		}
		return nil
	}))
	return db, nil
}

// Close closes the pool handle. The handle is invalid after the call.
func (s *Service) Close(h managed.PoolHandle) (err error) {
	defer err2.Handle(&err, "close %s", h)

	s.l.Lock()
	p, ok := s.opened[h]
	if ok {
		delete(s.opened, h)
		delete(s.byName, p.name)
	}
	s.l.Unlock()

	if !ok {
		return ErrInvalidHandle
	}
	return p.db.Close()
}

// Delete removes the pool config and its ledger.
func (s *Service) Delete(name string) (err error) {
	defer err2.Handle(&err, "delete pool %s", name)

	s.l.Lock()
	_, open := s.byName[name]
	s.l.Unlock()
	if open {
		return ErrStillOpen
	}
	if !s.Exists(name) {
		return ErrNotExists
	}
	return os.RemoveAll(Dir(name))
}

// Exists tells if the pool config is created.
func (s *Service) Exists(name string) bool {
	_, err := os.Stat(GenesisFile(name))
	return err == nil
}

// OpenCount returns how many pool handles are currently open.
func (s *Service) OpenCount() int {
	s.l.Lock()
	defer s.l.Unlock()
	return len(s.opened)
}

func (s *Service) pool(h managed.PoolHandle) (*pool, error) {
	s.l.Lock()
	defer s.l.Unlock()

	p, ok := s.opened[h]
	if !ok {
		return nil, ErrInvalidHandle
	}
	return p, nil
}

// GetNym reads the NYM of the DID from the ledger.
func (s *Service) GetNym(h managed.PoolHandle, did string) (n *Nym, err error) {
	defer err2.Handle(&err, "get nym %s", did)

	p := try.To1(s.pool(h))
	n = new(Nym)
	try.To(p.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(nymBucket).Get([]byte(ssi.Unqualify(did)))
		if data == nil {
			return ErrNymNotFound
		}
		dto.FromGOB(data, n)
		return nil
	}))
	return n, nil
}

// WriteNym writes the signed NYM request to the ledger. The submitter must
// be on the ledger with a role which allows to write the requested role.
func (s *Service) WriteNym(h managed.PoolHandle, req *NymRequest) (n *Nym, err error) {
	defer err2.Handle(&err, "write nym %s", req.Dest)

	p := try.To1(s.pool(h))
	roleCode := try.To1(RoleCode(req.Role))
	submitter := ssi.Unqualify(req.Submitter)
	dest := ssi.Unqualify(req.Dest)

	try.To(p.db.Update(func(tx *bolt.Tx) (err error) {
		defer err2.Handle(&err)

		b := tx.Bucket(nymBucket)
		data := b.Get([]byte(submitter))
		if data == nil {
			return ErrUnauthorized
		}
		var sub Nym
		dto.FromGOB(data, &sub)
		if !try.To1(ssi.Verify(sub.VerKey, req.Bytes(), req.Signature)) {
			return ErrSignature
		}
		if !canWrite(sub.Role, roleCode) {
			return ErrUnauthorized
		}
		if b.Get([]byte(dest)) != nil {
			return ErrNymExists
		}
		n = &Nym{
			Dest:      dest,
			VerKey:    try.To1(ssi.FullVerKey(dest, req.VerKey)),
			Role:      roleCode,
			Alias:     req.Alias,
			Submitter: submitter,
			SeqNo:     try.To1(b.NextSequence()),
		}
		return b.Put([]byte(dest), dto.ToGOB(n))
	}))
	if glog.V(3) {
		glog.Infof("nym %s written by %s with role %q", dest, submitter, req.Role)
	}
	return n, nil
}

// canWrite tells if the submitter role can create a NYM with the role.
// Only trustees can create trustees and stewards. Endorsers can create
// identity owners only.
func canWrite(submitter, role string) bool {
	switch submitter {
	case RoleCodeTrustee:
		return true
	case RoleCodeSteward:
		return role != RoleCodeTrustee && role != RoleCodeSteward
	case RoleCodeEndorser:
		return role == ""
	default:
		return false
	}
}
