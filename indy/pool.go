//go:build indy

package indy

import (
	"errors"
	"os"
	"sync"

	"github.com/findy-network/findy-fixture/agent/ledger"
	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/findy-network/findy-wrapper-go/pool"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var (
	ErrNoGenesis        = errors.New("genesis transaction file is required")
	ErrInvalidPool      = errors.New("invalid pool handle")
	protocolVersionOnce sync.Once
	protocolVersionErr  error
)

// Pools is the libindy pool service. The pool config named by the fixture
// name is created from the genesis file of utils.Settings.
type Pools struct {
	l      sync.Mutex
	opened map[managed.PoolHandle]string
}

func NewPools() *Pools {
	return &Pools{opened: make(map[managed.PoolHandle]string)}
}

func setProtocolVersion() error {
	protocolVersionOnce.Do(func() {
		r := <-pool.SetProtocolVersion(utils.Settings.ProtocolVersion())
		protocolVersionErr = r.Err()
	})
	return protocolVersionErr
}

// Open creates the pool config named by name and opens the pool ledger.
func (s *Pools) Open(name string) (h managed.PoolHandle, err error) {
	defer err2.Handle(&err, "open pool %s", name)

	txn := utils.Settings.GenesisTxnFile()
	if txn == "" {
		return managed.InvalidPool, ErrNoGenesis
	}
	try.To1(os.Stat(txn))
	try.To(setProtocolVersion())

	try.To(NewFuture(pool.CreateConfig(name, pool.Config{GenesisTxn: txn})).Err())
	if glog.V(3) {
		glog.Infof("pool config %s created to %s", name, ledger.Dir(name))
	}
	h = managed.PoolHandle(NewFuture(pool.OpenLedger(name)).Int())

	s.l.Lock()
	s.opened[h] = name
	s.l.Unlock()
	return h, nil
}

// Close closes the pool ledger. The pool config is removed by the namespace
// cleanup.
func (s *Pools) Close(h managed.PoolHandle) (err error) {
	defer err2.Handle(&err, "close %s", h)

	s.l.Lock()
	_, ok := s.opened[h]
	delete(s.opened, h)
	s.l.Unlock()
	if !ok {
		return ErrInvalidPool
	}
	return NewFuture(pool.CloseLedger(int(h))).Err()
}
