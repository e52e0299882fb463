/*
Package fixture provisions SSI test resources and guarantees their release.

A recipe builds a Fixture: a unique namespace name and the resources the
recipe needs, e.g. a wallet, a pool ledger connection, a DID or a key. The
resources are created by the services of an Env. The testing API binds the
fixture's release to the test's cleanup:

	func TestSomething(t *testing.T) {
		f := fixture.Trustee(t)
		// use f.WalletHandle(), f.PoolHandle() and f.DID()
	}

The package level functions use the default Env which is the native Go
backend if SetDefault isn't called.
*/
package fixture

import (
	"errors"
	"fmt"
	"sync"

	"github.com/findy-network/findy-fixture/agent/managed"
)

// WalletService creates, opens, closes and deletes wallets. The open calls
// create the wallet named by name and return its handle and its config.
type WalletService interface {
	OpenDefault(name string) (managed.WalletHandle, string, error)
	OpenPlugged(name string) (managed.WalletHandle, string, error)
	CloseAndDelete(h managed.WalletHandle, config string) error
}

// PoolService opens pool ledgers. Open creates the pool config named by name
// before opening it.
type PoolService interface {
	Open(name string) (managed.PoolHandle, error)
	Close(h managed.PoolHandle) error
}

// DIDService creates DIDs and keys. An empty seed means a fresh DID or key.
type DIDService interface {
	CreateAndStore(w managed.WalletHandle, seed string, qualified bool) (did, verkey string, err error)
	CreateStorePublish(w managed.WalletHandle, p managed.PoolHandle, role, seed string) (did, verkey string, err error)
	CreateKey(w managed.WalletHandle, seed string) (verkey string, err error)
}

// PaymentService activates the mock payment method for the process. Init
// can be called many times.
type PaymentService interface {
	Init() error
}

// Storage removes the namespace's storage artifacts. Cleanup must succeed
// for the names which have nothing stored.
type Storage interface {
	Cleanup(name string) error
}

// Env is the set of services the recipes use.
type Env struct {
	Wallets  WalletService
	Pools    PoolService
	DIDs     DIDService
	Payments PaymentService
	Storage  Storage
}

var (
	ErrUnknownRecipe = errors.New("unknown recipe")
	ErrNoWallet      = errors.New("step needs a wallet")
	ErrNoPool        = errors.New("step needs a pool")
	ErrIncompleteEnv = errors.New("env is missing a service")
)

// StepError tells which step of which recipe failed.
type StepError struct {
	Recipe string
	Step   string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("fixture %s: %s: %v", e.Recipe, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func (e *Env) validate() error {
	if e.Wallets == nil || e.Pools == nil || e.DIDs == nil ||
		e.Payments == nil || e.Storage == nil {
		return ErrIncompleteEnv
	}
	return nil
}

var (
	defaultLock sync.Mutex
	defaultEnv  *Env
)

// Default returns the Env of the package level recipe functions. It's the
// native backend unless SetDefault is called.
func Default() *Env {
	defaultLock.Lock()
	defer defaultLock.Unlock()

	if defaultEnv == nil {
		defaultEnv = Native()
	}
	return defaultEnv
}

// SetDefault sets the Env of the package level recipe functions.
func SetDefault(e *Env) {
	defaultLock.Lock()
	defer defaultLock.Unlock()
	defaultEnv = e
}
