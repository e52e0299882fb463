package fixture

import (
	"errors"
	"sync"

	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/golang/glog"
)

// Fixture is everything a recipe provisioned for one test. The fixture owns
// its resources and releases them with Close.
type Fixture struct {
	name      string
	recipe    string
	walletCfg string
	wallet    managed.WalletHandle
	pool      managed.PoolHandle
	did       string
	verkey    string

	env      *Env
	once     sync.Once
	closeErr error
}

// Name is the unique namespace of the fixture.
func (f *Fixture) Name() string { return f.name }

// Recipe is the name of the recipe which built the fixture.
func (f *Fixture) Recipe() string { return f.recipe }

// WalletConfig is the wallet config JSON. It's empty when the fixture has no
// wallet.
func (f *Fixture) WalletConfig() string { return f.walletCfg }

func (f *Fixture) WalletHandle() managed.WalletHandle { return f.wallet }

func (f *Fixture) PoolHandle() managed.PoolHandle { return f.pool }

// DID is the fixture's DID, or empty when the recipe creates no DID.
func (f *Fixture) DID() string { return f.did }

// VerKey is the verkey of the DID or the standalone key.
func (f *Fixture) VerKey() string { return f.verkey }

// Info is the printable presentation of the fixture.
type Info struct {
	Name         string `json:"name"`
	Recipe       string `json:"recipe"`
	WalletConfig string `json:"wallet_config,omitempty"`
	WalletHandle int    `json:"wallet_handle,omitempty"`
	PoolHandle   int    `json:"pool_handle,omitempty"`
	DID          string `json:"did,omitempty"`
	VerKey       string `json:"verkey,omitempty"`
}

func (f *Fixture) Info() Info {
	return Info{
		Name:         f.name,
		Recipe:       f.recipe,
		WalletConfig: f.walletCfg,
		WalletHandle: int(f.wallet),
		PoolHandle:   int(f.pool),
		DID:          f.did,
		VerKey:       f.verkey,
	}
}

func (f *Fixture) String() string {
	return dto.ToJSON(f.Info())
}

// Close releases the fixture's resources. Only the first call releases, and
// the following calls return the same result. The wallet is closed and
// deleted first, then the pool is closed, and finally the namespace is
// cleaned up. A failing step doesn't stop the rest of the steps, and all of
// the errors are returned.
func (f *Fixture) Close() error {
	f.once.Do(func() {
		f.closeErr = f.release()
	})
	return f.closeErr
}

func (f *Fixture) release() error {
	var errs []error
	if f.wallet.Valid() {
		if glog.V(3) {
			glog.Infof("%s: close and delete %s", f.name, f.wallet)
		}
		if err := f.env.Wallets.CloseAndDelete(f.wallet, f.walletCfg); err != nil {
			errs = append(errs, &StepError{Recipe: f.recipe, Step: "release wallet", Err: err})
		}
	}
	if f.pool.Valid() {
		if glog.V(3) {
			glog.Infof("%s: close %s", f.name, f.pool)
		}
		if err := f.env.Pools.Close(f.pool); err != nil {
			errs = append(errs, &StepError{Recipe: f.recipe, Step: "release pool", Err: err})
		}
	}
	if err := f.env.Storage.Cleanup(f.name); err != nil {
		errs = append(errs, &StepError{Recipe: f.recipe, Step: "release namespace", Err: err})
	}
	return errors.Join(errs...)
}
