package fixture

import (
	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/golang/glog"
)

// Option modifies a recipe's defaults.
type Option func(*options)

type options struct {
	role    string
	roleSet bool
	seed    string
}

// WithRole sets the ledger role of the published DID. An empty role
// publishes a DID without a role.
func WithRole(role string) Option {
	return func(o *options) {
		o.role = role
		o.roleSet = true
	}
}

// WithSeed sets the seed of the fresh DID or key of the recipe. Recipes with
// a well-known seed ignore it.
func WithSeed(seed string) Option {
	return func(o *options) {
		o.seed = seed
	}
}

type builder struct {
	env    *Env
	opts   options
	f      *Fixture
	recipe string
}

type step struct {
	name string
	run  func(b *builder) error
}

func namespaceStep() step {
	return step{"namespace", func(b *builder) error {
		b.f.name = utils.NewName()
		return b.env.Storage.Cleanup(b.f.name)
	}}
}

// setWallet stores the opened wallet only when the open succeeded. A
// failed open owns nothing which rollback could release.
func (b *builder) setWallet(h managed.WalletHandle, cfg string, err error) error {
	if err != nil {
		return err
	}
	b.f.wallet, b.f.walletCfg = h, cfg
	return nil
}

func walletStep() step {
	return step{"wallet", func(b *builder) error {
		return b.setWallet(b.env.Wallets.OpenDefault(b.f.name))
	}}
}

func pluggedWalletStep() step {
	return step{"plugged wallet", func(b *builder) error {
		return b.setWallet(b.env.Wallets.OpenPlugged(b.f.name))
	}}
}

func poolStep() step {
	return step{"pool", func(b *builder) error {
		h, err := b.env.Pools.Open(b.f.name)
		if err != nil {
			return err
		}
		b.f.pool = h
		return nil
	}}
}

// didStep creates a DID from the seed. An empty seed makes a fresh DID which
// WithSeed can override.
func didStep(seed string, qualified bool) step {
	return step{"did", func(b *builder) (err error) {
		if !b.f.wallet.Valid() {
			return ErrNoWallet
		}
		s := seed
		if s == "" {
			s = b.opts.seed
		}
		b.f.did, b.f.verkey, err = b.env.DIDs.CreateAndStore(b.f.wallet, s, qualified)
		return err
	}}
}

func publishedDIDStep(role string) step {
	return step{"published did", func(b *builder) (err error) {
		if !b.f.wallet.Valid() {
			return ErrNoWallet
		}
		if !b.f.pool.Valid() {
			return ErrNoPool
		}
		r := role
		if b.opts.roleSet {
			r = b.opts.role
		}
		b.f.did, b.f.verkey, err = b.env.DIDs.CreateStorePublish(
			b.f.wallet, b.f.pool, r, b.opts.seed)
		return err
	}}
}

func keyStep() step {
	return step{"key", func(b *builder) (err error) {
		if !b.f.wallet.Valid() {
			return ErrNoWallet
		}
		b.f.verkey, err = b.env.DIDs.CreateKey(b.f.wallet, b.opts.seed)
		return err
	}}
}

func paymentStep() step {
	return step{"payment", func(b *builder) error {
		return b.env.Payments.Init()
	}}
}

// build runs the steps in order. The first failing step stops the build, and
// the resources the earlier steps created are released before the step's
// error is returned.
func (b *builder) build(steps []step) (*Fixture, error) {
	for _, s := range steps {
		if glog.V(3) {
			glog.Infof("fixture %s: %s", b.recipe, s.name)
		}
		if err := s.run(b); err != nil {
			b.rollback()
			return nil, &StepError{Recipe: b.recipe, Step: s.name, Err: err}
		}
	}
	if glog.V(5) {
		glog.Infof("fixture %s built: %s", b.recipe, b.f)
	}
	return b.f, nil
}

func (b *builder) rollback() {
	if b.f.name == "" {
		return
	}
	if err := b.f.Close(); err != nil {
		glog.Warningf("fixture %s rollback: %v", b.recipe, err)
	}
}
