package fixture

import (
	"testing"

	"github.com/golang/glog"
)

// New builds a fixture with the recipe for the test. A failing build fails
// the test with tb.Fatalf. The fixture is released when the test and its
// subtests have completed. Release errors are logged but they don't fail
// the test.
func (e *Env) New(tb testing.TB, recipe string, opts ...Option) *Fixture {
	tb.Helper()

	f, err := e.Build(recipe, opts...)
	if err != nil {
		tb.Fatalf("cannot build fixture: %v", err)
	}
	tb.Cleanup(func() {
		if err := f.Close(); err != nil {
			tb.Logf("fixture %s release: %v", f.Name(), err)
			glog.Warningf("fixture %s release: %v", f.Name(), err)
		}
	})
	return f
}

func (e *Env) Empty(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeEmpty)
}

func (e *Env) Wallet(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeWallet)
}

func (e *Env) PluggedWallet(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipePluggedWallet)
}

func (e *Env) Pool(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipePool)
}

func (e *Env) WalletAndPool(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeWalletAndPool)
}

func (e *Env) Trustee(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeTrustee)
}

func (e *Env) TrusteeFullyQualified(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeTrusteeFullyQualified)
}

func (e *Env) Steward(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeSteward)
}

// Endorser publishes a DID with the ENDORSER role. WithRole changes the
// role.
func (e *Env) Endorser(tb testing.TB, opts ...Option) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeEndorser, opts...)
}

// NewIdentity publishes a DID with the TRUSTEE role. WithRole changes the
// role.
func (e *Env) NewIdentity(tb testing.TB, opts ...Option) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeNewIdentity, opts...)
}

func (e *Env) DID(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeDID)
}

func (e *Env) DIDFullyQualified(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeDIDFullyQualified)
}

func (e *Env) Key(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipeKey)
}

func (e *Env) Payment(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipePayment)
}

func (e *Env) PaymentWallet(tb testing.TB) *Fixture {
	tb.Helper()
	return e.New(tb, RecipePaymentWallet)
}

func Empty(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().Empty(tb)
}

func Wallet(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().Wallet(tb)
}

func PluggedWallet(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().PluggedWallet(tb)
}

func Pool(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().Pool(tb)
}

func WalletAndPool(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().WalletAndPool(tb)
}

func Trustee(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().Trustee(tb)
}

func TrusteeFullyQualified(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().TrusteeFullyQualified(tb)
}

func Steward(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().Steward(tb)
}

func Endorser(tb testing.TB, opts ...Option) *Fixture {
	tb.Helper()
	return Default().Endorser(tb, opts...)
}

func NewIdentity(tb testing.TB, opts ...Option) *Fixture {
	tb.Helper()
	return Default().NewIdentity(tb, opts...)
}

func DID(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().DID(tb)
}

func DIDFullyQualified(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().DIDFullyQualified(tb)
}

func Key(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().Key(tb)
}

func Payment(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().Payment(tb)
}

func PaymentWallet(tb testing.TB) *Fixture {
	tb.Helper()
	return Default().PaymentWallet(tb)
}
