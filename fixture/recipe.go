package fixture

import (
	"sort"

	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Recipe names of the catalog.
const (
	RecipeEmpty                 = "empty"
	RecipeWallet                = "wallet"
	RecipePluggedWallet         = "plugged_wallet"
	RecipePool                  = "pool"
	RecipeWalletAndPool         = "wallet_and_pool"
	RecipeTrustee               = "trustee"
	RecipeTrusteeFullyQualified = "trustee_fully_qualified"
	RecipeSteward               = "steward"
	RecipeEndorser              = "endorser"
	RecipeNewIdentity           = "new_identity"
	RecipeDID                   = "did"
	RecipeDIDFullyQualified     = "did_fully_qualified"
	RecipeKey                   = "key"
	RecipePayment               = "payment"
	RecipePaymentWallet         = "payment_wallet"
)

func walletAndPool() []step {
	return []step{namespaceStep(), walletStep(), poolStep()}
}

func withWallet(steps ...step) []step {
	return append([]step{namespaceStep(), walletStep()}, steps...)
}

var catalog = map[string][]step{
	RecipeEmpty:                 {namespaceStep()},
	RecipeWallet:                withWallet(),
	RecipePluggedWallet:         {namespaceStep(), pluggedWalletStep()},
	RecipePool:                  {namespaceStep(), poolStep()},
	RecipeWalletAndPool:         walletAndPool(),
	RecipeTrustee:               append(walletAndPool(), didStep(ssi.TrusteeSeed, false)),
	RecipeTrusteeFullyQualified: append(walletAndPool(), didStep(ssi.TrusteeSeed, true)),
	RecipeSteward:               append(walletAndPool(), didStep(ssi.StewardSeed, false)),
	RecipeEndorser:              append(walletAndPool(), publishedDIDStep(ssi.RoleEndorser)),
	RecipeNewIdentity:           append(walletAndPool(), publishedDIDStep(ssi.RoleTrustee)),
	RecipeDID:                   withWallet(didStep("", false)),
	RecipeDIDFullyQualified:     withWallet(didStep("", true)),
	RecipeKey:                   withWallet(keyStep()),
	RecipePayment:               {namespaceStep(), paymentStep()},
	RecipePaymentWallet:         withWallet(paymentStep()),
}

// Recipes returns the recipe names of the catalog in sorted order.
func Recipes() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRecipe tells if the name is in the catalog.
func IsRecipe(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Build builds a fixture with the named recipe. The caller owns the fixture
// and must Close it. If a step fails, the resources of the earlier steps
// are released and the error of the failing step is returned.
func (e *Env) Build(recipe string, opts ...Option) (f *Fixture, err error) {
	defer err2.Handle(&err)

	steps, ok := catalog[recipe]
	if !ok {
		return nil, &StepError{Recipe: recipe, Step: "catalog", Err: ErrUnknownRecipe}
	}
	try.To(e.validate())

	b := &builder{
		env:    e,
		recipe: recipe,
		f:      &Fixture{recipe: recipe, env: e},
	}
	for _, o := range opts {
		o(&b.opts)
	}
	return b.build(steps)
}
