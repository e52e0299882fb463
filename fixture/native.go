package fixture

import (
	"github.com/findy-network/findy-fixture/agent/did"
	"github.com/findy-network/findy-fixture/agent/ledger"
	"github.com/findy-network/findy-fixture/agent/namespace"
	"github.com/findy-network/findy-fixture/agent/payment"
	"github.com/findy-network/findy-fixture/agent/wallet"
)

// Native returns an Env of the pure Go services. Wallets and pool ledgers
// are stored under utils.Settings.BaseDir().
func Native() *Env {
	wallets := wallet.New()
	pools := ledger.New()
	return &Env{
		Wallets:  wallets,
		Pools:    pools,
		DIDs:     did.New(wallets, pools),
		Payments: payment.Default(),
		Storage:  namespace.New(),
	}
}
