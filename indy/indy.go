//go:build indy

// Package indy implements the fixture services with libindy through
// findy-wrapper-go. The package is built with the indy build tag because it
// needs libindy to link.
//
// libindy stores wallets and pool configs under $HOME/.indy_client, so the
// base dir of utils.Settings must be the user's home dir. Pools are created
// from the genesis file of utils.Settings.
package indy

import (
	"github.com/findy-network/findy-fixture/agent/namespace"
	"github.com/findy-network/findy-fixture/agent/payment"
	"github.com/findy-network/findy-fixture/fixture"
)

// Env returns the fixture Env of the libindy services.
func Env() *fixture.Env {
	return &fixture.Env{
		Wallets:  NewWallets(),
		Pools:    NewPools(),
		DIDs:     NewDIDs(),
		Payments: payment.Default(),
		Storage:  namespace.New(),
	}
}
