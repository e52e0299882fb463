//go:build indy

package cmd

import (
	"github.com/findy-network/findy-fixture/cmds"
	"github.com/findy-network/findy-fixture/indy"
)

const backendIndy = "indy"

func init() {
	cmds.RegisterBackend(backendIndy, indy.Env)
}
