// Package cleanup removes the storage artifacts of fixture namespaces by name.
package cleanup

import (
	"io"

	"github.com/findy-network/findy-fixture/agent/namespace"
	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-fixture/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

type Cmd struct {
	Names []string
}

func (c Cmd) Validate() (err error) {
	defer err2.Handle(&err)

	if len(c.Names) == 0 {
		return cmds.ErrInvalid
	}
	for _, name := range c.Names {
		try.To(ssi.ValidateWalletID(name))
	}
	return nil
}

func (c Cmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err)

	s := namespace.New()
	for _, name := range c.Names {
		try.To(s.Cleanup(name))
		cmds.Fprintln(w, name)
	}
	return cmds.JSONResult{V: c.Names}, nil
}
