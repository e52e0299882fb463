// Package provision builds a fixture from the command line. The fixture's
// resources are released before the command returns unless the command holds
// them until it is interrupted.
package provision

import (
	"context"
	"fmt"
	"io"

	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-fixture/cmds"
	"github.com/findy-network/findy-fixture/fixture"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

type Cmd struct {
	Recipe string
	Role   string
	Seed   string
	Hold   bool

	// Backend is the name of the registered backend, native by default.
	Backend string
}

func (c Cmd) Validate() (err error) {
	defer err2.Handle(&err)

	if !fixture.IsRecipe(c.Recipe) {
		return fmt.Errorf("%w: %s", fixture.ErrUnknownRecipe, c.Recipe)
	}
	try.To(ssi.ValidateRole(c.Role))
	try.To(ssi.ValidateSeed(c.Seed))
	return nil
}

func (c Cmd) options() []fixture.Option {
	opts := make([]fixture.Option, 0, 2)
	if c.Role != "" {
		opts = append(opts, fixture.WithRole(c.Role))
	}
	if c.Seed != "" {
		opts = append(opts, fixture.WithSeed(c.Seed))
	}
	return opts
}

func (c Cmd) Exec(w io.Writer) (r cmds.Result, err error) {
	return c.ExecContext(context.Background(), w)
}

// ExecContext builds the fixture and prints its info. When Hold is set the
// fixture is kept until ctx is done.
func (c Cmd) ExecContext(ctx context.Context, w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "provision %s", c.Recipe)

	backend := c.Backend
	if backend == "" {
		backend = cmds.BackendNative
	}
	env := try.To1(cmds.Backend(backend))
	f := try.To1(env.Build(c.Recipe, c.options()...))
	defer err2.Handle(&err, func(err error) error {
		if closeErr := f.Close(); closeErr != nil {
			glog.Warningf("release %s: %v", f.Name(), closeErr)
		}
		return err
	})

	r = cmds.JSONResult{V: f.Info()}
	try.To(cmds.PrintResult(w, r))

	if c.Hold {
		if glog.V(1) {
			glog.Infof("holding fixture %s", f.Name())
		}
		<-ctx.Done()
	}
	try.To(f.Close())
	return r, nil
}
