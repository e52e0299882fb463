/*
Package janitor sweeps stale fixture namespaces periodically. Test runs which
crash skip the releasing of their fixtures, and the janitor removes what they
left behind once it's older than the max age.
*/
package janitor

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/findy-network/findy-fixture/agent/namespace"
	"github.com/findy-network/findy-fixture/cmds"
	"github.com/go-co-op/gocron"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var ErrInterval = errors.New("interval must be positive")

type Cmd struct {
	Interval time.Duration
	MaxAge   time.Duration
	Once     bool
	DryRun   bool
}

// Result is the list of the swept namespace names.
type Result struct {
	Swept []string `json:"swept"`
}

func (r *Result) JSON() ([]byte, error) {
	return cmds.JSONResult{V: r}.JSON()
}

func (c Cmd) Validate() error {
	if c.MaxAge <= 0 {
		return cmds.ErrInvalid
	}
	if !c.Once && c.Interval <= 0 {
		return ErrInterval
	}
	return nil
}

func (c Cmd) Exec(w io.Writer) (r cmds.Result, err error) {
	return c.ExecContext(context.Background(), w)
}

// ExecContext sweeps once, or every Interval until ctx is done.
func (c Cmd) ExecContext(ctx context.Context, w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "janitor")

	s := namespace.New()
	res := &Result{}
	var l sync.Mutex
	sweep := func() {
		defer err2.Catch(err2.Err(func(err error) {
			glog.Errorf("sweep: %v", err)
		}))

		names, err := s.Sweep(c.MaxAge, c.DryRun)
		if err != nil {
			glog.Errorf("sweep: %v", err)
			return
		}
		l.Lock()
		defer l.Unlock()
		for _, name := range names {
			cmds.Fprintln(w, name)
		}
		res.Swept = append(res.Swept, names...)
	}

	if c.Once {
		sweep()
		return res, nil
	}

	cron := gocron.NewScheduler(time.Now().Location())
	cron.SingletonModeAll()
	try.To1(cron.Every(c.Interval).Do(sweep))
	cron.StartAsync()
	if glog.V(1) {
		glog.Infof("janitor started, interval %v max age %v", c.Interval, c.MaxAge)
	}

	<-ctx.Done()
	cron.Stop()

	l.Lock()
	defer l.Unlock()
	return res, nil
}
