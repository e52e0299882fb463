/*
Package namespace removes the storage artifacts of a fixture namespace. The
artifacts of the name N are the dirs named N in the wallet, pool, plugged and
tmp dirs under <base>/.indy_client/.

Cleanup is idempotent. Sweep finds namespaces left behind by crashed test
runs and cleans them up.
*/
package namespace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

type Storage struct{}

func New() *Storage {
	return &Storage{}
}

// Dirs returns the storage dirs which may hold artifacts of a namespace.
func Dirs() []string {
	return []string{
		ssi.WalletPath(),
		ssi.PoolPath(),
		ssi.PluggedPath(),
		filepath.Join(utils.Settings.ClientDir(), "tmp"),
	}
}

// Cleanup removes everything stored under the name. Removing a name which
// has nothing stored is not an error.
func (s *Storage) Cleanup(name string) (err error) {
	defer err2.Handle(&err, "cleanup %s", name)

	try.To(ssi.ValidateWalletID(name))
	for _, dir := range Dirs() {
		try.To(os.RemoveAll(filepath.Join(dir, name)))
	}
	if glog.V(5) {
		glog.Infoln("namespace cleaned:", name)
	}
	return nil
}

// Stale is a namespace found by Find.
type Stale struct {
	Name     string
	Modified time.Time
}

// Find returns the fixture namespaces which haven't been modified during
// maxAge. Only names made by utils.NewName are returned.
func (s *Storage) Find(maxAge time.Duration) (stale []Stale, err error) {
	defer err2.Handle(&err, "find stale namespaces")

	found := make(map[string]time.Time)
	for _, dir := range Dirs() {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		try.To(err)
		for _, e := range entries {
			if !utils.IsName(e.Name()) {
				continue
			}
			info, err := e.Info()
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			try.To(err)
			if m, ok := found[e.Name()]; !ok || info.ModTime().After(m) {
				found[e.Name()] = info.ModTime()
			}
		}
	}

	limit := time.Now().Add(-maxAge)
	for name, m := range found {
		if m.Before(limit) {
			stale = append(stale, Stale{Name: name, Modified: m})
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		return stale[i].Name < stale[j].Name
	})
	return stale, nil
}

// Sweep cleans up the namespaces which Find returns. With dryRun nothing is
// removed. The names found are returned in both cases.
func (s *Storage) Sweep(maxAge time.Duration, dryRun bool) (names []string, err error) {
	defer err2.Handle(&err, "sweep")

	for _, st := range try.To1(s.Find(maxAge)) {
		if !dryRun {
			try.To(s.Cleanup(st.Name))
		}
		names = append(names, st.Name)
	}
	if len(names) > 0 && glog.V(1) {
		glog.Infof("swept %d namespaces (dry run: %v)", len(names), dryRun)
	}
	return names, nil
}
