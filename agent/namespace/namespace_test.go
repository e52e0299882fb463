package namespace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/lainio/err2/assert"
	"github.com/stretchr/testify/require"
)

var baseDir string

func TestMain(m *testing.M) {
	setUp()
	code := m.Run()
	tearDown()
	os.Exit(code)
}

func setUp() {
	var err error
	baseDir, err = os.MkdirTemp("", "namespace-test")
	if err != nil {
		panic(err)
	}
	utils.Settings.SetBaseDir(baseDir)
}

func tearDown() {
	utils.Settings.Reset()
	_ = os.RemoveAll(baseDir)
}

func makeArtifacts(t *testing.T, name string, mtime time.Time) {
	for _, dir := range []string{ssi.WalletPath(), ssi.PoolPath()} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(path, 0700))
		require.NoError(t, os.WriteFile(filepath.Join(path, "data"), []byte("x"), 0600))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestStorage_Cleanup(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	s := New()
	name := utils.NewName()
	makeArtifacts(t, name, time.Now())
	assert.That(exists(filepath.Join(ssi.WalletPath(), name)))

	assert.NoError(s.Cleanup(name))
	assert.That(!exists(filepath.Join(ssi.WalletPath(), name)))
	assert.That(!exists(filepath.Join(ssi.PoolPath(), name)))

	// idempotent, and unused names are fine
	assert.NoError(s.Cleanup(name))
	assert.NoError(s.Cleanup(utils.NewName()))
}

func TestStorage_Cleanup_InvalidName(t *testing.T) {
	s := New()
	for _, name := range []string{"", ".", "..", "../wallet", "a/b"} {
		require.Error(t, s.Cleanup(name), "name %q", name)
	}
	require.True(t, exists(baseDir))
}

func TestStorage_FindAndSweep(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	s := New()
	old := utils.NewName()
	fresh := utils.NewName()
	makeArtifacts(t, old, time.Now().Add(-3*time.Hour))
	makeArtifacts(t, fresh, time.Now())

	foreign := filepath.Join(ssi.WalletPath(), "my_own_wallet")
	assert.NoError(os.MkdirAll(foreign, 0700))
	past := time.Now().Add(-24 * time.Hour)
	assert.NoError(os.Chtimes(foreign, past, past))

	stale, err := s.Find(time.Hour)
	assert.NoError(err)
	assert.Equal(len(stale), 1)
	assert.Equal(stale[0].Name, old)

	names, err := s.Sweep(time.Hour, true)
	assert.NoError(err)
	assert.Equal(len(names), 1)
	assert.That(exists(filepath.Join(ssi.WalletPath(), old)), "dry run removes nothing")

	names, err = s.Sweep(time.Hour, false)
	assert.NoError(err)
	assert.Equal(len(names), 1)
	assert.That(!exists(filepath.Join(ssi.WalletPath(), old)))
	assert.That(exists(filepath.Join(ssi.WalletPath(), fresh)))
	assert.That(exists(foreign))

	names, err = s.Sweep(time.Hour, false)
	assert.NoError(err)
	assert.Equal(len(names), 0)

	assert.NoError(s.Cleanup(fresh))
}
