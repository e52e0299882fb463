//go:build indy

package indy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/findy-network/findy-fixture/fixture"
	"github.com/lainio/err2/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseDir    string
	genesisTxn = os.Getenv("FFIX_GENESIS_TXN_FILE")
)

func TestMain(m *testing.M) {
	setUp()
	code := m.Run()
	tearDown()
	os.Exit(code)
}

func setUp() {
	var err error
	baseDir, err = os.MkdirTemp("", "indy-test")
	if err != nil {
		panic(err)
	}
	// libindy uses $HOME/.indy_client
	_ = os.Setenv("HOME", baseDir)
	utils.Settings.SetBaseDir(baseDir)
	utils.Settings.SetGenesisTxnFile(genesisTxn)
}

func tearDown() {
	utils.Settings.Reset()
	_ = os.RemoveAll(baseDir)
}

func TestEnv_Wallets(t *testing.T) {
	env := Env()
	for _, recipe := range []string{fixture.RecipeWallet, fixture.RecipePluggedWallet} {
		t.Run(recipe, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			f, err := env.Build(recipe)
			assert.NoError(err)
			assert.That(f.WalletHandle().Valid())
			cfg, err := ssi.ParseWalletCfg(f.WalletConfig())
			assert.NoError(err)
			_, err = os.Stat(cfg.Dir())
			assert.NoError(err)

			assert.NoError(f.Close())
			_, err = os.Stat(cfg.Dir())
			assert.That(os.IsNotExist(err))
		})
	}
}

func TestEnv_DIDs(t *testing.T) {
	env := Env()

	f := env.New(t, fixture.RecipeWallet)
	id, verkey, err := env.DIDs.CreateAndStore(f.WalletHandle(), ssi.TrusteeSeed, false)
	require.NoError(t, err)
	require.Equal(t, "V4SGRU86Z58d6TV7PBUe6f", id)
	require.Equal(t, "GJ1SzoWzavQYfNL9XkaJdrQejfztN4XqdsiV4ct3LXKL", verkey)

	f = env.DIDFullyQualified(t)
	require.True(t, ssi.IsQualified(f.DID()))

	f = env.Key(t)
	require.NotEmpty(t, f.VerKey())
	require.Empty(t, f.DID())
}

func TestEnv_Wallets_CloseTwice(t *testing.T) {
	w := NewWallets()
	h, cfgJSON, err := w.OpenDefault(utils.NewName())
	require.NoError(t, err)
	require.NoError(t, w.CloseAndDelete(h, cfgJSON))
	require.ErrorIs(t, w.CloseAndDelete(h, cfgJSON), ErrInvalidHandle)
}

func TestEnv_Pool(t *testing.T) {
	if genesisTxn == "" {
		t.Skip("FFIX_GENESIS_TXN_FILE is not set")
	}
	env := Env()

	f, err := env.Build(fixture.RecipeEndorser)
	require.NoError(t, err)
	require.True(t, f.PoolHandle().Valid())
	require.NotEmpty(t, f.DID())
	require.NoError(t, f.Close())

	_, err = os.Stat(filepath.Join(ssi.PoolPath(), f.Name()))
	require.True(t, os.IsNotExist(err))
}

func TestEnv_Pool_NoGenesis(t *testing.T) {
	utils.Settings.SetGenesisTxnFile("")
	defer utils.Settings.SetGenesisTxnFile(genesisTxn)

	_, err := Env().Build(fixture.RecipePool)
	require.ErrorIs(t, err, ErrNoGenesis)
}
