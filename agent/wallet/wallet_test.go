package wallet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/findy-network/findy-fixture/agent/managed"
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
	baseDir, err = os.MkdirTemp("", "wallet-test")
	if err != nil {
		panic(err)
	}
	utils.Settings.SetBaseDir(baseDir)
}

func tearDown() {
	utils.Settings.Reset()
	_ = os.RemoveAll(baseDir)
}

func TestService_OpenDefault(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	s := New()
	name := utils.NewName()
	h, cfgJSON, err := s.OpenDefault(name)
	assert.NoError(err)
	assert.That(h.Valid())
	assert.NotEmpty(cfgJSON)
	assert.Equal(s.OpenCount(), 1)

	cfg, err := ssi.ParseWalletCfg(cfgJSON)
	assert.NoError(err)
	assert.Equal(cfg.ID(), name)
	_, err = os.Stat(filepath.Join(cfg.Dir(), StorageFilename))
	assert.NoError(err)

	assert.NoError(s.CloseAndDelete(h, cfgJSON))
	assert.Equal(s.OpenCount(), 0)
	_, err = os.Stat(cfg.Dir())
	assert.That(os.IsNotExist(err), "wallet dir must be removed")
}

func TestService_OpenPlugged(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	s := New()
	name := utils.NewName()
	h, cfgJSON, err := s.OpenPlugged(name)
	assert.NoError(err)
	assert.That(h.Valid())

	cfg, err := ssi.ParseWalletCfg(cfgJSON)
	assert.NoError(err)
	assert.That(cfg.Plugged())
	assert.That(s.Exists(cfg))
	_, err = os.Stat(cfg.Dir())
	assert.That(os.IsNotExist(err), "plugged wallet leaves no files")

	assert.NoError(s.CloseAndDelete(h, cfgJSON))
	assert.That(!s.Exists(cfg))
}

func TestService_HandlesAreUnique(t *testing.T) {
	s := New()
	seen := make(map[managed.WalletHandle]struct{})
	for i := 0; i < 5; i++ {
		h, cfgJSON, err := s.OpenDefault(utils.NewName())
		require.NoError(t, err)
		_, dup := seen[h]
		require.False(t, dup, "handle reused: %s", h)
		seen[h] = struct{}{}
		require.NoError(t, s.CloseAndDelete(h, cfgJSON))
	}
}

func TestService_Errors(t *testing.T) {
	s := New()
	name := utils.NewName()
	cfg := ssi.NewFixtureWalletCfg(name)

	_, err := s.Open(cfg)
	require.True(t, errors.Is(err, ErrNotExists), "got %v", err)

	require.NoError(t, s.Create(cfg))
	err = s.Create(cfg)
	require.True(t, errors.Is(err, ErrAlreadyExists), "got %v", err)

	h, err := s.Open(cfg)
	require.NoError(t, err)
	_, err = s.Open(cfg)
	require.True(t, errors.Is(err, ErrAlreadyOpen), "got %v", err)

	err = s.Delete(cfg)
	require.True(t, errors.Is(err, ErrStillOpen), "got %v", err)

	other := ssi.NewFixtureWalletCfg(utils.NewName())
	err = s.CloseAndDelete(h, other.JSON())
	require.True(t, errors.Is(err, ErrConfigMismatch), "got %v", err)

	require.NoError(t, s.CloseAndDelete(h, cfg.JSON()))

	// second release of the same handle must not succeed silently
	err = s.CloseAndDelete(h, cfg.JSON())
	require.True(t, errors.Is(err, ErrInvalidHandle), "got %v", err)
	err = s.Close(managed.InvalidWallet)
	require.True(t, errors.Is(err, ErrInvalidHandle), "got %v", err)
}

func TestService_Records(t *testing.T) {
	for _, plugged := range []bool{false, true} {
		s := New()
		open := s.OpenDefault
		if plugged {
			open = s.OpenPlugged
		}
		h, cfgJSON, err := open(utils.NewName())
		require.NoError(t, err)

		k := Key{VerKey: "GJ1SzoWzavQYfNL9XkaJdrQejfztN4XqdsiV4ct3LXKL", Secret: []byte(ssi.TrusteeSeed)}
		require.NoError(t, s.StoreKey(h, k))
		got, err := s.Key(h, k.VerKey)
		require.NoError(t, err)
		require.Equal(t, k, *got)

		d := DIDRecord{Did: "V4SGRU86Z58d6TV7PBUe6f", VerKey: k.VerKey}
		require.NoError(t, s.StoreDID(h, d))
		gotDID, err := s.DID(h, d.Did)
		require.NoError(t, err)
		require.Equal(t, d, *gotDID)

		_, err = s.DID(h, "unknown")
		require.True(t, errors.Is(err, ErrNotFound), "got %v", err)

		require.NoError(t, s.CloseAndDelete(h, cfgJSON))
		_, err = s.Key(h, k.VerKey)
		require.True(t, errors.Is(err, ErrInvalidHandle), "got %v", err)
	}
}

func TestStorageKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		method  string
		wantErr bool
	}{
		{"raw", utils.DefaultWalletKey, KeyMethodRaw, false},
		{"raw default method", utils.DefaultWalletKey, "", false},
		{"raw too short", "6cih1cVgRH8y", KeyMethodRaw, true},
		{"raw not base58", "0OIl", KeyMethodRaw, true},
		{"argon2i int", "passphrase", KeyMethodArgon2IT, false},
		{"unknown", "passphrase", "SCRYPT", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := storageKey("id", tt.key, tt.method)
			if (err != nil) != tt.wantErr {
				t.Fatalf("storageKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(k) != storageKeyLen {
				t.Errorf("storageKey() len = %d", len(k))
			}
		})
	}
}

func TestService_Open_WrongKey(t *testing.T) {
	s := New()
	cfg := ssi.NewRawWalletCfg(utils.NewName(), "right key")
	cfg.Credentials.KeyDerivationMethod = KeyMethodArgon2IT
	require.NoError(t, s.Create(cfg))

	wrong := *cfg
	wrong.Credentials.Key = "wrong key"
	_, err := s.Open(&wrong)
	require.Error(t, err)
	require.Equal(t, 0, s.OpenCount())

	// the store of the failed open is closed, so the file isn't locked
	h, err := s.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.CloseAndDelete(h, cfg.JSON()))
}
