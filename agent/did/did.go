// Package did creates DIDs and keys to the wallets of the wallet package and
// publishes DIDs to the ledger of the ledger package.
package did

import (
	"errors"

	"github.com/findy-network/findy-fixture/agent/ledger"
	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-fixture/agent/wallet"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var ErrDIDExists = errors.New("did already in the wallet")

type Service struct {
	wallets *wallet.Service
	pools   *ledger.Service
}

func New(wallets *wallet.Service, pools *ledger.Service) *Service {
	return &Service{wallets: wallets, pools: pools}
}

// CreateAndStore creates a DID and stores it with its key to the wallet. An
// empty seed creates a fresh DID. A qualified DID is returned in did:sov:
// form.
func (s *Service) CreateAndStore(
	w managed.WalletHandle,
	seed string,
	qualified bool,
) (did, verkey string, err error) {
	defer err2.Handle(&err, "create and store did")

	kp := try.To1(ssi.NewKeyPair(seed))
	try.To(s.store(w, kp, qualified))

	did = kp.Did()
	if qualified {
		did = ssi.Qualify(did)
	}
	if glog.V(3) {
		glog.Infof("did %s stored to %s", did, w)
	}
	return did, kp.VerKey(), nil
}

// CreateStorePublish creates a DID to the wallet and writes it to the ledger
// with the role. The NYM is submitted by the trustee whose DID is stored to
// the same wallet if it isn't there yet.
func (s *Service) CreateStorePublish(
	w managed.WalletHandle,
	p managed.PoolHandle,
	role, seed string,
) (did, verkey string, err error) {
	defer err2.Handle(&err, "create, store and publish did")

	try.To(ssi.ValidateRole(role))
	trustee := try.To1(s.signer(w, ssi.TrusteeSeed))
	kp := try.To1(ssi.NewKeyPair(seed))
	try.To(s.store(w, kp, false))

	req := ledger.NewNymRequest(trustee.Did(), kp.Did(), kp.VerKey(), role)
	try.To1(s.pools.WriteNym(p, req.Sign(trustee)))

	if glog.V(3) {
		glog.Infof("did %s published with role %q", kp.Did(), role)
	}
	return kp.Did(), kp.VerKey(), nil
}

// CreateKey creates a key pair to the wallet without a DID.
func (s *Service) CreateKey(w managed.WalletHandle, seed string) (verkey string, err error) {
	defer err2.Handle(&err, "create key")

	kp := try.To1(ssi.NewKeyPair(seed))
	try.To(s.wallets.StoreKey(w, wallet.Key{VerKey: kp.VerKey(), Secret: kp.Seed}))
	return kp.VerKey(), nil
}

// KeyPair returns the key pair of our DID from the wallet.
func (s *Service) KeyPair(w managed.WalletHandle, did string) (kp *ssi.KeyPair, err error) {
	defer err2.Handle(&err, "key pair of %s", did)

	rec := try.To1(s.wallets.DID(w, ssi.Unqualify(did)))
	k := try.To1(s.wallets.Key(w, rec.VerKey))
	return ssi.KeyPairFromSeed(k.Secret), nil
}

func (s *Service) store(w managed.WalletHandle, kp *ssi.KeyPair, qualified bool) (err error) {
	defer err2.Handle(&err)

	_, err = s.wallets.DID(w, kp.Did())
	switch {
	case err == nil:
		return ErrDIDExists
	case !errors.Is(err, wallet.ErrNotFound):
		return err
	}
	try.To(s.wallets.StoreKey(w, wallet.Key{VerKey: kp.VerKey(), Secret: kp.Seed}))
	return s.wallets.StoreDID(w, wallet.DIDRecord{
		Did:       kp.Did(),
		VerKey:    kp.VerKey(),
		Qualified: qualified,
	})
}

// signer returns the key pair of the seeded DID from the wallet and stores
// it first when needed.
func (s *Service) signer(w managed.WalletHandle, seed string) (kp *ssi.KeyPair, err error) {
	defer err2.Handle(&err, "signer")

	kp = try.To1(ssi.NewKeyPair(seed))
	err = s.store(w, kp, false)
	if err != nil && !errors.Is(err, ErrDIDExists) {
		return nil, err
	}
	return s.KeyPair(w, kp.Did())
}
