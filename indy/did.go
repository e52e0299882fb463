//go:build indy

package indy

import (
	"github.com/findy-network/findy-fixture/agent/managed"
	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-wrapper-go"
	"github.com/findy-network/findy-wrapper-go/did"
	"github.com/findy-network/findy-wrapper-go/ledger"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// DIDs is the libindy DID service.
type DIDs struct{}

func NewDIDs() *DIDs {
	return &DIDs{}
}

// CreateAndStore creates the DID to the wallet. The qualified DID is
// returned in did:sov: form.
func (s *DIDs) CreateAndStore(
	w managed.WalletHandle,
	seed string,
	qualified bool,
) (id, verkey string, err error) {
	defer err2.Handle(&err, "create and store did")

	try.To(ssi.ValidateSeed(seed))
	id, verkey = NewFuture(did.CreateAndStore(int(w), did.Did{Seed: seed})).Strs()
	if qualified {
		id = ssi.Qualify(id)
	}
	return id, verkey, nil
}

// CreateStorePublish creates the DID to the wallet and writes it to the
// ledger with the role. The trustee DID is created to the same wallet to
// submit the NYM.
func (s *DIDs) CreateStorePublish(
	w managed.WalletHandle,
	p managed.PoolHandle,
	role, seed string,
) (id, verkey string, err error) {
	defer err2.Handle(&err, "create, store and publish did")

	try.To(ssi.ValidateRole(role))
	trustee := try.To1(s.trustee(w))
	id, verkey = try.To2(s.CreateAndStore(w, seed, false))

	if role == "" {
		role = findy.NullString
	}
	try.To(ledger.WriteDID(int(p), int(w), trustee, id, verkey, findy.NullString, role))
	if glog.V(3) {
		glog.Infof("did %s published with role %s", id, role)
	}
	return id, verkey, nil
}

// trustee stores the trustee DID to the wallet if it isn't there yet.
func (s *DIDs) trustee(w managed.WalletHandle) (id string, err error) {
	defer err2.Handle(&err, "trustee did")

	kp := try.To1(ssi.NewKeyPair(ssi.TrusteeSeed))
	if err := NewFuture(did.CreateAndStore(int(w), did.Did{Seed: ssi.TrusteeSeed})).Err(); err != nil {
		// it must be in the wallet already
		try.To(NewFuture(did.LocalKey(int(w), kp.Did())).Err())
	}
	return kp.Did(), nil
}

// CreateKey creates a key pair to the wallet. libindy keys are created
// through a DID which is left unused.
func (s *DIDs) CreateKey(w managed.WalletHandle, seed string) (verkey string, err error) {
	defer err2.Handle(&err, "create key")

	_, verkey = try.To2(s.CreateAndStore(w, seed, false))
	return verkey, nil
}
