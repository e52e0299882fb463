package ledger

import (
	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-common-go/dto"
)

// NymRequest is a NYM write request signed by the submitter's key.
type NymRequest struct {
	Submitter string `json:"identifier"`
	Dest      string `json:"dest"`
	VerKey    string `json:"verkey,omitempty"`
	Role      string `json:"role,omitempty"`
	Alias     string `json:"alias,omitempty"`
	Signature []byte `json:"-"`
}

func NewNymRequest(submitter, dest, verKey, role string) *NymRequest {
	return &NymRequest{
		Submitter: submitter,
		Dest:      dest,
		VerKey:    verKey,
		Role:      role,
	}
}

// Bytes returns the signed part of the request.
func (r *NymRequest) Bytes() []byte {
	return dto.ToJSONBytes(r)
}

// Sign signs the request with the submitter's key pair.
func (r *NymRequest) Sign(kp *ssi.KeyPair) *NymRequest {
	r.Signature = kp.Sign(r.Bytes())
	return r
}
