package ledger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/findy-network/findy-fixture/agent/ssi"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Transaction types and role codes as they are in the Indy ledger.
const (
	TxnTypeNym = "1"

	RoleCodeTrustee        = "0"
	RoleCodeSteward        = "2"
	RoleCodeEndorser       = "101"
	RoleCodeNetworkMonitor = "201"
)

var roleCodes = map[string]string{
	ssi.RoleTrustee:        RoleCodeTrustee,
	ssi.RoleSteward:        RoleCodeSteward,
	ssi.RoleEndorser:       RoleCodeEndorser,
	ssi.RoleNetworkMonitor: RoleCodeNetworkMonitor,
}

// RoleCode returns the ledger code of the role name. An empty role is an
// identity owner without a role.
func RoleCode(role string) (code string, err error) {
	if role == "" {
		return "", nil
	}
	code, ok := roleCodes[role]
	if !ok {
		return "", ssi.ErrInvalidRole
	}
	return code, nil
}

// RoleName returns the role name of the ledger code.
func RoleName(code string) string {
	for name, c := range roleCodes {
		if c == code {
			return name
		}
	}
	return ""
}

// genesisTxn is one line of the genesis transaction file. Only NYM
// transactions are read, other types are skipped.
type genesisTxn struct {
	Txn struct {
		Type string `json:"type"`
		Data struct {
			Dest   string `json:"dest"`
			VerKey string `json:"verkey,omitempty"`
			Role   string `json:"role,omitempty"`
			Alias  string `json:"alias,omitempty"`
		} `json:"data"`
	} `json:"txn"`
}

// defaultGenesis returns the genesis transactions of the local test network:
// the well known trustee and steward DIDs.
func defaultGenesis() []byte {
	var buf bytes.Buffer
	for _, g := range []struct{ seed, role, alias string }{
		{ssi.TrusteeSeed, RoleCodeTrustee, "Trustee1"},
		{ssi.StewardSeed, RoleCodeSteward, "Steward1"},
	} {
		kp := try.To1(ssi.NewKeyPair(g.seed))
		var txn genesisTxn
		txn.Txn.Type = TxnTypeNym
		txn.Txn.Data.Dest = kp.Did()
		txn.Txn.Data.VerKey = try.To1(ssi.AbbreviateVerKey(kp.Did(), kp.VerKey()))
		txn.Txn.Data.Role = g.role
		txn.Txn.Data.Alias = g.alias
		buf.WriteString(dto.ToJSON(txn))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// genesisData returns the genesis file content: the file from settings or
// the default one.
func genesisData(filename string) (data []byte, err error) {
	defer err2.Handle(&err, "genesis data")

	if filename == "" {
		return defaultGenesis(), nil
	}
	return try.To1(os.ReadFile(filename)), nil
}

// parseGenesis reads NYM transactions from the genesis file content.
func parseGenesis(data []byte) (nyms []Nym, err error) {
	defer err2.Handle(&err, "parse genesis")

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var txn genesisTxn
		try.To(json.Unmarshal([]byte(line), &txn))
		if txn.Txn.Type != TxnTypeNym || txn.Txn.Data.Dest == "" {
			continue
		}
		d := txn.Txn.Data
		nyms = append(nyms, Nym{
			Dest:   d.Dest,
			VerKey: try.To1(ssi.FullVerKey(d.Dest, d.VerKey)),
			Role:   d.Role,
			Alias:  d.Alias,
		})
	}
	try.To(sc.Err())
	return nyms, nil
}
