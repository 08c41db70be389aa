package deployment

import (
	"time"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

// DeploymentRecord is one line of deployments/<network>/addresses.json.
type DeploymentRecord struct {
	RunID        string            `json:"runId"`
	Network      string            `json:"network"`
	ChainID      uint64            `json:"chainId"`
	Contract     string            `json:"contract"`
	DeployType   domain.DeployType `json:"deployType,omitempty"`
	Factory      common.Address    `json:"factory"`
	Logic        *common.Address   `json:"logic,omitempty"`
	Proxy        *common.Address   `json:"proxy,omitempty"`
	Salt         string            `json:"salt,omitempty"`
	SaltScheme   string            `json:"saltScheme,omitempty"`
	GasUsed      uint64            `json:"gasUsed"`
	TxHashes     []common.Hash     `json:"txHashes"`
	Timestamp    time.Time         `json:"timestamp"`
	InitCallData string            `json:"initCallData,omitempty"`
}

// AddressFile is the on-disk list of records for one network.
type AddressFile struct {
	Records []DeploymentRecord `json:"records"`
}

// Latest returns the newest record for salt, if any.
func (f *AddressFile) Latest(saltHex string) (*DeploymentRecord, bool) {
	for i := len(f.Records) - 1; i >= 0; i-- {
		if f.Records[i].Salt == saltHex {
			return &f.Records[i], true
		}
	}
	return nil, false
}

// LatestByContract returns the newest record for a contract name.
func (f *AddressFile) LatestByContract(name string) (*DeploymentRecord, bool) {
	for i := len(f.Records) - 1; i >= 0; i-- {
		if f.Records[i].Contract == name {
			return &f.Records[i], true
		}
	}
	return nil, false
}
