package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Call describes a state-changing or read-only contract interaction.
// A zero GasLimit or nil GasPrice lets the node pick the value.
type Call struct {
	To       common.Address
	Value    *big.Int
	Data     []byte
	GasLimit uint64
	GasPrice *big.Int
}

type Receipt struct {
	TransactionHash string
	BlockNumber     uint64
	GasUsed         uint64
	Status          uint64
}
