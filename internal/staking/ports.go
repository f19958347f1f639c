package staking

import (
	"context"
	"math/big"

	"stekfinance/internal/ethereum"
	"stekfinance/internal/session"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, from common.Address, call ethereum.Call) (uint64, error)
	CallContract(ctx context.Context, call ethereum.Call) ([]byte, error)
	Send(ctx context.Context, signer ethereum.Signer, call ethereum.Call) (common.Hash, error)
	WaitMined(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name Session . Session
type Session interface {
	Account() (ethereum.Signer, error)
	Snapshot() session.State
}

//counterfeiter:generate -o fake -fake-name BalanceWriter . BalanceWriter
type BalanceWriter interface {
	SetBalance(account common.Address, balance *big.Int) bool
	SetStakingInfo(account common.Address, staked, pending *big.Int) bool
}
