package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	bind "github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrNodeUnavailable error = errors.New("ethereum node is not configured")
var ErrTransactionReverted error = errors.New("transaction reverted")

type EthService struct {
	client EthClient
}

// NewEthService wraps an ethereum client. A nil client makes every call fail
// with ErrNodeUnavailable.
func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

func (s *EthService) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	if s.client == nil {
		return nil, ErrNodeUnavailable
	}
	balance, err := s.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}

func (s *EthService) GasPrice(ctx context.Context) (*big.Int, error) {
	if s.client == nil {
		return nil, ErrNodeUnavailable
	}
	price, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	return price, nil
}

func (s *EthService) EstimateGas(ctx context.Context, from common.Address, call Call) (uint64, error) {
	if s.client == nil {
		return 0, ErrNodeUnavailable
	}
	gas, err := s.client.EstimateGas(ctx, callMsg(from, call))
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", err)
	}
	return gas, nil
}

func (s *EthService) CallContract(ctx context.Context, call Call) ([]byte, error) {
	if s.client == nil {
		return nil, ErrNodeUnavailable
	}
	out, err := s.client.CallContract(ctx, callMsg(common.Address{}, call), nil)
	if err != nil {
		return nil, fmt.Errorf("call contract %s: %w", call.To.Hex(), err)
	}
	return out, nil
}

// Send signs and broadcasts a legacy transaction for call. Missing gas
// parameters are filled in from the node.
func (s *EthService) Send(ctx context.Context, signer Signer, call Call) (common.Hash, error) {
	if s.client == nil {
		return common.Hash{}, ErrNodeUnavailable
	}
	from := signer.Address()

	nonce, err := s.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pending nonce: %w", err)
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("chain id: %w", err)
	}

	gasPrice := call.GasPrice
	if gasPrice == nil {
		if gasPrice, err = s.client.SuggestGasPrice(ctx); err != nil {
			return common.Hash{}, fmt.Errorf("suggest gas price: %w", err)
		}
	}

	gasLimit := call.GasLimit
	if gasLimit == 0 {
		if gasLimit, err = s.client.EstimateGas(ctx, callMsg(from, call)); err != nil {
			return common.Hash{}, fmt.Errorf("estimate gas: %w", err)
		}
	}

	value := call.Value
	if value == nil {
		value = new(big.Int)
	}

	to := call.To
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     call.Data,
	})

	signed, err := signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, err
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	return signed.Hash(), nil
}

// WaitMined waits for the receipt of hash until it is included or ctx ends.
// A receipt with a failed status is returned together with ErrTransactionReverted.
func (s *EthService) WaitMined(ctx context.Context, hash common.Hash) (*Receipt, error) {
	if s.client == nil {
		return nil, ErrNodeUnavailable
	}

	receipt, err := bind.WaitMined(ctx, s.client, hash)
	if err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", hash.Hex(), err)
	}

	rec := &Receipt{
		TransactionHash: hash.Hex(),
		BlockNumber:     blockNumber(receipt),
		GasUsed:         receipt.GasUsed,
		Status:          receipt.Status,
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return rec, fmt.Errorf("transaction %s: %w", hash.Hex(), ErrTransactionReverted)
	}
	return rec, nil
}

func callMsg(from common.Address, call Call) geth.CallMsg {
	to := call.To
	return geth.CallMsg{
		From:     from,
		To:       &to,
		Gas:      call.GasLimit,
		GasPrice: call.GasPrice,
		Value:    call.Value,
		Data:     call.Data,
	}
}

func blockNumber(receipt *types.Receipt) uint64 {
	if receipt.BlockNumber == nil {
		return 0
	}
	return receipt.BlockNumber.Uint64()
}
