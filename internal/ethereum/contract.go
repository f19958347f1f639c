package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const stakingABI = `[
	{"type":"function","name":"stake","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"function","name":"unstake","stateMutability":"nonpayable","inputs":[{"name":"_amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getUserInfo","stateMutability":"view","inputs":[{"name":"_user","type":"address"}],
	 "outputs":[{"name":"amount","type":"uint256"},{"name":"pendingRewards","type":"uint256"}]}
]`

// StakingContract packs calls for the external staking contract.
type StakingContract struct {
	address common.Address
	abi     abi.ABI
}

func NewStakingContract(address string) (*StakingContract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid staking contract address %q", address)
	}

	parsed, err := abi.JSON(strings.NewReader(stakingABI))
	if err != nil {
		return nil, fmt.Errorf("parse staking abi: %w", err)
	}

	return &StakingContract{
		address: common.HexToAddress(address),
		abi:     parsed,
	}, nil
}

func (c *StakingContract) Address() common.Address {
	return c.address
}

func (c *StakingContract) StakeCall(value *big.Int) (Call, error) {
	data, err := c.abi.Pack("stake")
	if err != nil {
		return Call{}, fmt.Errorf("pack stake: %w", err)
	}
	return Call{To: c.address, Value: value, Data: data}, nil
}

func (c *StakingContract) UnstakeCall(amount *big.Int) (Call, error) {
	data, err := c.abi.Pack("unstake", amount)
	if err != nil {
		return Call{}, fmt.Errorf("pack unstake: %w", err)
	}
	return Call{To: c.address, Value: new(big.Int), Data: data}, nil
}

func (c *StakingContract) UserInfoCall(user common.Address) (Call, error) {
	data, err := c.abi.Pack("getUserInfo", user)
	if err != nil {
		return Call{}, fmt.Errorf("pack getUserInfo: %w", err)
	}
	return Call{To: c.address, Data: data}, nil
}

// DecodeUserInfo unpacks the (staked, pendingRewards) pair returned by getUserInfo.
func (c *StakingContract) DecodeUserInfo(output []byte) (*big.Int, *big.Int, error) {
	values, err := c.abi.Unpack("getUserInfo", output)
	if err != nil {
		return nil, nil, fmt.Errorf("unpack getUserInfo: %w", err)
	}
	if len(values) != 2 {
		return nil, nil, fmt.Errorf("unpack getUserInfo: expected 2 values, got %d", len(values))
	}

	staked, ok := values[0].(*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("unpack getUserInfo: unexpected amount type %T", values[0])
	}
	pending, ok := values[1].(*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("unpack getUserInfo: unexpected rewards type %T", values[1])
	}

	return staked, pending, nil
}
