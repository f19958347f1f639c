package staking

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"
	"time"

	"stekfinance/internal/ethereum"
	"stekfinance/internal/metrics"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount         error = errors.New("amount must be a positive number")
	ErrInsufficientBalance   error = errors.New("insufficient balance")
	ErrInvalidRecipient      error = errors.New("invalid recipient address")
	ErrSubmissionInFlight    error = errors.New("another submission is in progress")
	ErrContractNotConfigured error = errors.New("staking contract not configured")
)

const (
	StakeGasHint     uint64 = 150000
	FallbackGasLimit uint64 = 100000

	gasMarginPercent = 115
	gasPricePercent  = 90
)

type Orchestrator struct {
	logs           *zap.SugaredLogger
	chain          Chain
	session        Session
	writer         BalanceWriter
	contract       *ethereum.StakingContract
	confirmTimeout time.Duration
	metrics        metrics.Staking
	inFlight       atomic.Bool
}

// New builds an orchestrator. contract may be nil, in which case only
// withdrawals are available. confirmTimeout <= 0 waits for confirmation forever.
func New(logger *zap.SugaredLogger, chain Chain, sess Session, writer BalanceWriter, contract *ethereum.StakingContract, confirmTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		logs:           logger,
		chain:          chain,
		session:        sess,
		writer:         writer,
		contract:       contract,
		confirmTimeout: confirmTimeout,
	}
}

// SubmitStake deposits amount ether into the staking contract. The gas limit
// is estimated with a bounded hint, falls back to a fixed limit when
// estimation fails, and carries a safety margin. The gas price is underbid.
func (o *Orchestrator) SubmitStake(ctx context.Context, amount string) (Submission, error) {
	if o.contract == nil {
		return Submission{Kind: KindStake, Amount: amount}, ErrContractNotConfigured
	}

	return o.submit(ctx, KindStake, amount, func(sub *Submission, from common.Address, value *big.Int) (ethereum.Call, error) {
		sub.enter(StateEstimating)

		gasPrice, err := o.chain.GasPrice(ctx)
		if err != nil {
			return ethereum.Call{}, fmt.Errorf("query gas price: %w", err)
		}

		call, err := o.contract.StakeCall(value)
		if err != nil {
			return ethereum.Call{}, fmt.Errorf("build stake call: %w", err)
		}
		call.GasLimit = StakeGasHint

		gas, err := o.chain.EstimateGas(ctx, from, call)
		if err != nil {
			o.logs.Warnw("gas estimation failed, using fallback limit",
				"fallback", FallbackGasLimit,
				"error", err)
			gas = FallbackGasLimit
		}

		call.GasLimit = gas * gasMarginPercent / 100
		call.GasPrice = percentOf(gasPrice, gasPricePercent)
		return call, nil
	})
}

// SubmitUnstake withdraws amount ether from the staking contract. Gas is left
// to the node's estimation.
func (o *Orchestrator) SubmitUnstake(ctx context.Context, amount string) (Submission, error) {
	if o.contract == nil {
		return Submission{Kind: KindUnstake, Amount: amount}, ErrContractNotConfigured
	}

	return o.submit(ctx, KindUnstake, amount, func(_ *Submission, _ common.Address, value *big.Int) (ethereum.Call, error) {
		call, err := o.contract.UnstakeCall(value)
		if err != nil {
			return ethereum.Call{}, fmt.Errorf("build unstake call: %w", err)
		}
		return call, nil
	})
}

// Withdraw sends amount ether from the session account to to.
func (o *Orchestrator) Withdraw(ctx context.Context, to, amount string) (Submission, error) {
	if !common.IsHexAddress(to) {
		return Submission{Kind: KindWithdraw, Amount: amount}, fmt.Errorf("%w: %q", ErrInvalidRecipient, to)
	}
	recipient := common.HexToAddress(to)

	return o.submit(ctx, KindWithdraw, amount, func(_ *Submission, _ common.Address, value *big.Int) (ethereum.Call, error) {
		return ethereum.Call{To: recipient, Value: value}, nil
	})
}

// StakingInfo reads the session account's position and publishes it to the session.
func (o *Orchestrator) StakingInfo(ctx context.Context) (Info, error) {
	account, err := o.session.Account()
	if err != nil {
		return Info{}, err
	}
	address := account.Address()

	staked, pending, err := o.UserInfo(ctx, address)
	if err != nil {
		return Info{}, err
	}
	o.writer.SetStakingInfo(address, staked, pending)

	return Info{
		Address:        address.Hex(),
		StakedAmount:   ethereum.FormatEther(staked),
		PendingRewards: ethereum.FormatEther(pending),
	}, nil
}

// UserInfo returns the staked amount and pending rewards of account in wei.
func (o *Orchestrator) UserInfo(ctx context.Context, account common.Address) (*big.Int, *big.Int, error) {
	if o.contract == nil {
		return nil, nil, ErrContractNotConfigured
	}

	call, err := o.contract.UserInfoCall(account)
	if err != nil {
		return nil, nil, fmt.Errorf("build user info call: %w", err)
	}

	out, err := o.chain.CallContract(ctx, call)
	if err != nil {
		return nil, nil, fmt.Errorf("call getUserInfo: %w", err)
	}

	staked, pending, err := o.contract.DecodeUserInfo(out)
	if err != nil {
		return nil, nil, fmt.Errorf("decode getUserInfo: %w", err)
	}
	return staked, pending, nil
}

type buildFunc func(sub *Submission, from common.Address, value *big.Int) (ethereum.Call, error)

// submit validates the request, sends the call built by build, waits for one
// confirmation and refreshes the session. The returned Submission carries the
// state trace on failure too.
func (o *Orchestrator) submit(ctx context.Context, kind Kind, amount string, build buildFunc) (Submission, error) {
	sub := Submission{Kind: kind, Amount: strings.TrimSpace(amount)}

	account, value, err := o.validate(sub.Amount)
	if err != nil {
		return sub, err
	}

	if !o.inFlight.CompareAndSwap(false, true) {
		return sub, ErrSubmissionInFlight
	}
	defer o.inFlight.Store(false)

	sub.enter(StateIdle)
	from := account.Address()

	call, err := build(&sub, from, value)
	if err != nil {
		return o.fail(sub, err)
	}

	hash, err := o.chain.Send(ctx, account, call)
	if err != nil {
		return o.fail(sub, fmt.Errorf("submit %s: %w", kind, err))
	}
	sub.Hash = hash.Hex()
	sub.enter(StateSubmitted)

	o.logs.Infow("transaction submitted",
		"kind", kind,
		"hash", sub.Hash,
		"amount", sub.Amount,
		"gas_limit", call.GasLimit)

	waitCtx, cancel := o.confirmContext(ctx)
	defer cancel()

	receipt, err := o.chain.WaitMined(waitCtx, hash)
	if err != nil {
		return o.fail(sub, fmt.Errorf("confirm %s: %w", kind, err))
	}
	sub.Block = receipt.BlockNumber
	sub.enter(StateConfirmed)
	o.metrics.ObserveSubmission(string(kind), string(StateConfirmed))

	o.logs.Infow("transaction confirmed",
		"kind", kind,
		"hash", sub.Hash,
		"block", receipt.BlockNumber,
		"gas_used", receipt.GasUsed)

	o.refresh(waitCtx, from)
	return sub, nil
}

func (o *Orchestrator) validate(amount string) (ethereum.Signer, *big.Int, error) {
	account, err := o.session.Account()
	if err != nil {
		return nil, nil, err
	}

	if amount == "" {
		return nil, nil, ErrInvalidAmount
	}
	value, err := ethereum.ParseEther(amount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if value.Sign() <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	balance, err := ethereum.ParseEther(o.session.Snapshot().Balance)
	if err != nil {
		balance = new(big.Int)
	}
	if value.Cmp(balance) > 0 {
		return nil, nil, fmt.Errorf("%w: requested %s, available %s",
			ErrInsufficientBalance, amount, ethereum.FormatEther(balance))
	}

	return account, value, nil
}

func (o *Orchestrator) fail(sub Submission, err error) (Submission, error) {
	sub.enter(StateFailed)
	o.metrics.ObserveSubmission(string(sub.Kind), string(StateFailed))
	o.logs.Errorw("submission failed",
		"kind", sub.Kind,
		"hash", sub.Hash,
		"states", sub.States,
		"error", err)
	return sub, err
}

// confirmContext survives cancellation of ctx and is bounded by confirmTimeout when set.
func (o *Orchestrator) confirmContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if o.confirmTimeout > 0 {
		return context.WithTimeout(detached, o.confirmTimeout)
	}
	return context.WithCancel(detached)
}

func (o *Orchestrator) refresh(ctx context.Context, account common.Address) {
	balance, err := o.chain.Balance(ctx, account)
	if err != nil {
		o.logs.Errorw("refreshing balance after confirmation failed",
			"address", account.Hex(),
			"error", err)
	} else {
		o.writer.SetBalance(account, balance)
	}

	if o.contract == nil {
		return
	}
	staked, pending, err := o.UserInfo(ctx, account)
	if err != nil {
		o.logs.Warnw("refreshing staking info after confirmation failed",
			"address", account.Hex(),
			"error", err)
		return
	}
	o.writer.SetStakingInfo(account, staked, pending)
}

func percentOf(v *big.Int, percent int64) *big.Int {
	out := new(big.Int).Mul(v, big.NewInt(percent))
	return out.Quo(out, big.NewInt(100))
}
