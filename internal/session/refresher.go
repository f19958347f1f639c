package session

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const DefaultRefreshInterval = 10 * time.Second

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name StakingReader . StakingReader
type StakingReader interface {
	UserInfo(ctx context.Context, account common.Address) (*big.Int, *big.Int, error)
}

// Refresher polls the chain while the session is connected and writes the
// results through the session's BalanceWriter.
type Refresher struct {
	logs     *zap.SugaredLogger
	session  *Context
	writer   *BalanceWriter
	chain    ChainReader
	staking  StakingReader
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefresher builds a refresher. staking may be nil when no contract is configured.
func NewRefresher(logger *zap.SugaredLogger, session *Context, chain ChainReader, staking StakingReader, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		logs:     logger,
		session:  session,
		writer:   session.Writer(),
		chain:    chain,
		staking:  staking,
		interval: interval,
	}
}

// Start refreshes once and then every interval until Stop, ctx cancellation
// or the end of the current session. Calling Start while running restarts the loop.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	done := r.session.Done()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		r.loop(ctx, done)
	}()
}

// Stop ends the loop and waits for it to exit.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
}

// stopLocked must be called with r.mu held. The loop never takes r.mu.
func (r *Refresher) stopLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.wg.Wait()
}

func (r *Refresher) loop(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			r.logs.Debugw("session closed, balance refresh stopped")
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}

// Refresh performs a single pass. Failures are logged and leave the session untouched.
func (r *Refresher) Refresh(ctx context.Context) {
	account, err := r.session.Account()
	if err != nil {
		return
	}
	address := account.Address()

	balance, err := r.chain.Balance(ctx, address)
	if err != nil {
		r.logs.Warnw("refreshing balance failed",
			"address", address.Hex(),
			"error", err)
	} else {
		r.writer.SetBalance(address, balance)
	}

	if r.staking == nil {
		return
	}
	staked, pending, err := r.staking.UserInfo(ctx, address)
	if err != nil {
		r.logs.Warnw("refreshing staking info failed",
			"address", address.Hex(),
			"error", err)
		return
	}
	r.writer.SetStakingInfo(address, staked, pending)
}
