package session

import (
	"errors"
	"math/big"
	"sync"
	"time"

	"stekfinance/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

var ErrNotConnected error = errors.New("session not connected")

// TimeNow is swapped in tests.
var TimeNow = time.Now

// State is a point-in-time copy of the session. Amounts are ether strings.
type State struct {
	Address        string    `json:"address"`
	Balance        string    `json:"balance"`
	StakedAmount   string    `json:"stakedAmount"`
	PendingRewards string    `json:"pendingRewards"`
	Connected      bool      `json:"connected"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Context holds the authenticated account and its balances. Reads are free
// for everyone, writes go through the BalanceWriter.
type Context struct {
	mu      sync.RWMutex
	state   State
	account ethereum.Signer
	done    chan struct{}
}

func New() *Context {
	done := make(chan struct{})
	close(done)
	return &Context{done: done}
}

// Open connects the session to account, replacing any previous one.
func (c *Context) Open(account ethereum.Signer, balance *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Connected {
		close(c.done)
	}
	c.account = account
	c.done = make(chan struct{})
	c.state = State{
		Address:        account.Address().Hex(),
		Balance:        ethereum.FormatEther(balance),
		StakedAmount:   ethereum.FormatEther(nil),
		PendingRewards: ethereum.FormatEther(nil),
		Connected:      true,
		UpdatedAt:      TimeNow(),
	}
}

// Close disconnects the session. It is safe to call more than once.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Connected {
		return
	}
	close(c.done)
	c.account = nil
	c.state = State{UpdatedAt: TimeNow()}
}

func (c *Context) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Account returns the signer of the connected account.
func (c *Context) Account() (ethereum.Signer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.state.Connected || c.account == nil {
		return nil, ErrNotConnected
	}
	return c.account, nil
}

// Done is closed when the current session ends. While disconnected it
// returns an already closed channel.
func (c *Context) Done() <-chan struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.done
}

// Writer returns the write handle given to the components allowed to update balances.
func (c *Context) Writer() *BalanceWriter {
	return &BalanceWriter{session: c}
}

// BalanceWriter replaces balance fields of the session. Writes for an account
// other than the connected one are dropped and reported as false.
type BalanceWriter struct {
	session *Context
}

func (w *BalanceWriter) SetBalance(account common.Address, balance *big.Int) bool {
	return w.session.update(account, func(s *State) {
		s.Balance = ethereum.FormatEther(balance)
	})
}

func (w *BalanceWriter) SetStakingInfo(account common.Address, staked, pending *big.Int) bool {
	return w.session.update(account, func(s *State) {
		s.StakedAmount = ethereum.FormatEther(staked)
		s.PendingRewards = ethereum.FormatEther(pending)
	})
}

func (c *Context) update(account common.Address, apply func(*State)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Connected || c.account == nil || c.account.Address() != account {
		return false
	}
	apply(&c.state)
	c.state.UpdatedAt = TimeNow()
	return true
}
