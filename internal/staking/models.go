package staking

type Kind string

const (
	KindStake    Kind = "stake"
	KindUnstake  Kind = "unstake"
	KindWithdraw Kind = "withdraw"
)

// State is a step of a submission. Confirmed and Failed are terminal.
type State string

const (
	StateIdle       State = "idle"
	StateEstimating State = "estimating"
	StateSubmitted  State = "submitted"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// Submission describes one stake, unstake or withdraw attempt. States holds
// every state the submission went through, in order.
type Submission struct {
	Kind   Kind    `json:"kind"`
	Amount string  `json:"amount"`
	Hash   string  `json:"hash,omitempty"`
	Block  uint64  `json:"block,omitempty"`
	States []State `json:"states"`
}

func (s *Submission) enter(state State) {
	s.States = append(s.States, state)
}

// State returns the latest state of the submission.
func (s Submission) State() State {
	if len(s.States) == 0 {
		return StateIdle
	}
	return s.States[len(s.States)-1]
}

// Info is the account's position in the staking contract, in ether.
type Info struct {
	Address        string `json:"address"`
	StakedAmount   string `json:"stakedAmount"`
	PendingRewards string `json:"pendingRewards"`
}
