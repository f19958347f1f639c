package core

import (
	"context"
	"math/big"

	"stekfinance/internal/ethereum"
	"stekfinance/internal/history"
	"stekfinance/internal/repository"
	"stekfinance/internal/session"
	"stekfinance/internal/staking"
	tokenIssuer "stekfinance/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	UpsertUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name IdentityVerifier . IdentityVerifier
type IdentityVerifier interface {
	Verify(idToken string) (tokenIssuer.Identity, error)
}

//counterfeiter:generate -o fake -fake-name BalanceReader . BalanceReader
type BalanceReader interface {
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name Sessions . Sessions
type Sessions interface {
	Open(account ethereum.Signer, balance *big.Int)
	Close()
	Snapshot() session.State
}

//counterfeiter:generate -o fake -fake-name Refresher . Refresher
type Refresher interface {
	Start(ctx context.Context)
	Stop()
}

//counterfeiter:generate -o fake -fake-name HistoryService . HistoryService
type HistoryService interface {
	Recent(ctx context.Context, address string) history.History
}

//counterfeiter:generate -o fake -fake-name Staker . Staker
type Staker interface {
	SubmitStake(ctx context.Context, amount string) (staking.Submission, error)
	SubmitUnstake(ctx context.Context, amount string) (staking.Submission, error)
	Withdraw(ctx context.Context, to, amount string) (staking.Submission, error)
	StakingInfo(ctx context.Context) (staking.Info, error)
}
