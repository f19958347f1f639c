package handler

import (
	"context"
	"net/http"

	"stekfinance/internal/core"
	"stekfinance/internal/history"
	"stekfinance/internal/session"
	"stekfinance/internal/staking"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name StekService . StekService
type StekService interface {
	Authenticate(ctx context.Context, provider, idToken string) (core.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (core.TokenPair, error)
	Logout(ctx context.Context)
	Session() session.State
	History(ctx context.Context, address string) (history.History, error)
	Stake(ctx context.Context, amount string) (staking.Submission, error)
	Unstake(ctx context.Context, amount string) (staking.Submission, error)
	Withdraw(ctx context.Context, to, amount string) (staking.Submission, error)
	StakingInfo(ctx context.Context) (staking.Info, error)
}
