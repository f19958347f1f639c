package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stekfinance/internal/ethereum"
	"stekfinance/internal/history"
	"stekfinance/internal/repository"
	"stekfinance/internal/session"
	"stekfinance/internal/staking"
	tokenIssuer "stekfinance/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound        error = errors.New("user not found")
	ErrUnauthorized        error = errors.New("unauthorized")
	ErrUnsupportedProvider error = errors.New("unsupported login provider")
	ErrLoginUnavailable    error = errors.New("social login is not configured")
	ErrInvalidAddress      error = errors.New("invalid account address")
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

var providers = map[string]struct{}{
	"google":   {},
	"kakao":    {},
	"facebook": {},
}

// Wallet is the account the process signs with and the session it feeds.
// Signer may be nil, in which case logins succeed without opening a session.
type Wallet struct {
	Signer    ethereum.Signer
	Chain     BalanceReader
	Sessions  Sessions
	Refresher Refresher
}

// Stek ties together login, the account session, transaction history and staking.
type Stek struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	verifier  IdentityVerifier
	wallet    Wallet
	history   HistoryService
	staker    Staker
}

// NewStek is a constructor function for the Stek type. verifier may be nil
// when social login is not configured.
func NewStek(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, verifier IdentityVerifier, wallet Wallet, history HistoryService, staker Staker) *Stek {
	return &Stek{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		verifier:  verifier,
		wallet:    wallet,
		history:   history,
		staker:    staker,
	}
}

// Authenticate verifies a social login id token, stores the user, opens the
// session for the process wallet and issues an access/refresh token pair.
func (s *Stek) Authenticate(ctx context.Context, provider, idToken string) (TokenPair, error) {
	provider = strings.ToLower(provider)
	if _, ok := providers[provider]; !ok {
		return TokenPair{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
	if s.verifier == nil {
		return TokenPair{}, ErrLoginUnavailable
	}

	identity, err := s.verifier.Verify(idToken)
	if err != nil {
		return TokenPair{}, fmt.Errorf("verify id token: %w", err)
	}
	if identity.Provider != "" && !strings.EqualFold(identity.Provider, provider) {
		return TokenPair{}, fmt.Errorf("verify id token: %w: issued for %q", tokenIssuer.ErrIdentityNotValid, identity.Provider)
	}

	walletAddress := identity.WalletAddress
	if walletAddress == "" && s.wallet.Signer != nil {
		walletAddress = s.wallet.Signer.Address().Hex()
	}

	user, err := s.repo.UpsertUser(ctx, repository.User{
		Email:         identity.Email,
		Name:          identity.Name,
		Provider:      provider,
		WalletAddress: walletAddress,
	})
	if err != nil {
		return TokenPair{}, fmt.Errorf("upsert user: %w", err)
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return TokenPair{}, err
	}

	s.openSession(ctx)

	s.logs.Infow("user authenticated",
		"userId", user.ID,
		"provider", provider)
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *Stek) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.validate(refreshToken, tokenIssuer.TypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrUserNotFound)
		}
		return TokenPair{}, fmt.Errorf("get user: %w", err)
	}

	return s.issuePair(user)
}

// ValidateAccessToken returns the caller of a request bearing token.
func (s *Stek) ValidateAccessToken(token string) (Claims, error) {
	return s.validate(token, tokenIssuer.TypeAccess)
}

// Logout ends the session and stops the balance refresh.
func (s *Stek) Logout(ctx context.Context) {
	if s.wallet.Refresher != nil {
		s.wallet.Refresher.Stop()
	}
	if s.wallet.Sessions != nil {
		s.wallet.Sessions.Close()
	}
	s.logs.Infow("session closed")
}

func (s *Stek) Session() session.State {
	if s.wallet.Sessions == nil {
		return session.State{}
	}
	return s.wallet.Sessions.Snapshot()
}

// History formats the recent transactions of address, defaulting to the session account.
func (s *Stek) History(ctx context.Context, address string) (history.History, error) {
	if address == "" {
		state := s.Session()
		if !state.Connected {
			return history.History{}, session.ErrNotConnected
		}
		address = state.Address
	}
	if !common.IsHexAddress(address) {
		return history.History{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	return s.history.Recent(ctx, address), nil
}

func (s *Stek) Stake(ctx context.Context, amount string) (staking.Submission, error) {
	return s.staker.SubmitStake(ctx, amount)
}

func (s *Stek) Unstake(ctx context.Context, amount string) (staking.Submission, error) {
	return s.staker.SubmitUnstake(ctx, amount)
}

func (s *Stek) Withdraw(ctx context.Context, to, amount string) (staking.Submission, error) {
	return s.staker.Withdraw(ctx, to, amount)
}

func (s *Stek) StakingInfo(ctx context.Context) (staking.Info, error) {
	return s.staker.StakingInfo(ctx)
}

func (s *Stek) issuePair(user repository.User) (TokenPair, error) {
	access, err := s.sign(user, tokenIssuer.TypeAccess, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(user, tokenIssuer.TypeRefresh, RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Stek) sign(user repository.User, typ string, ttl time.Duration) (string, error) {
	token := s.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    user.ID,
		Email:      user.Email,
		Type:       typ,
		Expiration: ttl,
	})
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", typ, err)
	}
	return signed, nil
}

func (s *Stek) validate(token, typ string) (Claims, error) {
	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if got, _ := claims["typ"].(string); got != typ {
		return Claims{}, fmt.Errorf("%w: expected %s token", ErrUnauthorized, typ)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}
	email, _ := claims["email"].(string)

	return Claims{UserID: sub, Email: email}, nil
}

func (s *Stek) openSession(ctx context.Context) {
	signer := s.wallet.Signer
	if signer == nil || s.wallet.Sessions == nil {
		s.logs.Warnw("no signer configured, session not opened")
		return
	}

	balance, err := s.wallet.Chain.Balance(ctx, signer.Address())
	if err != nil {
		s.logs.Warnw("reading balance for new session failed",
			"address", signer.Address().Hex(),
			"error", err)
	}

	s.wallet.Sessions.Open(signer, balance)
	if s.wallet.Refresher != nil {
		s.wallet.Refresher.Start(context.WithoutCancel(ctx))
	}
}
