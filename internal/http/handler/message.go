package handler

import (
	"errors"
	"net/http"

	"stekfinance/internal/core"
	"stekfinance/internal/session"
	"stekfinance/internal/staking"
	tokenIssuer "stekfinance/pkg/jwt"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// statusFor maps service errors to an HTTP status. Errors it does not know
// are upstream failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, staking.ErrInvalidAmount),
		errors.Is(err, staking.ErrInsufficientBalance),
		errors.Is(err, staking.ErrInvalidRecipient),
		errors.Is(err, core.ErrInvalidAddress),
		errors.Is(err, core.ErrUnsupportedProvider):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrUnauthorized),
		errors.Is(err, tokenIssuer.ErrIdentityNotValid):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrNotConnected),
		errors.Is(err, staking.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, staking.ErrContractNotConfigured),
		errors.Is(err, core.ErrLoginUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
