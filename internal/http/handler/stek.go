package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"stekfinance/internal/core"
	"stekfinance/internal/http/handler/middleware"
	"stekfinance/internal/http/payload"
	"stekfinance/internal/staking"

	"go.uber.org/zap"
)

var (
	SocialCallback = "GET /auth/social/{provider}/callback"
	RefreshTokens  = "POST /auth/refresh"
	Logout         = "POST /auth/logout"
	GetSession     = "GET /api/session"
	GetHistory     = "GET /api/transactions"
	GetStaking     = "GET /api/staking"
	PostStake      = "POST /api/stake"
	PostUnstake    = "POST /api/unstake"
	PostWithdraw   = "POST /api/withdraw"
)

type StekHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	stek             StekService
	frontendURL      string
}

// NewStekHandler is a constructor function for the StekHandler type. Logins
// redirect to frontendURL; when it is empty the token pair is returned as JSON.
func NewStekHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, stek StekService, frontendURL string) *StekHandler {
	return &StekHandler{
		logs:             logger,
		requestValidator: requestValidator,
		stek:             stek,
		frontendURL:      strings.TrimRight(frontendURL, "/"),
	}
}

func (h *StekHandler) HandleSocialCallback(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	callback := payload.CallbackRequest{
		Provider: r.PathValue("provider"),
		IDToken:  r.URL.Query().Get("id_token"),
	}
	if err := callback.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("validate callback: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Warnw("invalid login callback",
			"error", err,
			"handler", SocialCallback,
			"request_id", requestId)
		return
	}

	pair, err := h.stek.Authenticate(r.Context(), callback.Provider, callback.IDToken)
	if err != nil {
		h.fail(w, "Login failed", err, SocialCallback, requestId)
		return
	}

	if h.frontendURL == "" {
		h.respond(w, Response{Message: "Login succeeded", Data: pair}, http.StatusOK, requestId)
		return
	}

	query := url.Values{}
	query.Set("accessToken", pair.AccessToken)
	query.Set("refreshToken", pair.RefreshToken)
	http.Redirect(w, r, h.frontendURL+"/auth/callback?"+query.Encode(), http.StatusFound)
}

func (h *StekHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.RefreshRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not refresh tokens", err, RefreshTokens, requestId)
		return
	}

	pair, err := h.stek.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.fail(w, "Could not refresh tokens", err, RefreshTokens, requestId)
		return
	}

	h.respond(w, Response{Message: "Tokens refreshed", Data: pair}, http.StatusOK, requestId)
}

func (h *StekHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	h.stek.Logout(r.Context())

	h.respond(w, Response{Message: "Logged out successfully"}, http.StatusOK, requestId)
}

func (h *StekHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	h.respond(w, Response{Data: h.stek.Session()}, http.StatusOK, requestId)
}

func (h *StekHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	req := payload.TransactionsRequest{
		Address: r.URL.Query().Get("address"),
	}
	if err := req.Validate(); err != nil {
		h.badRequest(w, "Could not retrieve transactions", err, GetHistory, requestId)
		return
	}

	txs, err := h.stek.History(r.Context(), req.Address)
	if err != nil {
		h.fail(w, "Could not retrieve transactions", err, GetHistory, requestId)
		return
	}

	if txs.Unavailable {
		h.logs.Warnw("transaction history unavailable",
			"address", req.Address,
			"handler", GetHistory,
			"request_id", requestId)
	}

	h.respond(w, Response{Data: txs}, http.StatusOK, requestId)
}

func (h *StekHandler) HandleStakingInfo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	info, err := h.stek.StakingInfo(r.Context())
	if err != nil {
		h.fail(w, "Could not read staking info", err, GetStaking, requestId)
		return
	}

	h.respond(w, Response{Data: info}, http.StatusOK, requestId)
}

func (h *StekHandler) HandleStake(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.StakeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Stake failed", err, PostStake, requestId)
		return
	}

	sub, err := h.stek.Stake(r.Context(), req.Amount)
	h.submitted(w, r, "Stake", sub, err, PostStake)
}

func (h *StekHandler) HandleUnstake(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.StakeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Unstake failed", err, PostUnstake, requestId)
		return
	}

	sub, err := h.stek.Unstake(r.Context(), req.Amount)
	h.submitted(w, r, "Unstake", sub, err, PostUnstake)
}

func (h *StekHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.WithdrawRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Withdraw failed", err, PostWithdraw, requestId)
		return
	}

	sub, err := h.stek.Withdraw(r.Context(), req.To, req.Amount)
	h.submitted(w, r, "Withdraw", sub, err, PostWithdraw)
}

func (h *StekHandler) submitted(w http.ResponseWriter, r *http.Request, action string, sub staking.Submission, err error, handler string) {
	requestId := middleware.RequestIDFrom(r.Context())
	var userId string
	if claims, ok := middleware.ClaimsFrom(r.Context()); ok {
		userId = claims.UserID
	}

	if err != nil {
		resp := Response{
			Message: action + " failed",
			Error:   err.Error(),
		}
		// a submission that got past validation still reports how far it went
		if len(sub.States) > 0 {
			resp.Data = sub
		}
		h.respond(w, resp, statusFor(err), requestId)
		h.logs.Errorw("submission failed",
			"error", err,
			"state", sub.State(),
			"user_id", userId,
			"handler", handler,
			"request_id", requestId)
		return
	}

	h.logs.Infow("submission confirmed",
		"hash", sub.Hash,
		"block", sub.Block,
		"user_id", userId,
		"handler", handler,
		"request_id", requestId)
	h.respond(w, Response{Message: action + " confirmed", Data: sub}, http.StatusOK, requestId)
}

func (h *StekHandler) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Warnw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *StekHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code := statusFor(err)
	detail := err.Error()
	if code == http.StatusUnauthorized {
		detail = core.ErrUnauthorized.Error()
	}

	h.respond(w, Response{Message: message, Error: detail}, code, requestId)
	h.logs.Errorw(strings.ToLower(message),
		"error", err,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

func (h *StekHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
