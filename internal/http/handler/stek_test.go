package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"stekfinance/internal/core"
	"stekfinance/internal/history"
	"stekfinance/internal/http/handler"
	"stekfinance/internal/http/handler/fake"
	"stekfinance/internal/http/handler/middleware"
	"stekfinance/internal/session"
	"stekfinance/internal/staking"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(w *httptest.ResponseRecorder) envelope {
	var resp envelope
	Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	return resp
}

var _ = Describe("StekHandler", func() {
	var (
		sh            *handler.StekHandler
		fakeService   *fake.StekService
		fakeValidator *fake.RequestValidator
		frontendURL   string
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		pair          core.TokenPair
		logs          *observer.ObservedLogs
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		frontendURL = "https://app.stek.finance/"
		pair = core.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}

		fakeService = new(fake.StekService)
		fakeService.AuthenticateReturns(pair, nil)
		fakeService.RefreshReturns(pair, nil)

		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
			return json.NewDecoder(r.Body).Decode(object)
		}

		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		var observed zapcore.Core
		observed, logs = observer.New(zapcore.InfoLevel)
		sh = handler.NewStekHandler(zap.New(observed).Sugar(), fakeValidator, fakeService, frontendURL)
	})

	Describe("HandleSocialCallback", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/auth/social/google/callback?id_token=id-1", nil)
			req.SetPathValue("provider", "google")
		})

		JustBeforeEach(func() {
			sh.HandleSocialCallback(w, req)
		})

		When("login succeeds", func() {
			It("redirects to the frontend with the token pair", func() {
				Expect(w.Code).To(Equal(http.StatusFound))
				location, err := url.Parse(w.Header().Get("Location"))
				Expect(err).NotTo(HaveOccurred())
				Expect(location.Host).To(Equal("app.stek.finance"))
				Expect(location.Path).To(Equal("/auth/callback"))
				Expect(location.Query().Get("accessToken")).To(Equal("access-1"))
				Expect(location.Query().Get("refreshToken")).To(Equal("refresh-1"))

				_, provider, idToken := fakeService.AuthenticateArgsForCall(0)
				Expect(provider).To(Equal("google"))
				Expect(idToken).To(Equal("id-1"))
			})
		})

		When("no frontend is configured", func() {
			BeforeEach(func() {
				frontendURL = ""
			})

			It("returns the pair as json", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				resp := decodeEnvelope(w)
				var got core.TokenPair
				Expect(json.Unmarshal(resp.Data, &got)).To(Succeed())
				Expect(got).To(Equal(pair))
			})
		})

		When("the id token is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/auth/social/google/callback", nil)
				req.SetPathValue("provider", "google")
			})

			It("responds 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the provider is unsupported", func() {
			BeforeEach(func() {
				req.SetPathValue("provider", "github")
			})

			It("responds 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the id token is rejected", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.TokenPair{}, fmt.Errorf("verify id token: %w", core.ErrUnauthorized))
			})

			It("responds 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeEnvelope(w).Error).To(Equal(core.ErrUnauthorized.Error()))
			})
		})

		When("social login is not configured", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.TokenPair{}, core.ErrLoginUnavailable)
			})

			It("responds 503", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})
	})

	Describe("HandleRefresh", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/auth/refresh", strings.NewReader(`{"refreshToken":"refresh-0"}`))
		})

		JustBeforeEach(func() {
			sh.HandleRefresh(w, req)
		})

		When("the token is valid", func() {
			It("returns a new pair", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, token := fakeService.RefreshArgsForCall(0)
				Expect(token).To(Equal("refresh-0"))

				var got core.TokenPair
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &got)).To(Succeed())
				Expect(got).To(Equal(pair))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("responds 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RefreshCallCount()).To(Equal(0))
			})
		})

		When("the token is not accepted", func() {
			BeforeEach(func() {
				fakeService.RefreshReturns(core.TokenPair{}, fmt.Errorf("%w: expected refresh token", core.ErrUnauthorized))
			})

			It("responds 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleLogout", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/auth/logout", nil)
		})

		It("closes the session", func() {
			sh.HandleLogout(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.LogoutCallCount()).To(Equal(1))
			Expect(decodeEnvelope(w).Message).To(Equal("Logged out successfully"))
		})
	})

	Describe("HandleSession", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/session", nil)
			fakeService.SessionReturns(session.State{Address: "0xabc", Balance: "1.0", Connected: true})
		})

		It("returns the snapshot", func() {
			sh.HandleSession(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var got session.State
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &got)).To(Succeed())
			Expect(got.Address).To(Equal("0xabc"))
			Expect(got.Balance).To(Equal("1.0"))
			Expect(got.Connected).To(BeTrue())
		})
	})

	Describe("HandleHistory", func() {
		var target string

		BeforeEach(func() {
			target = "/api/transactions"
			fakeService.HistoryReturns(history.History{
				Transactions: []history.FormattedTransaction{{Hash: "0x01", Amount: "-1.000000"}},
			}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", target, nil)
			sh.HandleHistory(w, req)
		})

		When("the session account is used", func() {
			It("returns the formatted history", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, address := fakeService.HistoryArgsForCall(0)
				Expect(address).To(BeEmpty())

				var got history.History
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &got)).To(Succeed())
				Expect(got.Transactions).To(HaveLen(1))
				Expect(got.Transactions[0].Amount).To(Equal("-1.000000"))
				Expect(got.Unavailable).To(BeFalse())
			})
		})

		When("an address is given", func() {
			BeforeEach(func() {
				target = "/api/transactions?address=0x00000000000000000000000000000000000000aa"
			})

			It("passes it on", func() {
				_, address := fakeService.HistoryArgsForCall(0)
				Expect(address).To(Equal("0x00000000000000000000000000000000000000aa"))
			})
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				target = "/api/transactions?address=nope"
			})

			It("responds 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.HistoryCallCount()).To(Equal(0))
			})
		})

		When("the indexer is unavailable", func() {
			BeforeEach(func() {
				fakeService.HistoryReturns(history.History{Transactions: []history.FormattedTransaction{}, Unavailable: true}, nil)
			})

			It("still responds 200 with the flag set", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var got history.History
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &got)).To(Succeed())
				Expect(got.Transactions).To(BeEmpty())
				Expect(got.Unavailable).To(BeTrue())
			})
		})

		When("no session is connected", func() {
			BeforeEach(func() {
				fakeService.HistoryReturns(history.History{}, session.ErrNotConnected)
			})

			It("responds 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleStakingInfo", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/staking", nil)
		})

		When("the contract answers", func() {
			BeforeEach(func() {
				fakeService.StakingInfoReturns(staking.Info{Address: "0xabc", StakedAmount: "2.0", PendingRewards: "0.1"}, nil)
			})

			It("returns the position", func() {
				sh.HandleStakingInfo(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				var got staking.Info
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &got)).To(Succeed())
				Expect(got.StakedAmount).To(Equal("2.0"))
			})
		})

		When("no contract is configured", func() {
			BeforeEach(func() {
				fakeService.StakingInfoReturns(staking.Info{}, staking.ErrContractNotConfigured)
			})

			It("responds 503", func() {
				sh.HandleStakingInfo(w, req)
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})
	})

	Describe("HandleStake", func() {
		var confirmed staking.Submission

		BeforeEach(func() {
			confirmed = staking.Submission{
				Kind:   staking.KindStake,
				Amount: "1.0",
				Hash:   "0xfeed",
				Block:  7,
				States: []staking.State{staking.StateIdle, staking.StateEstimating, staking.StateSubmitted, staking.StateConfirmed},
			}
			fakeService.StakeReturns(confirmed, nil)
			req = httptest.NewRequest("POST", "/api/stake", strings.NewReader(`{"amount":"1.0"}`))
		})

		JustBeforeEach(func() {
			sh.HandleStake(w, req)
		})

		When("the stake confirms", func() {
			It("returns the hash and the states", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, amount := fakeService.StakeArgsForCall(0)
				Expect(amount).To(Equal("1.0"))

				var got staking.Submission
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &got)).To(Succeed())
				Expect(got.Hash).To(Equal("0xfeed"))
				Expect(got.States).To(Equal(confirmed.States))
			})
		})

		When("the caller is authenticated", func() {
			BeforeEach(func() {
				ctx := context.WithValue(req.Context(), middleware.ClaimsKey, core.Claims{UserID: "user-1"})
				req = req.WithContext(ctx)
			})

			It("logs the caller's user id with the confirmation", func() {
				entries := logs.FilterMessage("submission confirmed").All()
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].ContextMap()).To(HaveKeyWithValue("user_id", "user-1"))
			})
		})

		When("the balance does not cover the amount", func() {
			BeforeEach(func() {
				fakeService.StakeReturns(staking.Submission{Kind: staking.KindStake, Amount: "1.0"}, staking.ErrInsufficientBalance)
			})

			It("responds 400 without submission data", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				resp := decodeEnvelope(w)
				Expect(resp.Error).To(Equal(staking.ErrInsufficientBalance.Error()))
				Expect(resp.Data).To(BeEmpty())
			})
		})

		When("another submission is running", func() {
			BeforeEach(func() {
				fakeService.StakeReturns(staking.Submission{}, staking.ErrSubmissionInFlight)
			})

			It("responds 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the node rejects the transaction", func() {
			BeforeEach(func() {
				fakeService.StakeReturns(staking.Submission{
					Kind:   staking.KindStake,
					States: []staking.State{staking.StateIdle, staking.StateEstimating, staking.StateFailed},
				}, errors.New("submit stake: nonce too low"))
			})

			It("responds 502 with the trace and the node message", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				resp := decodeEnvelope(w)
				Expect(resp.Error).To(ContainSubstring("nonce too low"))

				var got staking.Submission
				Expect(json.Unmarshal(resp.Data, &got)).To(Succeed())
				Expect(got.State()).To(Equal(staking.StateFailed))
			})

			It("logs the state the submission ended in", func() {
				entries := logs.FilterMessage("submission failed").All()
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].ContextMap()).To(HaveKeyWithValue("state", staking.StateFailed))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("responds 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.StakeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUnstake", func() {
		BeforeEach(func() {
			fakeService.UnstakeReturns(staking.Submission{Kind: staking.KindUnstake, Hash: "0xbeef"}, nil)
			req = httptest.NewRequest("POST", "/api/unstake", strings.NewReader(`{"amount":"0.5"}`))
		})

		It("submits the unstake", func() {
			sh.HandleUnstake(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, amount := fakeService.UnstakeArgsForCall(0)
			Expect(amount).To(Equal("0.5"))
			Expect(decodeEnvelope(w).Message).To(Equal("Unstake confirmed"))
		})
	})

	Describe("HandleWithdraw", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/withdraw",
				strings.NewReader(`{"to":"0x00000000000000000000000000000000000000aa","amount":"0.1"}`))
		})

		When("the transfer confirms", func() {
			BeforeEach(func() {
				fakeService.WithdrawReturns(staking.Submission{Kind: staking.KindWithdraw, Hash: "0xcafe"}, nil)
			})

			It("passes recipient and amount", func() {
				sh.HandleWithdraw(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				_, to, amount := fakeService.WithdrawArgsForCall(0)
				Expect(to).To(Equal("0x00000000000000000000000000000000000000aa"))
				Expect(amount).To(Equal("0.1"))
			})
		})

		When("the recipient is invalid", func() {
			BeforeEach(func() {
				fakeService.WithdrawReturns(staking.Submission{}, staking.ErrInvalidRecipient)
			})

			It("responds 400", func() {
				sh.HandleWithdraw(w, req)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})
})
