package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"stekfinance/internal/core"
	"stekfinance/internal/http/handler/middleware"
	"stekfinance/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestID", func() {
	var (
		seen string
		w    *httptest.ResponseRecorder
		req  *http.Request
	)

	BeforeEach(func() {
		seen = ""
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/session", nil)
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFrom(r.Context())
		})
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
	})

	When("the client sends no id", func() {
		It("generates one", func() {
			Expect(seen).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
		})
	})

	When("the client sends an id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "req-1")
		})

		It("keeps it", func() {
			Expect(seen).To(Equal("req-1"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("req-1"))
		})
	})
})

var _ = Describe("Logging", func() {
	It("passes the status through", func() {
		w := httptest.NewRecorder()
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).
			Logging(next).
			ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})

var _ = Describe("AuthMiddleware", func() {
	var (
		fakeValidator *fake.TokenValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		called        bool
		claims        core.Claims
	)

	BeforeEach(func() {
		fakeValidator = new(fake.TokenValidator)
		fakeValidator.ValidateAccessTokenReturns(core.Claims{UserID: "user-1", Email: "a@b.c"}, nil)
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/session", nil)
		req.Header.Set("Authorization", "Bearer token-1")
		called = false
		claims = core.Claims{}
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			called = true
			claims, _ = middleware.ClaimsFrom(r.Context())
		})
		middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeValidator).Require(next).ServeHTTP(w, req)
	})

	When("the token is valid", func() {
		It("calls the next handler with the claims", func() {
			Expect(called).To(BeTrue())
			Expect(claims.UserID).To(Equal("user-1"))
			Expect(fakeValidator.ValidateAccessTokenArgsForCall(0)).To(Equal("token-1"))
		})
	})

	When("the header is missing", func() {
		BeforeEach(func() {
			req.Header.Del("Authorization")
		})

		It("responds 401", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeValidator.ValidateAccessTokenCallCount()).To(Equal(0))
		})
	})

	When("the scheme is not bearer", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Basic abc")
		})

		It("responds 401", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("the token is rejected", func() {
		BeforeEach(func() {
			fakeValidator.ValidateAccessTokenReturns(core.Claims{}, errors.New("expired"))
		})

		It("responds 401", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("invalid or expired access token"))
		})
	})
})
