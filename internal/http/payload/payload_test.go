package payload_test

import (
	"net/http/httptest"
	"strings"

	"stekfinance/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		body    string
		err     error
	)

	Describe("StakeRequest", func() {
		var req payload.StakeRequest

		JustBeforeEach(func() {
			req = payload.StakeRequest{}
			r := httptest.NewRequest("POST", "/api/stake", strings.NewReader(body))
			err = decoder.DecodeJSONPayload(r, &req)
		})

		When("the amount is a decimal", func() {
			BeforeEach(func() {
				body = `{"amount":"1.5"}`
			})

			It("decodes the payload", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(req.Amount).To(Equal("1.5"))
			})
		})

		When("the amount is missing", func() {
			BeforeEach(func() {
				body = `{}`
			})

			It("fails validation", func() {
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})

		When("the amount is not a number", func() {
			BeforeEach(func() {
				body = `{"amount":"-1"}`
			})

			It("fails validation", func() {
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})

		When("the body carries unknown fields", func() {
			BeforeEach(func() {
				body = `{"amount":"1","gas":"10"}`
			})

			It("rejects the payload", func() {
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the body is not json", func() {
			BeforeEach(func() {
				body = `amount=1`
			})

			It("rejects the payload", func() {
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("WithdrawRequest", func() {
		var req payload.WithdrawRequest

		JustBeforeEach(func() {
			req = payload.WithdrawRequest{}
			r := httptest.NewRequest("POST", "/api/withdraw", strings.NewReader(body))
			err = decoder.DecodeJSONPayload(r, &req)
		})

		When("the recipient is a hex address", func() {
			BeforeEach(func() {
				body = `{"to":"0x00000000000000000000000000000000000000aa","amount":"0.1"}`
			})

			It("decodes the payload", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(req.To).To(Equal("0x00000000000000000000000000000000000000aa"))
				Expect(req.Amount).To(Equal("0.1"))
			})
		})

		When("the recipient is malformed", func() {
			BeforeEach(func() {
				body = `{"to":"0x1234","amount":"0.1"}`
			})

			It("fails validation", func() {
				Expect(err).To(MatchError(ContainSubstring("to")))
			})
		})
	})

	Describe("RefreshRequest", func() {
		var req payload.RefreshRequest

		JustBeforeEach(func() {
			req = payload.RefreshRequest{}
			r := httptest.NewRequest("POST", "/auth/refresh", strings.NewReader(body))
			err = decoder.DecodeJSONPayload(r, &req)
		})

		When("the token is empty", func() {
			BeforeEach(func() {
				body = `{"refreshToken":""}`
			})

			It("fails validation", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token is present", func() {
			BeforeEach(func() {
				body = `{"refreshToken":"r"}`
			})

			It("decodes the payload", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(req.RefreshToken).To(Equal("r"))
			})
		})
	})
})

var _ = Describe("CallbackRequest", func() {
	It("accepts supported providers", func() {
		Expect(payload.CallbackRequest{Provider: "kakao", IDToken: "t"}.Validate()).To(Succeed())
	})

	It("rejects unknown providers", func() {
		Expect(payload.CallbackRequest{Provider: "github", IDToken: "t"}.Validate()).To(HaveOccurred())
	})

	It("requires an id token", func() {
		Expect(payload.CallbackRequest{Provider: "google"}.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("TransactionsRequest", func() {
	It("accepts an empty address", func() {
		Expect(payload.TransactionsRequest{}.Validate()).To(Succeed())
	})

	It("rejects a malformed address", func() {
		Expect(payload.TransactionsRequest{Address: "0xzz"}.Validate()).To(HaveOccurred())
	})
})
