package indexer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"stekfinance/internal/indexer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		client   *indexer.Client
		ctx      context.Context
		status   int
		body     string
		lastQuery url.Values
	)

	BeforeEach(func() {
		ctx = context.Background()
		status = http.StatusOK
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastQuery = r.URL.Query()
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		client = indexer.NewClient(server.URL, "test-key", 0, time.Second)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("TxList", func() {
		var (
			txs []indexer.RawTransaction
			err error
		)

		JustBeforeEach(func() {
			txs, err = client.TxList(ctx, "0xabc")
		})

		When("the explorer answers OK", func() {
			BeforeEach(func() {
				body = `{"status":"1","message":"OK","result":[
					{"blockNumber":"2","timeStamp":"1700000100","hash":"0x2","from":"0xabc","to":"0xdef","value":"1","gasPrice":"1000000000","gasUsed":"21000","isError":"0","methodId":"0x","functionName":""},
					{"blockNumber":"1","timeStamp":"1700000000","hash":"0x1","from":"0xabc","to":"0xdef","value":"0","gasPrice":"1000000000","gasUsed":"50000","isError":"0","methodId":"0x3a4b66f1","functionName":"stake()"}
				]}`
			})

			It("returns the transactions in explorer order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).To(HaveLen(2))
				Expect(txs[0].Hash).To(Equal("0x2"))
				Expect(txs[1].FunctionName).To(Equal("stake()"))
			})

			It("sends the full-range paged query", func() {
				Expect(lastQuery.Get("module")).To(Equal("account"))
				Expect(lastQuery.Get("action")).To(Equal("txlist"))
				Expect(lastQuery.Get("address")).To(Equal("0xabc"))
				Expect(lastQuery.Get("startblock")).To(Equal("0"))
				Expect(lastQuery.Get("endblock")).To(Equal("99999999"))
				Expect(lastQuery.Get("page")).To(Equal("1"))
				Expect(lastQuery.Get("offset")).To(Equal("10"))
				Expect(lastQuery.Get("sort")).To(Equal("desc"))
				Expect(lastQuery.Get("apikey")).To(Equal("test-key"))
			})
		})

		When("the account has no transactions", func() {
			BeforeEach(func() {
				body = `{"status":"0","message":"No transactions found","result":[]}`
			})

			It("returns an empty result without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).To(BeEmpty())
			})
		})

		When("the explorer reports a failure", func() {
			BeforeEach(func() {
				body = `{"status":"0","message":"NOTOK","result":"Invalid API Key"}`
			})

			It("returns ErrUpstreamUnavailable", func() {
				Expect(err).To(MatchError(indexer.ErrUpstreamUnavailable))
				Expect(err.Error()).To(ContainSubstring("NOTOK"))
			})
		})

		When("the explorer responds with a server error", func() {
			BeforeEach(func() {
				status = http.StatusBadGateway
				body = "bad gateway"
			})

			It("returns ErrUpstreamUnavailable", func() {
				Expect(err).To(MatchError(indexer.ErrUpstreamUnavailable))
			})
		})

		When("the body is not json", func() {
			BeforeEach(func() {
				body = "<html>"
			})

			It("returns ErrUpstreamUnavailable", func() {
				Expect(err).To(MatchError(indexer.ErrUpstreamUnavailable))
			})
		})
	})

	Describe("InternalTransfers", func() {
		BeforeEach(func() {
			body = `{"status":"1","message":"OK","result":[
				{"blockNumber":"5","from":"0xcontract","to":"0xabc","value":"500000000000000000","type":"call","isError":"0"}
			]}`
		})

		It("queries by hash and tags the results", func() {
			transfers, err := client.InternalTransfers(ctx, "0xhash")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastQuery.Get("action")).To(Equal("txlistinternal"))
			Expect(lastQuery.Get("txhash")).To(Equal("0xhash"))
			Expect(transfers).To(HaveLen(1))
			Expect(transfers[0].TransactionHash).To(Equal("0xhash"))
			Expect(transfers[0].Value).To(Equal("500000000000000000"))
		})
	})

	When("no base url is configured", func() {
		It("fails without a network call", func() {
			_, err := indexer.NewClient("", "", 0, time.Second).TxList(ctx, "0xabc")
			Expect(err).To(MatchError(indexer.ErrUpstreamUnavailable))
		})
	})
})
