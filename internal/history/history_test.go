package history_test

import (
	"context"
	"fmt"

	"stekfinance/internal/history"
	"stekfinance/internal/history/fake"
	"stekfinance/internal/indexer"
	"stekfinance/internal/resolver"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Service", func() {
	var (
		service      *history.Service
		fakeSource   *fake.Source
		fakeResolver *fake.Resolver
		ctx          context.Context
		result       history.History
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeSource = new(fake.Source)
		fakeResolver = new(fake.Resolver)
		formatter := history.NewFormatter(zap.NewNop().Sugar(), fakeResolver, nil)
		service = history.NewService(fakeSource, formatter)
	})

	JustBeforeEach(func() {
		result = service.Recent(ctx, "0xabc")
	})

	When("the source returns transactions", func() {
		BeforeEach(func() {
			txs := make([]indexer.RawTransaction, 0, 10)
			for i := 9; i >= 0; i-- {
				name := "stake"
				if i%3 == 0 {
					name = "unstake"
				}
				txs = append(txs, indexer.RawTransaction{
					Hash:         fmt.Sprintf("0x%02d", i),
					FunctionName: name,
					Value:        "1000000000000000000",
				})
			}
			fakeSource.RecentReturns(indexer.Page{Transactions: txs})
			fakeResolver.ResolveReturns(resolver.Record{}, false)
		})

		It("preserves order and length", func() {
			Expect(result.Unavailable).To(BeFalse())
			Expect(result.Transactions).To(HaveLen(10))
			for i, tx := range result.Transactions {
				Expect(tx.Hash).To(Equal(fmt.Sprintf("0x%02d", 9-i)))
			}
		})

		It("resolves unstakes in source order", func() {
			Expect(fakeResolver.ResolveCallCount()).To(Equal(4))
			var hashes []string
			for i := 0; i < fakeResolver.ResolveCallCount(); i++ {
				_, hash := fakeResolver.ResolveArgsForCall(i)
				hashes = append(hashes, hash)
			}
			Expect(hashes).To(Equal([]string{"0x09", "0x06", "0x03", "0x00"}))
		})

		It("queries the source for the account", func() {
			_, address := fakeSource.RecentArgsForCall(0)
			Expect(address).To(Equal("0xabc"))
		})
	})

	When("the source is unavailable", func() {
		BeforeEach(func() {
			fakeSource.RecentReturns(indexer.Page{Transactions: []indexer.RawTransaction{}, Unavailable: true})
		})

		It("returns an empty, flagged history", func() {
			Expect(result.Transactions).NotTo(BeNil())
			Expect(result.Transactions).To(BeEmpty())
			Expect(result.Unavailable).To(BeTrue())
		})
	})
})
