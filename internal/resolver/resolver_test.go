package resolver_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"stekfinance/internal/indexer"
	"stekfinance/internal/repository"
	"stekfinance/internal/resolver"
	"stekfinance/internal/resolver/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Resolver", func() {
	var (
		res         *resolver.Resolver
		fakeFetcher *fake.Fetcher
		ctx         context.Context
		maxEntries  int
		transfer    indexer.InternalTransfer
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeFetcher = new(fake.Fetcher)
		maxEntries = 0
		transfer = indexer.InternalTransfer{
			TransactionHash: "0xaa",
			From:            "0xcontract",
			To:              "0xuser",
			Value:           "500000000000000000",
		}
	})

	JustBeforeEach(func() {
		res = resolver.New(zap.NewNop().Sugar(), fakeFetcher, nil, maxEntries)
	})

	When("the upstream has an internal transfer", func() {
		BeforeEach(func() {
			fakeFetcher.InternalTransfersReturns([]indexer.InternalTransfer{transfer, {Value: "1"}}, nil)
		})

		It("returns the first one", func() {
			record, ok := res.Resolve(ctx, "0xAA")
			Expect(ok).To(BeTrue())
			Expect(record.Value).To(Equal("500000000000000000"))
			_, hash := fakeFetcher.InternalTransfersArgsForCall(0)
			Expect(hash).To(Equal("0xaa"))
		})

		It("calls the upstream at most once per hash", func() {
			for i := 0; i < 5; i++ {
				_, ok := res.Resolve(ctx, "0xaa")
				Expect(ok).To(BeTrue())
			}
			_, _ = res.Resolve(ctx, "0xAA")
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(1))
		})
	})

	When("the upstream fails", func() {
		BeforeEach(func() {
			fakeFetcher.InternalTransfersReturns(nil, indexer.ErrUpstreamUnavailable)
		})

		It("caches the absent result", func() {
			_, ok := res.Resolve(ctx, "0xaa")
			Expect(ok).To(BeFalse())
			_, ok = res.Resolve(ctx, "0xaa")
			Expect(ok).To(BeFalse())
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(1))
		})
	})

	When("the upstream has no internal transfers", func() {
		BeforeEach(func() {
			fakeFetcher.InternalTransfersReturns([]indexer.InternalTransfer{}, nil)
		})

		It("reports absent", func() {
			_, ok := res.Resolve(ctx, "0xaa")
			Expect(ok).To(BeFalse())
		})
	})

	When("the caller's context is cancelled before the lookup", func() {
		BeforeEach(func() {
			fakeFetcher.InternalTransfersReturns([]indexer.InternalTransfer{transfer}, nil)
		})

		It("leaves the hash to the next caller", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, ok := res.Resolve(cancelled, "0xaa")
			Expect(ok).To(BeFalse())
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(0))

			record, ok := res.Resolve(ctx, "0xaa")
			Expect(ok).To(BeTrue())
			Expect(record.Value).To(Equal(transfer.Value))
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(1))
		})
	})

	When("the caller's context is cancelled after the upstream call went out", func() {
		var cancel context.CancelFunc

		BeforeEach(func() {
			ctx, cancel = context.WithCancel(context.Background())
			fakeFetcher.InternalTransfersStub = func(c context.Context, _ string) ([]indexer.InternalTransfer, error) {
				cancel()
				return nil, c.Err()
			}
		})

		It("caches the answer and does not call the upstream again", func() {
			_, ok := res.Resolve(ctx, "0xaa")
			Expect(ok).To(BeFalse())

			_, ok = res.Resolve(context.Background(), "0xaa")
			Expect(ok).To(BeFalse())
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(1))
		})
	})

	When("many callers resolve the same hash at once", func() {
		BeforeEach(func() {
			release := make(chan struct{})
			fakeFetcher.InternalTransfersStub = func(context.Context, string) ([]indexer.InternalTransfer, error) {
				<-release
				return []indexer.InternalTransfer{transfer}, nil
			}
			go func() {
				time.Sleep(20 * time.Millisecond)
				close(release)
			}()
		})

		It("shares a single upstream call", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, ok := res.Resolve(ctx, "0xaa")
					Expect(ok).To(BeTrue())
				}()
			}
			wg.Wait()
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(1))
		})
	})

	When("the cache is bounded", func() {
		BeforeEach(func() {
			maxEntries = 2
			fakeFetcher.InternalTransfersReturns([]indexer.InternalTransfer{transfer}, nil)
		})

		It("evicts the oldest entry", func() {
			_, _ = res.Resolve(ctx, "0x01")
			_, _ = res.Resolve(ctx, "0x02")
			_, _ = res.Resolve(ctx, "0x03")
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(3))

			_, _ = res.Resolve(ctx, "0x03")
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(3))

			_, _ = res.Resolve(ctx, "0x01")
			Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(4))
		})
	})

	It("ignores empty hashes", func() {
		_, ok := res.Resolve(ctx, "")
		Expect(ok).To(BeFalse())
		Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(0))
	})

	Describe("with a store", func() {
		var fakeStore *fake.Store

		BeforeEach(func() {
			fakeStore = new(fake.Store)
		})

		JustBeforeEach(func() {
			res = resolver.New(zap.NewNop().Sugar(), fakeFetcher, fakeStore, 0)
		})

		When("the transfer is stored", func() {
			BeforeEach(func() {
				fakeStore.GetInternalTransferReturns(repository.InternalTransfer{
					TransactionHash: "0xaa",
					Value:           "42",
				}, nil)
			})

			It("skips the network", func() {
				record, ok := res.Resolve(ctx, "0xaa")
				Expect(ok).To(BeTrue())
				Expect(record.Value).To(Equal("42"))
				Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(0))
			})
		})

		When("the transfer is not stored", func() {
			BeforeEach(func() {
				fakeStore.GetInternalTransferReturns(repository.InternalTransfer{}, repository.ErrTransferNotFound)
				fakeFetcher.InternalTransfersReturns([]indexer.InternalTransfer{transfer}, nil)
			})

			It("fetches and persists it", func() {
				_, ok := res.Resolve(ctx, "0xaa")
				Expect(ok).To(BeTrue())
				Expect(fakeStore.SaveInternalTransferCallCount()).To(Equal(1))
				_, saved := fakeStore.SaveInternalTransferArgsForCall(0)
				Expect(saved.TransactionHash).To(Equal("0xaa"))
				Expect(saved.Value).To(Equal(transfer.Value))
				Expect(saved.From).To(Equal("0xcontract"))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.GetInternalTransferReturns(repository.InternalTransfer{}, errors.New("db down"))
				fakeStore.SaveInternalTransferReturns(errors.New("db down"))
				fakeFetcher.InternalTransfersReturns([]indexer.InternalTransfer{transfer}, nil)
			})

			It("still resolves from the network", func() {
				record, ok := res.Resolve(ctx, "0xaa")
				Expect(ok).To(BeTrue())
				Expect(record.Value).To(Equal(transfer.Value))
			})
		})

		When("a caller gives up while another waits on the same lookup", func() {
			var entered chan struct{}

			BeforeEach(func() {
				entered = make(chan struct{})
				fakeStore.GetInternalTransferStub = func(c context.Context, _ string) (repository.InternalTransfer, error) {
					if fakeStore.GetInternalTransferCallCount() == 1 {
						close(entered)
						<-c.Done()
						return repository.InternalTransfer{}, c.Err()
					}
					return repository.InternalTransfer{}, repository.ErrTransferNotFound
				}
				fakeFetcher.InternalTransfersReturns([]indexer.InternalTransfer{transfer}, nil)
			})

			It("resolves the waiter on its own context", func() {
				leaderCtx, cancel := context.WithCancel(ctx)
				leader := make(chan bool, 1)
				go func() {
					_, ok := res.Resolve(leaderCtx, "0xaa")
					leader <- ok
				}()
				Eventually(entered).Should(BeClosed())

				waiter := make(chan bool, 1)
				go func() {
					_, ok := res.Resolve(ctx, "0xaa")
					waiter <- ok
				}()
				time.Sleep(20 * time.Millisecond)
				cancel()

				Eventually(leader).Should(Receive(BeFalse()))
				Eventually(waiter).Should(Receive(BeTrue()))
				Expect(fakeFetcher.InternalTransfersCallCount()).To(Equal(1))
			})
		})

		When("the upstream has nothing", func() {
			BeforeEach(func() {
				fakeStore.GetInternalTransferReturns(repository.InternalTransfer{}, repository.ErrTransferNotFound)
				fakeFetcher.InternalTransfersReturns(nil, nil)
			})

			It("does not persist absence", func() {
				_, ok := res.Resolve(ctx, "0xaa")
				Expect(ok).To(BeFalse())
				Expect(fakeStore.SaveInternalTransferCallCount()).To(Equal(0))
			})
		})
	})
})
