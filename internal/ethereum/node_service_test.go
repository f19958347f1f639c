package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"stekfinance/internal/ethereum"
	"stekfinance/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
		to         common.Address
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		to = common.HexToAddress("0x7b60f68A6eF0f25Cccb584f3a6d520712424e5F9")
		service = ethereum.NewEthService(fakeClient)
	})

	Describe("Send", func() {
		var (
			signer *ethereum.KeySigner
			call   ethereum.Call
			hash   common.Hash
			err    error
		)

		BeforeEach(func() {
			key, keyErr := crypto.GenerateKey()
			Expect(keyErr).NotTo(HaveOccurred())
			signer, keyErr = ethereum.NewKeySigner(common.Bytes2Hex(crypto.FromECDSA(key)))
			Expect(keyErr).NotTo(HaveOccurred())

			call = ethereum.Call{
				To:       to,
				Value:    big.NewInt(1000),
				Data:     []byte{0x3a, 0x4b, 0x66, 0xf1},
				GasLimit: 115000,
				GasPrice: big.NewInt(9),
			}

			fakeClient.PendingNonceAtReturns(7, nil)
			fakeClient.ChainIDReturns(big.NewInt(11155111), nil)
			fakeClient.SendTransactionReturns(nil)
		})

		JustBeforeEach(func() {
			hash, err = service.Send(ctx, signer, call)
		})

		When("gas parameters are provided", func() {
			It("signs and sends a legacy transaction with them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.SuggestGasPriceCallCount()).To(Equal(0))
				Expect(fakeClient.EstimateGasCallCount()).To(Equal(0))

				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				_, sent := fakeClient.SendTransactionArgsForCall(0)
				Expect(sent.Hash()).To(Equal(hash))
				Expect(sent.Nonce()).To(Equal(uint64(7)))
				Expect(sent.Gas()).To(Equal(uint64(115000)))
				Expect(sent.GasPrice()).To(Equal(big.NewInt(9)))
				Expect(sent.Value()).To(Equal(big.NewInt(1000)))
				Expect(*sent.To()).To(Equal(to))

				from, senderErr := types.Sender(types.LatestSignerForChainID(big.NewInt(11155111)), sent)
				Expect(senderErr).NotTo(HaveOccurred())
				Expect(from).To(Equal(signer.Address()))
			})
		})

		When("gas parameters are left to the node", func() {
			BeforeEach(func() {
				call.GasLimit = 0
				call.GasPrice = nil
				fakeClient.SuggestGasPriceReturns(big.NewInt(20), nil)
				fakeClient.EstimateGasReturns(50000, nil)
			})

			It("fills them from the node", func() {
				Expect(err).NotTo(HaveOccurred())
				_, msg := fakeClient.EstimateGasArgsForCall(0)
				Expect(msg.From).To(Equal(signer.Address()))
				Expect(*msg.To).To(Equal(to))

				_, sent := fakeClient.SendTransactionArgsForCall(0)
				Expect(sent.Gas()).To(Equal(uint64(50000)))
				Expect(sent.GasPrice()).To(Equal(big.NewInt(20)))
			})
		})

		When("sending fails", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(testErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(hash).To(Equal(common.Hash{}))
			})
		})
	})

	Describe("WaitMined", func() {
		var (
			hash    common.Hash
			receipt *ethereum.Receipt
			err     error
		)

		BeforeEach(func() {
			hash = common.HexToHash("0xabc")
		})

		JustBeforeEach(func() {
			receipt, err = service.WaitMined(ctx, hash)
		})

		When("the receipt shows up on the next poll", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, geth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(1, &types.Receipt{
					Status:      types.ReceiptStatusSuccessful,
					BlockNumber: big.NewInt(100),
					GasUsed:     21000,
				}, nil)
			})

			It("returns the confirmed receipt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
				Expect(receipt.BlockNumber).To(Equal(uint64(100)))
				Expect(receipt.GasUsed).To(Equal(uint64(21000)))
				Expect(receipt.TransactionHash).To(Equal(hash.Hex()))
			})
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusFailed,
					BlockNumber: big.NewInt(100),
				}, nil)
			})

			It("returns ErrTransactionReverted", func() {
				Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
				Expect(receipt).NotTo(BeNil())
			})
		})

		When("the node keeps failing until the confirmation timeout", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, 50*time.Millisecond)
				DeferCleanup(cancel)
				fakeClient.TransactionReceiptReturns(nil, testErr)
			})

			It("returns the deadline error", func() {
				Expect(err).To(MatchError(context.DeadlineExceeded))
				Expect(err.Error()).To(ContainSubstring(hash.Hex()))
				Expect(receipt).To(BeNil())
				Expect(fakeClient.TransactionReceiptCallCount()).To(BeNumerically(">=", 1))
			})
		})

		When("the receipt never shows up before the confirmation timeout", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, 50*time.Millisecond)
				DeferCleanup(cancel)
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("returns the deadline error", func() {
				Expect(err).To(MatchError(context.DeadlineExceeded))
				Expect(receipt).To(BeNil())
			})
		})

		When("the context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("returns the context error", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	When("no client is configured", func() {
		BeforeEach(func() {
			service = ethereum.NewEthService(nil)
		})

		It("fails every call with ErrNodeUnavailable", func() {
			_, err := service.Balance(ctx, to)
			Expect(err).To(MatchError(ethereum.ErrNodeUnavailable))
			_, err = service.GasPrice(ctx)
			Expect(err).To(MatchError(ethereum.ErrNodeUnavailable))
			_, err = service.WaitMined(ctx, common.Hash{})
			Expect(err).To(MatchError(ethereum.ErrNodeUnavailable))
		})
	})
})
