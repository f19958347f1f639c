package ethereum_test

import (
	"math/big"

	"stekfinance/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StakingContract", func() {
	var contract *ethereum.StakingContract

	BeforeEach(func() {
		var err error
		contract, err = ethereum.NewStakingContract("0x7b60f68A6eF0f25Cccb584f3a6d520712424e5F9")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a malformed address", func() {
		_, err := ethereum.NewStakingContract("not-an-address")
		Expect(err).To(HaveOccurred())
	})

	It("packs a payable stake call", func() {
		call, err := contract.StakeCall(big.NewInt(5))
		Expect(err).NotTo(HaveOccurred())
		Expect(call.To).To(Equal(contract.Address()))
		Expect(call.Value).To(Equal(big.NewInt(5)))
		Expect(call.Data).To(HaveLen(4))
	})

	It("packs unstake with its amount argument", func() {
		call, err := contract.UnstakeCall(big.NewInt(7))
		Expect(err).NotTo(HaveOccurred())
		Expect(call.Value.Sign()).To(Equal(0))
		Expect(call.Data).To(HaveLen(4 + 32))
		Expect(new(big.Int).SetBytes(call.Data[4:]).Int64()).To(Equal(int64(7)))
	})

	It("decodes getUserInfo output", func() {
		call, err := contract.UserInfoCall(common.HexToAddress("0x01"))
		Expect(err).NotTo(HaveOccurred())
		Expect(call.Data).To(HaveLen(4 + 32))

		output := append(math.U256Bytes(big.NewInt(3)), math.U256Bytes(big.NewInt(4))...)
		staked, pending, err := contract.DecodeUserInfo(output)
		Expect(err).NotTo(HaveOccurred())
		Expect(staked.Int64()).To(Equal(int64(3)))
		Expect(pending.Int64()).To(Equal(int64(4)))
	})

	It("fails on truncated output", func() {
		_, _, err := contract.DecodeUserInfo([]byte{0x01})
		Expect(err).To(HaveOccurred())
	})
})
