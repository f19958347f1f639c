package ethereum_test

import (
	"math/big"

	"stekfinance/internal/ethereum"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Units", func() {
	DescribeTable("ParseEther",
		func(in string, want string) {
			v, err := ethereum.ParseEther(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.String()).To(Equal(want))
		},
		Entry("whole", "1", "1000000000000000000"),
		Entry("fraction", "0.25", "250000000000000000"),
		Entry("smallest unit", "0.000000000000000001", "1"),
		Entry("surrounding spaces", " 2.5 ", "2500000000000000000"),
	)

	It("rejects amounts finer than one wei", func() {
		_, err := ethereum.ParseEther("0.0000000000000000001")
		Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
	})

	It("rejects non-numeric input", func() {
		_, err := ethereum.ParseEther("five")
		Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
	})

	DescribeTable("FormatUnits",
		func(value int64, decimals int32, want string) {
			Expect(ethereum.FormatUnits(big.NewInt(value), decimals)).To(Equal(want))
		},
		Entry("one ether", int64(1000000000000000000), int32(18), "1.0"),
		Entry("half ether", int64(500000000000000000), int32(18), "0.5"),
		Entry("gas used in gwei", int64(21000), int32(9), "0.000021"),
		Entry("gas price in gwei", int64(1500000000), int32(9), "1.5"),
		Entry("zero", int64(0), int32(18), "0.0"),
	)

	It("formats large and tiny values without exponents", func() {
		huge, _ := new(big.Int).SetString("1000000000000000000000000", 10)
		Expect(ethereum.FormatFixed(huge, 18, 6)).To(Equal("1000000.000000"))
		Expect(ethereum.FormatFixed(big.NewInt(1), 18, 6)).To(Equal("0.000000"))
	})

	It("parses explorer integers", func() {
		v, err := ethereum.ParseInteger("42")
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Int64()).To(Equal(int64(42)))

		v, err = ethereum.ParseInteger("")
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Sign()).To(Equal(0))

		_, err = ethereum.ParseInteger("0x2a")
		Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
	})
})
