package history_test

import (
	"strings"

	"stekfinance/internal/history"
	"stekfinance/internal/indexer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Classify", func() {
	DescribeTable("maps function names to categories",
		func(functionName, value string, expected history.Category) {
			tx := indexer.RawTransaction{FunctionName: functionName, Value: value}
			Expect(history.Classify(tx)).To(Equal(expected))
		},
		Entry("unstake", "unstake(uint256 _amount)", "0", history.Unstake),
		Entry("unstake in any case", "UnStake", "1000", history.Unstake),
		Entry("unstake with value", "unstake", "1000000000000000000", history.Unstake),
		Entry("stake", "stake()", "250000000000000000", history.Stake),
		Entry("stake in upper case", "STAKE", "0", history.Stake),
		Entry("plain transfer with value", "", "1", history.Transfer),
		Entry("transfer with value", "transfer", "10", history.Transfer),
		Entry("empty call without value", "", "0", history.ContractCall),
		Entry("transfer without value", "Transfer", "0", history.ContractCall),
		Entry("other function", "approve(address _spender, uint256 _value)", "0", history.ContractCall),
		Entry("other function with value", "deposit()", "5", history.ContractCall),
	)

	It("treats every name containing unstake as Unstake", func() {
		for _, name := range []string{"unstake", "Unstake", "forceUnstake()", "UNSTAKEALL", "x_unstake_y"} {
			for _, value := range []string{"0", "1", "", "1000000000000000000000000"} {
				Expect(history.Classify(indexer.RawTransaction{FunctionName: name, Value: value})).
					To(Equal(history.Unstake), name)
			}
		}
	})

	It("gives every category a name and a badge", func() {
		seen := map[string]bool{}
		for _, c := range history.Categories() {
			Expect(c.String()).NotTo(HavePrefix("category("))
			Expect(seen[c.String()]).To(BeFalse())
			seen[c.String()] = true

			badge := c.Badge()
			Expect(badge.Label).NotTo(BeEmpty())
			Expect(badge.Icon).NotTo(BeEmpty())
			Expect(strings.HasPrefix(badge.TextColor, "text-")).To(BeTrue())
		}
		Expect(seen).To(HaveLen(4))
		Expect(history.Category(99).String()).To(Equal("category(99)"))
	})

	Describe("Describe", func() {
		It("labels other contract calls with their function name", func() {
			badge := history.Describe(indexer.RawTransaction{FunctionName: "claimRewards()", Value: "0"})
			Expect(badge.Label).To(Equal("claimRewards()"))
			Expect(badge.Icon).To(Equal("📝"))
		})

		It("uses the category label otherwise", func() {
			Expect(history.Describe(indexer.RawTransaction{FunctionName: "stake()"})).
				To(Equal(history.Stake.Badge()))
			Expect(history.Describe(indexer.RawTransaction{FunctionName: "", Value: "0"})).
				To(Equal(history.ContractCall.Badge()))
		})
	})

	Describe("UnmarshalText", func() {
		It("reads the names written by MarshalText", func() {
			var c history.Category
			Expect(c.UnmarshalText([]byte("unstake"))).To(Succeed())
			Expect(c).To(Equal(history.Unstake))
		})

		It("rejects unknown names", func() {
			var c history.Category
			Expect(c.UnmarshalText([]byte("airdrop"))).To(MatchError(ContainSubstring("unknown category")))
		})
	})
})
