package history

import (
	"fmt"
	"strings"

	"stekfinance/internal/ethereum"
	"stekfinance/internal/indexer"
)

// Category is the semantic kind of a transaction as seen from the account owner.
type Category int

const (
	Stake Category = iota
	Unstake
	Transfer
	ContractCall
)

// Categories lists every Category in declaration order.
func Categories() []Category {
	return []Category{Stake, Unstake, Transfer, ContractCall}
}

// Badge is the presentation metadata attached to a category.
type Badge struct {
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	TextColor string `json:"textColor"`
}

func (c Category) String() string {
	switch c {
	case Stake:
		return "stake"
	case Unstake:
		return "unstake"
	case Transfer:
		return "transfer"
	case ContractCall:
		return "contract_call"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for _, known := range Categories() {
		if known.String() == string(text) {
			*c = known
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

// Badge returns the default presentation of c.
func (c Category) Badge() Badge {
	switch c {
	case Stake:
		return Badge{Label: "스테이킹", Icon: "🔒", TextColor: "text-blue-600"}
	case Unstake:
		return Badge{Label: "언스테이킹", Icon: "🔓", TextColor: "text-purple-600"}
	case Transfer:
		return Badge{Label: "전송", Icon: "💸", TextColor: "text-gray-600"}
	case ContractCall:
		return Badge{Label: "컨트랙트 호출", Icon: "📝", TextColor: "text-gray-600"}
	}
	return Badge{}
}

// Classify derives the category of tx from its decoded function name.
func Classify(tx indexer.RawTransaction) Category {
	c, _ := classify(tx)
	return c
}

// Describe returns the badge for tx. Calls to other contract functions are
// labelled with the function name itself.
func Describe(tx indexer.RawTransaction) Badge {
	c, label := classify(tx)
	badge := c.Badge()
	if label != "" {
		badge.Label = label
	}
	return badge
}

func classify(tx indexer.RawTransaction) (Category, string) {
	method := strings.ToLower(tx.FunctionName)

	switch {
	case strings.Contains(method, "unstake"):
		return Unstake, ""
	case strings.Contains(method, "stake"):
		return Stake, ""
	case method == "transfer" || method == "":
		if isZero(tx.Value) {
			return ContractCall, ""
		}
		return Transfer, ""
	default:
		return ContractCall, tx.FunctionName
	}
}

func isZero(value string) bool {
	v, err := ethereum.ParseInteger(value)
	if err != nil {
		return false
	}
	return v.Sign() == 0
}
