package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// TransactionsRequest selects whose history to list. An empty address means
// the session account.
type TransactionsRequest struct {
	Address string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Address, validation.Match(addressRegex)),
	)
}
