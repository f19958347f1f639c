package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var amountRegex = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

type StakeRequest struct {
	Amount string `json:"amount"`
}

func (s *StakeRequest) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Amount, validation.Required, validation.Match(amountRegex)),
	)
}

type WithdrawRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func (w *WithdrawRequest) Validate() error {
	return validation.ValidateStruct(w,
		validation.Field(&w.To, validation.Required, validation.Match(addressRegex)),
		validation.Field(&w.Amount, validation.Required, validation.Match(amountRegex)),
	)
}
