package payload

import (
	"github.com/jellydator/validation"
)

var providers = []any{"google", "kakao", "facebook"}

// CallbackRequest is the query of a social login redirect.
type CallbackRequest struct {
	Provider string
	IDToken  string
}

func (c CallbackRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Provider, validation.Required, validation.In(providers...)),
		validation.Field(&c.IDToken, validation.Required),
	)
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r *RefreshRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}
