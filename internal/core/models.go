package core

// TokenPair is issued on login and on refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Claims identifies the caller of an authenticated request.
type Claims struct {
	UserID string
	Email  string
}
