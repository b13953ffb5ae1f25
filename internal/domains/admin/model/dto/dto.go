package dto

import "vietravel/infras/jwt"

// Credential is whatever the caller presented: a username/password pair, a bearer token, or both.
type Credential struct {
	Username string
	Password string
	Token    string
}

// IsEmpty reports whether nothing was presented.
func (c Credential) IsEmpty() bool {
	return c.Username == "" && c.Password == "" && c.Token == ""
}

type LoginRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,max=100"`
}

func (r LoginRequest) ToCredential() Credential {
	return Credential{Username: r.Username, Password: r.Password}
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

func (r *LoginResponse) FromToken(token *jwt.Token) {
	r.AccessToken = token.AccessToken
	r.TokenType = token.TokenType
	r.ExpiresIn = token.ExpiresIn
}
