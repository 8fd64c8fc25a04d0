package models

import "time"

// LoginDto carries the credentials submitted to POST /Auth/Login/.
type LoginDto struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// AccessTokenDto is the bearer token issued on login and refresh.
// Expiration mirrors the server-side token lifetime and is persisted
// alongside the token value.
type AccessTokenDto struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// LoggedDto is the POST /Auth/Login/ response body.
type LoggedDto struct {
	AccessToken AccessTokenDto `json:"accessToken"`
}
