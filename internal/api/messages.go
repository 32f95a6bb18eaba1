package api

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the public projection of an account. The password hash is never
// part of it.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateAuditRequest carries no identity; the caller's bearer token travels
// in the authorization metadata.
type CreateAuditRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Audit struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ListAuditsRequest leaves Skip and Limit nil to mean "use the server default".
type ListAuditsRequest struct {
	Skip  *int `json:"skip,omitempty"`
	Limit *int `json:"limit,omitempty"`
}

type ListAuditsResponse struct {
	Audits []*Audit `json:"audits"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
