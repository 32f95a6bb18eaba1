// Package common contains shared constants and sentinel errors used across
// auditkeeper components.
package common

// AuthorizationHeaderName is the gRPC/HTTP metadata key used to carry the
// bearer access token on inbound requests.
const AuthorizationHeaderName = "authorization"

// BearerScheme is the only authorization scheme accepted by the server.
const BearerScheme = "Bearer"

// TokenTypeBearer is reported to clients alongside an issued access token.
const TokenTypeBearer = "bearer"
