// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is the stored credential record. PasswordHash never leaves the server;
// transports project a User onto their own shape without it.
type User struct {
	ID           int64
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
