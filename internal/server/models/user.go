package models

import "time"

// User is a persisted account. PasswordDigest holds the encoded argon2id
// digest; the plaintext password is never stored.
type User struct {
	ID             int64
	UserName       string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
}
