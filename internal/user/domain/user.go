package domain

import "time"

// User is a registered account. Username is the immutable identifier;
// PasswordHash is the bcrypt digest, never the plaintext.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
