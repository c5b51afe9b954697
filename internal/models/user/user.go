package user

import "time"

// User is a persisted account record. PasswordHash is the opaque output of
// the credential hasher and is never serialized to any caller.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
