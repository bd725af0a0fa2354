package contract

import "errors"

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// ErrPasswordMismatch is returned by ComparePasswordHash when the password is wrong.
var ErrPasswordMismatch = errors.New("password verification failed")
