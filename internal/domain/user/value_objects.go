package user

import "errors"

var ErrEmptyUsername = errors.New("username must not be empty")

// Credentials carries a login attempt. Users are owned by the store;
// only lookup and hash verification happen here. An empty password is
// allowed through so it fails at verification, after the user lookup,
// keeping the error order of the login flow.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	if username == "" {
		return Credentials{}, ErrEmptyUsername
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string { return c.username }
func (c Credentials) Password() string { return c.password }
