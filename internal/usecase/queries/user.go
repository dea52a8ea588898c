package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserView carries what the login flow needs besides the hash.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserReadStore interface {
	// FindByUsername returns the user view and its password hash. The
	// hash travels separately so it never ends up in a response.
	FindByUsername(ctx context.Context, username string) (*UserView, string, error)
}
