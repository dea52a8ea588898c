package request

import (
	"ferias-api/internal/domain/user"
)

// No binding-level required tags: empty credentials must surface as the
// usual 401 messages, not as a schema error.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Username, r.Password)
}
