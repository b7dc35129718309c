package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Principal is the authenticated user attached to the current session. It is
// the secret-stripped projection of a Credential; absence means the session is
// unauthenticated.
type Principal struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credential is one entry of the durable registration registry. SecretHash is
// a bcrypt hash; the plaintext secret is never stored or compared directly.
type Credential struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	SecretHash string    `json:"secretHash"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Principal returns the session-visible projection of the credential.
func (c *Credential) Principal() *Principal {
	return &Principal{
		ID:        c.ID,
		Email:     c.Email,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
