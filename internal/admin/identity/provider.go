package identity

import "context"

// Identity is the provider-side view of an account.
type Identity struct {
	UID   string
	Email string
}

// Provider abstracts the external identity service: account lifecycle,
// credential updates and token issuance. Credential verification is owned by
// the provider's own token exchange; this interface never checks passwords.
type Provider interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	GetUserByEmail(ctx context.Context, email string) (*Identity, error)
	UpdatePassword(ctx context.Context, uid, password string) error
	CustomToken(ctx context.Context, uid string) (string, error)
}
