package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/linguahub/admin-console-backend/internal/admin/domain"
)

// FirebaseProvider implements Provider on top of the Firebase Auth client.
type FirebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(client *auth.Client) *FirebaseProvider {
	return &FirebaseProvider{client: client}
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false)

	rec, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create auth user: %w", err)
	}
	return rec.UID, nil
}

func (p *FirebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("delete auth user: %w", err)
	}
	return nil
}

func (p *FirebaseProvider) GetUserByEmail(ctx context.Context, email string) (*Identity, error) {
	rec, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get auth user by email: %w", err)
	}
	return &Identity{UID: rec.UID, Email: rec.Email}, nil
}

func (p *FirebaseProvider) UpdatePassword(ctx context.Context, uid, password string) error {
	params := (&auth.UserToUpdate{}).Password(password)
	if _, err := p.client.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("update auth user password: %w", err)
	}
	return nil
}

func (p *FirebaseProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	token, err := p.client.CustomToken(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("create custom token: %w", err)
	}
	return token, nil
}
