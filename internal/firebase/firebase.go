package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/linguahub/admin-console-backend/config"
)

// Clients bundles the Firebase Admin SDK clients the backend talks to:
// Auth owns identities and token issuance, Database owns the users collection.
type Clients struct {
	Auth     *auth.Client
	Database *db.Client
}

// Initialize sets up the Firebase Admin SDK from a service account file and
// returns the Auth and Realtime Database clients.
func Initialize(ctx context.Context, cfg *config.FirebaseConfig) (*Clients, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: cfg.DatabaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Database client: %w", err)
	}

	return &Clients{Auth: authClient, Database: dbClient}, nil
}
