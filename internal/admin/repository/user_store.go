package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"firebase.google.com/go/v4/db"

	"github.com/linguahub/admin-console-backend/internal/admin/domain"
)

// Store is the user-record collection: an opaque keyed mapping owned by the
// external database. The API holds no copy of it.
type Store interface {
	Put(ctx context.Context, uid string, rec domain.UserRecord) error
	Get(ctx context.Context, uid string) (*domain.UserRecord, error)
	List(ctx context.Context) (map[string]domain.UserRecord, error)
	Patch(ctx context.Context, uid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uid string) error
}

const usersPath = "users"

// RTDBStore keeps user records under the users/ ref of the Realtime Database.
type RTDBStore struct {
	client *db.Client
}

func NewRTDBStore(client *db.Client) *RTDBStore {
	return &RTDBStore{client: client}
}

func (s *RTDBStore) userRef(uid string) *db.Ref {
	return s.client.NewRef(usersPath).Child(uid)
}

func (s *RTDBStore) Put(ctx context.Context, uid string, rec domain.UserRecord) error {
	if err := s.userRef(uid).Set(ctx, rec); err != nil {
		return fmt.Errorf("write user record: %w", err)
	}
	return nil
}

func (s *RTDBStore) Get(ctx context.Context, uid string) (*domain.UserRecord, error) {
	// RTDB returns JSON null for absent paths, which leaves the target
	// untouched; fetch raw first so absence is detectable.
	var raw map[string]interface{}
	if err := s.userRef(uid).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("read user record: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrUserNotFound
	}

	rec, err := recordFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RTDBStore) List(ctx context.Context) (map[string]domain.UserRecord, error) {
	var users map[string]domain.UserRecord
	if err := s.client.NewRef(usersPath).Get(ctx, &users); err != nil {
		return nil, fmt.Errorf("read user records: %w", err)
	}
	if users == nil {
		users = map[string]domain.UserRecord{}
	}
	return users, nil
}

func (s *RTDBStore) Patch(ctx context.Context, uid string, fields map[string]interface{}) error {
	// Update on an absent ref would silently create a partial record, so
	// existence is checked first and absence surfaces as an error.
	if _, err := s.Get(ctx, uid); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.userRef(uid).Update(ctx, fields); err != nil {
		return fmt.Errorf("update user record: %w", err)
	}
	return nil
}

func (s *RTDBStore) Delete(ctx context.Context, uid string) error {
	if err := s.userRef(uid).Delete(ctx); err != nil {
		return fmt.Errorf("delete user record: %w", err)
	}
	return nil
}

func recordFromRaw(raw map[string]interface{}) (*domain.UserRecord, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	var rec domain.UserRecord
	if err := json.Unmarshal(buf, &rec); err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	return &rec, nil
}
