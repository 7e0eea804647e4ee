package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/linguahub/admin-console-backend/internal/admin/domain"
	"github.com/linguahub/admin-console-backend/internal/admin/identity"
	"github.com/linguahub/admin-console-backend/internal/admin/repository"
	"github.com/linguahub/admin-console-backend/internal/admin/usage"
	"github.com/linguahub/admin-console-backend/internal/mailer"
)

// AdminService orchestrates the console operations across the identity
// provider and the user-record store. It is stateless; every method runs a
// single request against fresh provider state.
type AdminService struct {
	provider identity.Provider
	store    repository.Store
	mail     mailer.Mailer
	now      func() time.Time
}

func NewAdminService(provider identity.Provider, store repository.Store, mail mailer.Mailer) *AdminService {
	return &AdminService{
		provider: provider,
		store:    store,
		mail:     mail,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Tests only.
func (s *AdminService) WithClock(now func() time.Time) *AdminService {
	s.now = now
	return s
}

// CreateUser registers the identity, then writes the default profile record.
// The two writes are not atomic; when the record write fails the identity is
// deleted best-effort so no half-created account is left behind.
func (s *AdminService) CreateUser(ctx context.Context, email, password string) (string, error) {
	logger := NewLogger(ctx)

	uid, err := s.provider.CreateUser(ctx, email, password)
	if err != nil {
		return "", err
	}

	nowStr := s.now().UTC().Format(time.RFC3339)
	rec := domain.NewUserRecord(uid, email, nowStr)

	if err := s.store.Put(ctx, uid, rec); err != nil {
		if delErr := s.provider.DeleteUser(ctx, uid); delErr != nil {
			logger.LogWarnf("create_user", "compensating identity delete failed uid=%s error=%v", uid, delErr)
		}
		return "", err
	}

	logger.LogInfof("create_user", "uid=%s email=%s", uid, email)
	return uid, nil
}

// ListUsers returns the full record collection keyed by user id.
func (s *AdminService) ListUsers(ctx context.Context) (map[string]domain.UserRecord, error) {
	return s.store.List(ctx)
}

// UpdateUser merges a partial field patch into the stored record. The userId
// key is stripped before the merge; it is never mutable.
func (s *AdminService) UpdateUser(ctx context.Context, uid string, patch map[string]interface{}) error {
	delete(patch, "userId")
	return s.store.Patch(ctx, uid, patch)
}

// DeleteUser removes the identity entry, then the record. A failure between
// the two steps leaves an orphaned record; the id is logged so it can be
// reconciled by hand.
func (s *AdminService) DeleteUser(ctx context.Context, uid string) error {
	logger := NewLogger(ctx)

	if err := s.provider.DeleteUser(ctx, uid); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, uid); err != nil {
		logger.LogWarnf("delete_user", "orphaned user record uid=%s error=%v", uid, err)
		return err
	}

	logger.LogInfof("delete_user", "uid=%s", uid)
	return nil
}

// Login gates console access to admin accounts. The password is not compared
// here: credential verification is deferred to the provider's custom-token
// exchange, the same contract the identity service itself enforces.
func (s *AdminService) Login(ctx context.Context, email, _ string) (string, *domain.AdminUser, error) {
	ident, err := s.provider.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	rec, err := s.store.Get(ctx, ident.UID)
	if err != nil || rec.AccountType != domain.AccountTypeAdmin {
		return "", nil, domain.ErrNotAdmin
	}

	token, err := s.provider.CustomToken(ctx, ident.UID)
	if err != nil {
		return "", nil, err
	}

	return token, &domain.AdminUser{
		UID:         ident.UID,
		Email:       ident.Email,
		AccountType: rec.AccountType,
	}, nil
}

// ResetPassword applies a random temporary password to the account and hands
// it to the mailer for delivery.
func (s *AdminService) ResetPassword(ctx context.Context, email string) error {
	logger := NewLogger(ctx)

	ident, err := s.provider.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	tempPassword, err := generateTempPassword(tempPasswordLength)
	if err != nil {
		return err
	}

	if err := s.provider.UpdatePassword(ctx, ident.UID, tempPassword); err != nil {
		return err
	}

	if err := s.mail.SendTempPassword(ctx, email, tempPassword); err != nil {
		logger.LogError("reset_password", err)
		return err
	}

	logger.LogInfof("reset_password", "email=%s", email)
	return nil
}

// Usage builds the 7-day daily-login report from a fresh snapshot of the
// record collection.
func (s *AdminService) Usage(ctx context.Context) ([]domain.DailyUsageEntry, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return usage.DailyLoginUsage(users, s.now()), nil
}

// TopUsers returns the leaderboard over the current report window.
func (s *AdminService) TopUsers(ctx context.Context, limit int) ([]domain.TopUser, error) {
	entries, err := s.Usage(ctx)
	if err != nil {
		return nil, err
	}
	return usage.TopUsers(entries, limit), nil
}

const (
	tempPasswordLength   = 8
	tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

func generateTempPassword(n int) (string, error) {
	buf := make([]byte, n)
	alphabetLen := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generate temp password: %w", err)
		}
		buf[i] = tempPasswordAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
