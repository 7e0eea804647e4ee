package domain

import "strings"

// Account types stored on a user record. Only "admin" accounts may obtain a
// console login token.
const (
	AccountTypeFree    = "free"
	AccountTypePremium = "premium"
	AccountTypeAdmin   = "admin"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

const (
	DefaultLanguage   = "English"
	DefaultTranslator = "google"
)

// UserRecord is the application profile stored under users/<userId> in the
// Realtime Database. The identity itself (credentials, email uniqueness)
// lives in Firebase Auth; this record only mirrors the uid and email.
type UserRecord struct {
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	AccountType   string `json:"accountType"`
	Username      string `json:"username"`
	Status        string `json:"status"`
	Language      string `json:"language"`
	Translator    string `json:"translator"`
	CreatedAt     string `json:"createdAt"`
	LastLoginDate string `json:"lastLoginDate"`
}

// NewUserRecord builds the record written at account creation. Username is
// derived from the email's local part once and never re-derived on update.
func NewUserRecord(uid, email, createdAt string) UserRecord {
	return UserRecord{
		UserID:        uid,
		Email:         email,
		AccountType:   AccountTypeFree,
		Username:      usernameFromEmail(email),
		Status:        StatusOffline,
		Language:      DefaultLanguage,
		Translator:    DefaultTranslator,
		CreatedAt:     createdAt,
		LastLoginDate: createdAt,
	}
}

func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// AdminUser is the reduced projection returned on a successful console login.
type AdminUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
}

// UserLogin is the per-user projection inside a daily usage entry.
type UserLogin struct {
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
	LoginTime   string `json:"loginTime"`
}

// DailyUsageEntry describes login activity for one calendar day. Derived per
// report request, never persisted.
type DailyUsageEntry struct {
	Date  string      `json:"date"`
	Count int         `json:"count"`
	Users []UserLogin `json:"users"`
}

// TopUser is one leaderboard row: how often a user appeared across the
// report window.
type TopUser struct {
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
	Count       int    `json:"count"`
}
