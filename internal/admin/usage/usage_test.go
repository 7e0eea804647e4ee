package usage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguahub/admin-console-backend/internal/admin/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}

func TestDailyLoginUsage_WindowShape(t *testing.T) {
	today := day(t, "2024-01-02")

	entries := DailyLoginUsage(map[string]domain.UserRecord{}, today)

	require.Len(t, entries, 7)
	for i, entry := range entries {
		expected := today.AddDate(0, 0, -(6 - i)).Format("2006-01-02")
		assert.Equal(t, expected, entry.Date)
		assert.Equal(t, 0, entry.Count)
		assert.NotNil(t, entry.Users, "empty days must serialize as [], not null")
	}
}

func TestDailyLoginUsage_BucketsByLoginDay(t *testing.T) {
	users := map[string]domain.UserRecord{
		"u1": {Email: "a@x.com", AccountType: "free", LastLoginDate: "2024-01-02T10:00:00Z"},
		"u2": {Email: "b@x.com", AccountType: "admin", LastLoginDate: "2024-01-02T11:00:00Z"},
	}

	entries := DailyLoginUsage(users, day(t, "2024-01-02"))

	require.Len(t, entries, 7)
	last := entries[6]
	assert.Equal(t, "2024-01-02", last.Date)
	assert.Equal(t, 2, last.Count)
	require.Len(t, last.Users, 2)
	assert.Equal(t, "a@x.com", last.Users[0].Email)
	assert.Equal(t, "b@x.com", last.Users[1].Email)

	for _, entry := range entries[:6] {
		assert.Equal(t, 0, entry.Count)
		assert.Empty(t, entry.Users)
	}
}

func TestDailyLoginUsage_EachUserAppearsOnExactlyOneDay(t *testing.T) {
	users := map[string]domain.UserRecord{
		"u1": {Email: "a@x.com", LastLoginDate: "2024-01-01T23:59:59Z"},
		"u2": {Email: "b@x.com", LastLoginDate: "2023-12-27T00:00:00Z"},
		"u3": {Email: "c@x.com", LastLoginDate: "2023-12-26T12:00:00Z"}, // outside window
	}

	entries := DailyLoginUsage(users, day(t, "2024-01-01"))

	appearances := map[string]int{}
	for _, entry := range entries {
		for _, u := range entry.Users {
			appearances[u.Email]++
		}
	}

	assert.Equal(t, 1, appearances["a@x.com"])
	assert.Equal(t, 1, appearances["b@x.com"])
	assert.Zero(t, appearances["c@x.com"])
}

func TestDailyLoginUsage_SkipsBlankAndUnparseableDates(t *testing.T) {
	users := map[string]domain.UserRecord{
		"u1": {Email: "a@x.com", LastLoginDate: ""},
		"u2": {Email: "b@x.com", LastLoginDate: "yesterday"},
		"u3": {Email: "c@x.com", LastLoginDate: "2024-01-02T08:00:00Z"},
	}

	entries := DailyLoginUsage(users, day(t, "2024-01-02"))

	total := 0
	for _, entry := range entries {
		total += entry.Count
	}
	assert.Equal(t, 1, total)
}

func TestDailyLoginUsage_UsersSortedByEmailWithinDay(t *testing.T) {
	users := map[string]domain.UserRecord{
		"u1": {Email: "zoe@x.com", LastLoginDate: "2024-01-02T01:00:00Z"},
		"u2": {Email: "amy@x.com", LastLoginDate: "2024-01-02T23:00:00Z"},
		"u3": {Email: "mia@x.com", LastLoginDate: "2024-01-02T12:00:00Z"},
	}

	entries := DailyLoginUsage(users, day(t, "2024-01-02"))

	emails := make([]string, 0, 3)
	for _, u := range entries[6].Users {
		emails = append(emails, u.Email)
	}
	assert.Equal(t, []string{"amy@x.com", "mia@x.com", "zoe@x.com"}, emails)
}

func TestDailyLoginUsage_TruncatesTimeToUTCDate(t *testing.T) {
	// 23:30-05:00 is 04:30Z the next day
	users := map[string]domain.UserRecord{
		"u1": {Email: "a@x.com", LastLoginDate: "2024-01-01T23:30:00-05:00"},
	}

	entries := DailyLoginUsage(users, day(t, "2024-01-02"))

	assert.Equal(t, 1, entries[6].Count)
	assert.Equal(t, 0, entries[5].Count)
}

func TestTopUsers_RankingAndTies(t *testing.T) {
	entries := make([]domain.DailyUsageEntry, 0, 5)
	// a and b log in on 5 days, c on 3; a encountered before b throughout
	for i := 0; i < 5; i++ {
		users := []domain.UserLogin{
			{Email: "a@x.com", AccountType: "free"},
			{Email: "b@x.com", AccountType: "premium"},
		}
		if i < 3 {
			users = append(users, domain.UserLogin{Email: "c@x.com", AccountType: "free"})
		}
		entries = append(entries, domain.DailyUsageEntry{Date: fmt.Sprintf("2024-01-0%d", i+1), Users: users})
	}

	ranked := TopUsers(entries, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "a@x.com", ranked[0].Email)
	assert.Equal(t, 5, ranked[0].Count)
	assert.Equal(t, "b@x.com", ranked[1].Email)
	assert.Equal(t, 5, ranked[1].Count)
	assert.Equal(t, "c@x.com", ranked[2].Email)
	assert.Equal(t, 3, ranked[2].Count)
}

func TestTopUsers_NeverExceedsLimit(t *testing.T) {
	var users []domain.UserLogin
	for i := 0; i < 25; i++ {
		users = append(users, domain.UserLogin{Email: fmt.Sprintf("user%02d@x.com", i)})
	}
	entries := []domain.DailyUsageEntry{{Date: "2024-01-01", Users: users}}

	ranked := TopUsers(entries, 10)

	assert.Len(t, ranked, 10)
}

func TestTopUsers_EmptyWindow(t *testing.T) {
	entries := DailyLoginUsage(nil, day(t, "2024-01-02"))

	ranked := TopUsers(entries, 10)

	assert.Empty(t, ranked)
}
