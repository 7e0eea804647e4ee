// Package usage computes the daily-login report the dashboard renders: a
// fixed 7-day window of login counts and the leaderboard derived from it.
// Everything here is pure; callers pass a snapshot of the record collection.
package usage

import (
	"sort"
	"time"

	"github.com/linguahub/admin-console-backend/internal/admin/domain"
)

// WindowDays is the fixed reporting window.
const WindowDays = 7

const dateLayout = "2006-01-02"

// DailyLoginUsage buckets user records by the calendar day (UTC) of their
// lastLoginDate over the 7 days ending at today, oldest day first. Records
// with a blank or unparseable lastLoginDate are skipped. Users within a day
// are ordered by email so the report is stable across snapshots.
func DailyLoginUsage(users map[string]domain.UserRecord, today time.Time) []domain.DailyUsageEntry {
	byDay := make(map[string][]domain.UserLogin, WindowDays)
	for _, rec := range users {
		day, ok := loginDay(rec.LastLoginDate)
		if !ok {
			continue
		}
		byDay[day] = append(byDay[day], domain.UserLogin{
			Email:       rec.Email,
			AccountType: rec.AccountType,
			LoginTime:   rec.LastLoginDate,
		})
	}

	entries := make([]domain.DailyUsageEntry, 0, WindowDays)
	start := today.UTC()
	for i := WindowDays - 1; i >= 0; i-- {
		date := start.AddDate(0, 0, -i).Format(dateLayout)

		logins := byDay[date]
		sort.Slice(logins, func(a, b int) bool {
			return logins[a].Email < logins[b].Email
		})
		if logins == nil {
			logins = []domain.UserLogin{}
		}

		entries = append(entries, domain.DailyUsageEntry{
			Date:  date,
			Count: len(logins),
			Users: logins,
		})
	}

	return entries
}

// TopUsers ranks users by how many daily entries they appear in across the
// window, descending. Ties keep first-encounter order; the result is capped
// at limit entries.
func TopUsers(entries []domain.DailyUsageEntry, limit int) []domain.TopUser {
	index := make(map[string]int)
	ranked := make([]domain.TopUser, 0)

	for _, entry := range entries {
		for _, u := range entry.Users {
			i, seen := index[u.Email]
			if !seen {
				index[u.Email] = len(ranked)
				ranked = append(ranked, domain.TopUser{
					Email:       u.Email,
					AccountType: u.AccountType,
				})
				i = index[u.Email]
			}
			ranked[i].Count++
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Count > ranked[b].Count
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// loginDay truncates an RFC3339 timestamp to its UTC calendar date.
func loginDay(lastLogin string) (string, bool) {
	if lastLogin == "" {
		return "", false
	}
	t, err := time.Parse(time.RFC3339, lastLogin)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(dateLayout), true
}
