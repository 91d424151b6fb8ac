package util

import (
	"database/sql"
	"strings"
	"time"
)

// StringToNullString converts a string to sql.NullString.
// An empty string is treated as NULL.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// TimePtrToNullTime converts an optional time to sql.NullTime.
func TimePtrToNullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// NullTimeToPtr is the inverse of TimePtrToNullTime.
func NullTimeToPtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern builds a case-insensitive "contains" pattern for `LOWER(col) LIKE ? ESCAPE '\'`.
func LikePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}
