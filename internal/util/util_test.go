package util

import (
	"database/sql"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
	_, err := ulid.ParseStrict(a)
	require.NoError(t, err)
}

func TestStringToNullString(t *testing.T) {
	assert.Equal(t, sql.NullString{}, StringToNullString(""))
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, StringToNullString("x"))
}

func TestNullTimeRoundTrip(t *testing.T) {
	assert.False(t, TimePtrToNullTime(nil).Valid)
	assert.Nil(t, NullTimeToPtr(sql.NullTime{}))

	now := time.Now()
	nt := TimePtrToNullTime(&now)
	require.True(t, nt.Valid)
	assert.True(t, now.Equal(*NullTimeToPtr(nt)))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%ana%", LikePattern("  Ana "))
	assert.Equal(t, `%50\%\_off%`, LikePattern("50%_OFF"))
	assert.Equal(t, "%%", LikePattern(""))
}
