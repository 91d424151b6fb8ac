package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"survey-console/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "surveyconsole:structure:session:s1"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`{"current":0}`)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `{"current":0}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).RedisNil()
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection refused")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", 30*time.Minute).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, "k", "v", 30*time.Minute))

	redisErr := errors.New("OOM command not allowed")
	mock.ExpectSet("k", "v", time.Minute).SetErr(redisErr)
	assert.ErrorIs(t, adapter.Set(ctx, "k", "v", time.Minute), redisErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)

	mock.ExpectDel("k").SetVal(0)
	assert.NoError(t, adapter.Delete(context.Background(), "k"), "deleting a missing key is not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Expire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectExpire("k", time.Minute).SetVal(true)
	assert.NoError(t, adapter.Expire(ctx, "k", time.Minute))

	mock.ExpectExpire("gone", time.Minute).SetVal(false)
	assert.ErrorIs(t, adapter.Expire(ctx, "gone", time.Minute), domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectPing().SetErr(redis.ErrClosed)
	assert.ErrorIs(t, adapter.Ping(context.Background()), redis.ErrClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
