package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCacheRepository_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewUserCacheRepository(client, time.Minute)
	ctx := context.Background()

	user, err := repo.Get(ctx, "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, user)

	err = repo.Set(ctx, &models.UserDB{ID: 1, Username: "alice"})
	assert.Error(t, err)
}
