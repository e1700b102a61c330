package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

const userCacheKeyPrefix = "user:"

// cachedUser is what gets stored in Redis. The password hash never leaves Postgres.
type cachedUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCacheRepository caches users by username in Redis
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached user or apperror.ErrNotFound on a miss.
func (r *UserCacheRepository) Get(ctx context.Context, username string) (*models.UserDB, error) {
	key := userCacheKeyPrefix + username

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Debugw("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var cu cachedUser
	if err := json.Unmarshal(val, &cu); err != nil {
		return nil, err
	}

	return &models.UserDB{
		ID:        cu.ID,
		Username:  cu.Username,
		CreatedAt: cu.CreatedAt,
	}, nil
}

// Set stores the user under its username with the configured TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userCacheKeyPrefix + user.Username

	data, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
