package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
)

// RedisRepository keeps sessions in Redis so several server restarts (or a
// warm standby) do not log everyone out. Each session is a JSON value under
// session:<token>; a per-user set under usersessions:<user_id> supports
// DeleteByUserID. Sessions have no TTL: they live until logout or until the
// owning account is deactivated, mirroring the other backends.
type RedisRepository struct {
	db *redis.Client
}

type redisSession struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func sessionKey(token string) string  { return "session:" + token }
func userSetKey(userID string) string { return "usersessions:" + userID }

// NewRedisRepository connects to Redis and verifies the connection.
func NewRedisRepository(ctx context.Context, addr, password string, db int) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping error: %w", err)
	}
	return &RedisRepository{db: client}, nil
}

func (r *RedisRepository) Add(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(redisSession{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return err
	}

	pipe := r.db.TxPipeline()
	pipe.Set(ctx, sessionKey(session.Token), data, 0)
	pipe.SAdd(ctx, userSetKey(session.UserID), session.Token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	val, err := r.db.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var s redisSession
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("redis session decode error: %w", err)
	}
	return &models.Session{Token: s.Token, UserID: s.UserID, CreatedAt: s.CreatedAt}, nil
}

func (r *RedisRepository) Delete(ctx context.Context, token string) error {
	s, err := r.Get(ctx, token)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.db.TxPipeline()
	pipe.Del(ctx, sessionKey(token))
	pipe.SRem(ctx, userSetKey(s.UserID), token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

func (r *RedisRepository) DeleteByUserID(ctx context.Context, userID string) error {
	tokens, err := r.db.SMembers(ctx, userSetKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("redis smembers error: %w", err)
	}

	pipe := r.db.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, sessionKey(token))
	}
	pipe.Del(ctx, userSetKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}
