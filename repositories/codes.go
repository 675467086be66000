//go:generate go run go.uber.org/mock/mockgen -source=codes.go -destination=../mocks/mock_code_store.go -package=mocks
package repositories

import (
	"context"
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// IEmailCodeStore keeps short-lived email verification codes.
type IEmailCodeStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

type RedisCodeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCodeStore(rdb *redis.Client, ttl time.Duration) IEmailCodeStore {
	return &RedisCodeStore{rdb: rdb, ttl: ttl}
}

func codeKey(email string) string {
	return "email_code:" + email
}

// Issue generates a 6-digit code and stores it under the email with the
// configured TTL, replacing any previous code.
func (s *RedisCodeStore) Issue(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.rdb.Set(ctx, codeKey(email), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store email code: %w", err)
	}
	return code, nil
}

// Verify consumes the code on success so it cannot be replayed.
func (s *RedisCodeStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, codeKey(email)).Result()
	if stderrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read email code: %w", err)
	}
	if stored != code {
		return false, nil
	}
	if err := s.rdb.Del(ctx, codeKey(email)).Err(); err != nil {
		return false, fmt.Errorf("consume email code: %w", err)
	}
	return true, nil
}
