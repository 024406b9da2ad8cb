package lib

import (
	"cafe/src/db"
	"cafe/src/models"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevocationStore keeps the jti of logged out tokens until they would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisRevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, now: time.Now}
}

func revokedKey(jti string) string {
	return fmt.Sprintf("revoked_token:%s", jti)
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now()).Truncate(time.Second)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(jti), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type DBRevocationStore struct {
	db  *gorm.DB
	now func() time.Time
}

// Expiry times are stored and compared in UTC.
func NewDBRevocationStore(db *gorm.DB) *DBRevocationStore {
	return &DBRevocationStore{db: db, now: time.Now}
}

func (s *DBRevocationStore) Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error {
	if !expiresAt.After(s.now()) {
		return nil
	}
	return s.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Token{ID: jti, UserID: userID, ExpiresAt: expiresAt.UTC()}).
		Error
}

func (s *DBRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := s.db.
		WithContext(ctx).
		Model(&models.Token{}).
		Where("id = ?", jti).
		Where("expires_at > ?", s.now().UTC()).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeExpired removes rows whose token can no longer be presented.
func (s *DBRevocationStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.
		WithContext(ctx).
		Where("expires_at <= ?", s.now().UTC()).
		Delete(&models.Token{})
	return res.RowsAffected, res.Error
}

var revocationStore RevocationStore

// GetRevocationStore uses redis when it is configured and the database otherwise.
func GetRevocationStore() RevocationStore {
	if revocationStore != nil {
		return revocationStore
	}
	if rd := GetRedisClient(); rd != nil {
		revocationStore = NewRedisRevocationStore(rd)
	} else {
		revocationStore = NewDBRevocationStore(db.GetDb())
	}
	return revocationStore
}

func NewRevocationStore(s RevocationStore) {
	revocationStore = s
}
