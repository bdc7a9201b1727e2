package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"walletpay/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Account caching
func (s *CacheService) CacheAccount(ctx context.Context, account *models.Account) error {
	key := s.GenerateKey("account", "number", account.AccountNumber)
	return s.Set(ctx, key, account)
}

func (s *CacheService) GetAccount(ctx context.Context, accountNumber int64) (*models.Account, error) {
	key := s.GenerateKey("account", "number", accountNumber)
	var account models.Account
	found, err := s.Get(ctx, key, &account)
	if err != nil || !found {
		return nil, err
	}
	return &account, nil
}

func (s *CacheService) InvalidateAccount(ctx context.Context, accountNumber int64) error {
	return s.Delete(ctx, s.GenerateKey("account", "number", accountNumber))
}

// Operation-type caching
func (s *CacheService) CacheOperationType(ctx context.Context, ot *models.OperationType) error {
	key := s.GenerateKey("operation_type", "id", ot.ID)
	return s.Set(ctx, key, ot)
}

func (s *CacheService) GetOperationType(ctx context.Context, id uint) (*models.OperationType, error) {
	key := s.GenerateKey("operation_type", "id", id)
	var ot models.OperationType
	found, err := s.Get(ctx, key, &ot)
	if err != nil || !found {
		return nil, err
	}
	return &ot, nil
}

func (s *CacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
