package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

const approvedListKey = "bathrooms:approved"

// BathroomCacheRepository caches the approved-bathroom listing in Redis.
// Submissions, imports, approvals and clears invalidate the key.
type BathroomCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewBathroomCacheRepository creates a new cache repository with the given TTL.
func NewBathroomCacheRepository(client *redis.Client, expiration time.Duration) *BathroomCacheRepository {
	return &BathroomCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetApproved returns the cached approved listing, or (nil, nil) on a miss.
func (r *BathroomCacheRepository) GetApproved(ctx context.Context) ([]models.BathroomDB, error) {
	b, err := r.client.Get(ctx, approvedListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("cache get", "key", approvedListKey, "error", err)
		return nil, err
	}

	var bathrooms []models.BathroomDB
	if err := json.Unmarshal(b, &bathrooms); err != nil {
		logger.Log.Infow("cache get", "key", approvedListKey, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", approvedListKey, "result", len(bathrooms))
	return bathrooms, nil
}

// SetApproved stores the approved listing with the configured TTL.
func (r *BathroomCacheRepository) SetApproved(ctx context.Context, bathrooms []models.BathroomDB) error {
	b, err := json.Marshal(bathrooms)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, approvedListKey, b, r.exp).Err()

	logger.Log.Infow("cache set", "key", approvedListKey, "result", len(bathrooms), "error", err)
	return err
}

// Invalidate drops the cached listing.
func (r *BathroomCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, approvedListKey).Err()

	logger.Log.Infow("cache del", "key", approvedListKey, "error", err)
	return err
}
