package repository

import (
	"context"
	"encoding/json"
	"time"

	"lagnasohalaa/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	pricingCacheKey = "pricing:all"
	cacheExpiration = 30 * time.Minute
)

// PricingRepository caches the full plan list in redis; the catalog is tiny
// and read on every pricing page view. A nil redis client disables caching.
type PricingRepository struct {
	*Store[models.PricingPlan]
	redis *redis.Client
}

func NewPricingRepository(store *Store[models.PricingPlan], redisClient *redis.Client) *PricingRepository {
	return &PricingRepository{Store: store, redis: redisClient}
}

// ListPlans returns every plan ordered by ascending price.
func (r *PricingRepository) ListPlans(ctx context.Context) ([]models.PricingPlan, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(ctx, pricingCacheKey).Result()
		if err == nil {
			var plans []models.PricingPlan
			if err := json.Unmarshal([]byte(cached), &plans); err == nil {
				return plans, nil
			}
		}
	}

	plans := []models.PricingPlan{}
	if err := r.db.WithContext(ctx).Order("price ASC").Order("id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(plans); err == nil {
			if err := r.redis.Set(ctx, pricingCacheKey, data, cacheExpiration).Err(); err != nil {
				logrus.Warnf("Failed to cache pricing plans: %v", err)
			}
		}
	}
	return plans, nil
}

func (r *PricingRepository) Create(ctx context.Context, plan *models.PricingPlan) error {
	if err := r.Store.Create(ctx, plan); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *PricingRepository) Save(ctx context.Context, plan *models.PricingPlan) error {
	if err := r.Store.Save(ctx, plan); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *PricingRepository) Delete(ctx context.Context, id uint) error {
	if err := r.Store.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *PricingRepository) invalidate(ctx context.Context) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(ctx, pricingCacheKey).Err(); err != nil {
		logrus.Warnf("Failed to invalidate pricing cache: %v", err)
	}
}
