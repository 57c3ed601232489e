package cache

import (
	"context"

	"devcollab/internal/domain/profile"
	"devcollab/internal/repository"

	"github.com/google/uuid"
)

// CachedProfileRepository decorates a ProfileRepository with a Redis
// snapshot cache. Single-profile lookups are cached; the active-pool
// listing always hits storage so rankings see fresh candidates.
type CachedProfileRepository struct {
	inner repository.ProfileRepository
	redis *Redis
}

func NewCachedProfileRepository(inner repository.ProfileRepository, redis *Redis) *CachedProfileRepository {
	return &CachedProfileRepository{inner: inner, redis: redis}
}

func profileKey(id uuid.UUID) string {
	return "profile:" + id.String()
}

func (r *CachedProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	var cached profile.Profile
	if hit, err := r.redis.GetJSON(ctx, profileKey(id), &cached); err == nil && hit {
		return cached, nil
	}

	p, err := r.inner.GetProfile(ctx, id)
	if err != nil {
		return profile.Profile{}, err
	}

	_ = r.redis.SetJSON(ctx, profileKey(id), p, 0)
	return p, nil
}

func (r *CachedProfileRepository) ListActive(ctx context.Context) ([]profile.Profile, error) {
	return r.inner.ListActive(ctx)
}

// Invalidate drops a cached snapshot, for callers that mutate profiles.
func (r *CachedProfileRepository) Invalidate(ctx context.Context, id uuid.UUID) error {
	return r.redis.Delete(ctx, profileKey(id))
}
