package similarity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillswap/skillswap-backend/internal/domain"
)

// Provider is the scoring backend the cache sits in front of.
type Provider interface {
	ScorePairs(ctx context.Context, pairs []domain.SkillPair) ([]domain.SimilarityScore, error)
}

// CachedProvider caches per-pair scores in Redis. Skill similarity is stable,
// so cached entries save a model round-trip on repeat comparisons. A cache
// problem is never an error: misses and Redis failures both fall through to
// the underlying provider.
type CachedProvider struct {
	next Provider
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedProvider(next Provider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
	}
}

// cacheKey length-prefixes both names: skill names are user text, so a bare
// separator would let ("a|b","c") and ("a","b|c") share a key.
func cacheKey(p domain.SkillPair) string {
	a, b := strings.ToLower(p.NameA), strings.ToLower(p.NameB)
	return fmt.Sprintf("similarity:%d:%s|%d:%s", len(a), a, len(b), b)
}

func (c *CachedProvider) ScorePairs(ctx context.Context, pairs []domain.SkillPair) ([]domain.SimilarityScore, error) {
	results := make([]domain.SimilarityScore, len(pairs))
	var missing []domain.SkillPair
	var missingIdx []int

	for i, p := range pairs {
		data, err := c.rdb.Get(ctx, cacheKey(p)).Bytes()
		if err == nil {
			var score domain.SimilarityScore
			if json.Unmarshal(data, &score) == nil {
				results[i] = score
				continue
			}
		}
		missing = append(missing, p)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return results, nil
	}

	scored, err := c.next.ScorePairs(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(scored) != len(missing) {
		return nil, fmt.Errorf("provider returned %d scores for %d pairs", len(scored), len(missing))
	}

	for i, score := range scored {
		results[missingIdx[i]] = score
		if data, err := json.Marshal(score); err == nil {
			c.rdb.Set(ctx, cacheKey(missing[i]), data, c.ttl)
		}
	}
	return results, nil
}
