package storage

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/redis/go-redis/v9"
)

func (s *StorageService) GetCachedResult(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *StorageService) SetCachedResult(ctx context.Context, cacheKey string, data []byte) error {
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}

func (s *StorageService) CacheKey(document []byte, request *models.WatermarkRequest) string {
	hash := sha256.New()

	// Include the document content
	hash.Write(document)

	// Include the watermark text fields
	hash.Write([]byte(fmt.Sprintf("text_%s_%s_%s",
		request.WatermarkLine1, request.FirstName, request.LastName)))

	// Include appearance overrides
	if request.Options != nil {
		if request.Options.Size != nil {
			hash.Write([]byte(fmt.Sprintf("size_%.4f", *request.Options.Size)))
		}
		if request.Options.Opacity != nil {
			hash.Write([]byte(fmt.Sprintf("opacity_%.4f", *request.Options.Opacity)))
		}
		if request.Options.Rotate != nil {
			hash.Write([]byte(fmt.Sprintf("rotate_%.4f", *request.Options.Rotate)))
		}
		if request.Options.SizeSubtitle != nil {
			hash.Write([]byte(fmt.Sprintf("sizesubtitle_%.4f", *request.Options.SizeSubtitle)))
		}
	}

	return fmt.Sprintf("wm_cache:%x", hash.Sum(nil))
}

// CleanupCache deletes cache entries that carry no expiry. SetCachedResult
// always writes with a TTL, so this only reaps keys left behind by older
// deployments or manual writes.
func (s *StorageService) CleanupCache(ctx context.Context) error {
	keys, err := s.redisClient.Keys(ctx, "wm_cache:*").Result()
	if err != nil {
		return err
	}

	for _, key := range keys {
		ttl := s.redisClient.TTL(ctx, key).Val()
		if ttl <= 0 {
			s.redisClient.Del(ctx, key)
		}
	}

	return nil
}

func (s *StorageService) GetCacheStats(ctx context.Context) (map[string]interface{}, error) {
	info, err := s.redisClient.Info(ctx, "memory").Result()
	if err != nil {
		return nil, err
	}

	dbSize, err := s.redisClient.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := map[string]interface{}{
		"db_keys": dbSize,
		"info":    info,
	}

	return stats, nil
}
