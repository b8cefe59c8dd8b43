package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/redis/go-redis/v9"
)

const jobKeyPrefix = "wm_job:"

// SaveJob persists the job state so it can be polled while the queue
// workers run. Entries expire after the configured job TTL.
func (s *StorageService) SaveJob(ctx context.Context, job *models.WatermarkJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return s.redisClient.Set(ctx, jobKeyPrefix+job.ID, data, s.jobTTL).Err()
}

// GetJob returns the stored job state, or nil when the job is unknown.
func (s *StorageService) GetJob(ctx context.Context, jobID string) (*models.WatermarkJob, error) {
	data, err := s.redisClient.Get(ctx, jobKeyPrefix+jobID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("job get error: %w", err)
	}

	var job models.WatermarkJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}
