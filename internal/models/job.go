package models

import "time"

type WatermarkJob struct {
	ID        string           `json:"id"`
	Request   WatermarkRequest `json:"request"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	Result    *JobResult       `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
}

type JobResult struct {
	URL         string    `json:"url"`
	FileSize    int64     `json:"file_size"`
	PageCount   int       `json:"page_count"`
	ProcessedAt time.Time `json:"processed_at"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
