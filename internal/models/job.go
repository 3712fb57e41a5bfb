package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// TrainingJob tracks one background classifier training run. The summary
// fields are filled in when the job completes.
type TrainingJob struct {
	ID            uuid.UUID `json:"id"`
	Status        JobStatus `json:"status"`
	TrainExamples int       `json:"train_examples"`
	TestExamples  int       `json:"test_examples"`
	Labels        int       `json:"labels"`
	Accuracy      float64   `json:"accuracy"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	FinishedAt    time.Time `json:"finished_at,omitempty"`
}
