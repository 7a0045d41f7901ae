package jobs

import (
	"hackportal-backend/internal/config"
	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	apps   repository.ApplicationRepository
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(apps repository.ApplicationRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		apps:   apps,
		config: cfg,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.SnapshotApplicationStatuses()
}
