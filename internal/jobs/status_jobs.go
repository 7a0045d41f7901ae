package jobs

import (
	"context"
	"time"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/metrics"
)

const snapshotTimeout = 30 * time.Second

// SnapshotApplicationStatuses counts stored applications per status and
// publishes the result to the applications gauge.
func (jr *JobRunner) SnapshotApplicationStatuses() {
	jr.runWithRecovery("SnapshotApplicationStatuses", func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		counts, err := jr.apps.CountByStatus(ctx)
		if err != nil {
			logger.Error("Failed to count applications by status", "error", err)
			return
		}

		metrics.SetApplicationCounts(counts)

		total := 0
		for _, n := range counts {
			total += n
		}
		logger.Info("Application status snapshot taken",
			"total", total,
			"submitted", counts[domain.ApplicationStatusSubmitted],
			"accepted", counts[domain.ApplicationStatusAccepted],
			"waitlisted", counts[domain.ApplicationStatusWaitlisted],
			"confirmed", counts[domain.ApplicationStatusConfirmed])
	})
}
