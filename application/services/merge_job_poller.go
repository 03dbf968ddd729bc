package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/inbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"time"
)

type mergeJobPoller struct {
	logger      outbound.LoggerPort
	mergeClient outbound.MergeJobPort
	maxAttempts int
	interval    time.Duration
}

func NewMergeJobPoller(logger outbound.LoggerPort, mergeClient outbound.MergeJobPort,
	maxAttempts int, interval time.Duration) inbound.MergeJobPollerPort {
	return &mergeJobPoller{
		logger:      logger,
		mergeClient: mergeClient,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

// Poll queries job status once per interval until the job reaches a
// terminal state or the attempt budget runs out. Transport failures during
// a query consume an attempt and are retried; a malformed terminal payload
// propagates immediately.
func (p *mergeJobPoller) Poll(ctx context.Context, jobID string) (string, error) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		job, err := p.mergeClient.CheckStatus(ctx, jobID)
		if err != nil {
			if errors.Is(err, domain.ErrMergeProtocol) {
				return "", err
			}
			p.logger.WarnWithFields("merge status query failed", map[string]interface{}{
				"jobID":       jobID,
				"attempt":     attempt,
				"maxAttempts": p.maxAttempts,
				"error":       err.Error(),
			})
			if attempt == p.maxAttempts {
				return "", err
			}
		} else {
			switch job.Status {
			case domain.MergeJobCompleted:
				return job.OutputURL, nil
			case domain.MergeJobError:
				return "", fmt.Errorf("%w: %s", domain.ErrMergeJobFailed, job.ErrorDetail)
			}
			p.logger.DebugWithFields("merge job still processing", map[string]interface{}{
				"jobID":   jobID,
				"attempt": attempt,
			})
		}

		if attempt < p.maxAttempts {
			if err := sleepWithContext(ctx, p.interval); err != nil {
				return "", err
			}
		}
	}

	return "", fmt.Errorf("%w: still processing after %d attempts", domain.ErrPollTimeout, p.maxAttempts)
}
