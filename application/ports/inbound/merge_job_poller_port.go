package inbound

import "context"

// MergeJobPollerPort drives a submitted merge job to a terminal state and
// returns the output URL of the merged video.
type MergeJobPollerPort interface {
	Poll(ctx context.Context, jobID string) (string, error)
}
