package outbound

import (
	"context"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
)

// MergeJobPort talks to the external asynchronous merge service. Submit
// returns the opaque job identifier; CheckStatus observes the job state.
type MergeJobPort interface {
	Submit(ctx context.Context, videoURL string, audioURL string) (string, error)
	CheckStatus(ctx context.Context, jobID string) (domain.MergeJob, error)
}
