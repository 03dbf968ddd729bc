package inbound

import (
	"context"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
)

type EnhanceVideoParams struct {
	Media domain.InputMedia
}

// VideoEnhancePipelinePort runs the full enhancement pipeline: validate,
// upload, isolate audio, upload isolated audio, submit the merge job and
// poll it to a terminal state.
type VideoEnhancePipelinePort interface {
	Enhance(ctx context.Context, params EnhanceVideoParams) (*domain.EnhanceResult, error)
}
