package outbound

import (
	"context"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
)

// RecordStorePort persists enhancement audit records. Writes are
// best-effort; the pipeline logs failures and moves on.
type RecordStorePort interface {
	SaveRecord(ctx context.Context, record domain.EnhancementRecord) error
}
