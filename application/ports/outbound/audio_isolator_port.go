package outbound

import "context"

type IsolateAudioParams struct {
	FileName    string
	Content     []byte
	ContentType string
}

// AudioIsolatorPort strips background noise from the audio track of the
// given media bytes, returning the isolated audio as a WAV payload.
type AudioIsolatorPort interface {
	Isolate(ctx context.Context, params IsolateAudioParams) ([]byte, error)
}
