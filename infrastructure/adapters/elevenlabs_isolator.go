package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/config"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

const audioIsolationPath = "/v1/audio-isolation"

type elevenLabsIsolator struct {
	ContentFetcher
	isolationConfig *config.IsolationConfig
	logger          outbound.LoggerPort
}

func NewElevenLabsIsolator(contentFetcher ContentFetcher, isolationConfig *config.IsolationConfig,
	logger outbound.LoggerPort) outbound.AudioIsolatorPort {
	return &elevenLabsIsolator{
		ContentFetcher:  contentFetcher,
		isolationConfig: isolationConfig,
		logger:          logger,
	}
}

// Isolate posts the media bytes to the audio-isolation endpoint and buffers
// the isolated WAV response. A context deadline hit during the call is
// promoted to domain.ErrIsolationTimeout; an empty body to
// domain.ErrIsolationEmpty.
func (e *elevenLabsIsolator) Isolate(ctx context.Context, params outbound.IsolateAudioParams) ([]byte, error) {
	req, err := e.getRequest(ctx, params)
	if err != nil {
		e.logger.ErrorWithFields(err, "failed to construct the audio isolation request", map[string]interface{}{
			"fileName": params.FileName,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrIsolation, err)
	}

	payload, err := e.FetchContent(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", domain.ErrIsolationTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrIsolation, err)
	}

	if len(payload) == 0 {
		return nil, fmt.Errorf("%w for %q", domain.ErrIsolationEmpty, params.FileName)
	}

	return payload, nil
}

func (e *elevenLabsIsolator) getRequest(ctx context.Context, params outbound.IsolateAudioParams) (*http.Request, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="audio"; filename="%s"`, params.FileName))
	header.Set("Content-Type", params.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(params.Content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.isolationConfig.ApiUrl+audioIsolationPath, &body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("xi-api-key", e.isolationConfig.ApiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "audio/wav")

	return req, nil
}
