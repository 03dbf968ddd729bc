package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/config"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"io"
	"net/http"
	"net/url"
)

type mergeSubmitRequest struct {
	VideoURL string `json:"video_url"`
	AudioURL string `json:"audio_url"`
}

type mergeSubmitResponse struct {
	JobID string `json:"job_id"`
}

type mergeStatusResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
	Error  string `json:"error"`
}

type modalMergeClient struct {
	mergeConfig *config.MergeConfig
	logger      outbound.LoggerPort
	client      *http.Client
}

func NewModalMergeClient(mergeConfig *config.MergeConfig, logger outbound.LoggerPort) outbound.MergeJobPort {
	return &modalMergeClient{
		mergeConfig: mergeConfig,
		logger:      logger,
		client:      &http.Client{},
	}
}

func (m *modalMergeClient) Submit(ctx context.Context, videoURL string, audioURL string) (string, error) {
	payload, err := json.Marshal(mergeSubmitRequest{VideoURL: videoURL, AudioURL: audioURL})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMergeSubmit, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.mergeConfig.SubmitUrl, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMergeSubmit, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.mergeConfig.ApiKey)

	body, err := m.send(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMergeSubmit, err)
	}

	var submitResponse mergeSubmitResponse
	if err := json.Unmarshal(body, &submitResponse); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMergeSubmit, err)
	}
	if submitResponse.JobID == "" {
		return "", fmt.Errorf("%w: response carries no job_id", domain.ErrMergeSubmit)
	}

	m.logger.DebugWithFields("merge job accepted", map[string]interface{}{
		"jobID": submitResponse.JobID,
	})

	return submitResponse.JobID, nil
}

// CheckStatus parses the status payload into one of the three expected
// shapes. Anything else is a protocol violation, distinct from transient
// transport failures: the poller must not burn its budget on it.
func (m *modalMergeClient) CheckStatus(ctx context.Context, jobID string) (domain.MergeJob, error) {
	statusURL := m.mergeConfig.StatusUrl + "?job_id=" + url.QueryEscape(jobID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return domain.MergeJob{}, fmt.Errorf("%w: %v", domain.ErrMergeStatus, err)
	}
	req.Header.Set("Authorization", "Bearer "+m.mergeConfig.ApiKey)

	body, err := m.send(req)
	if err != nil {
		return domain.MergeJob{}, fmt.Errorf("%w: %v", domain.ErrMergeStatus, err)
	}

	var statusResponse mergeStatusResponse
	if err := json.Unmarshal(body, &statusResponse); err != nil {
		return domain.MergeJob{}, fmt.Errorf("%w: %v", domain.ErrMergeProtocol, err)
	}

	job := domain.MergeJob{JobID: jobID}
	switch domain.MergeJobStatus(statusResponse.Status) {
	case domain.MergeJobProcessing:
		job.Status = domain.MergeJobProcessing
	case domain.MergeJobCompleted:
		if statusResponse.URL == "" {
			return domain.MergeJob{}, fmt.Errorf("%w: completed without an output URL", domain.ErrMergeProtocol)
		}
		job.Status = domain.MergeJobCompleted
		job.OutputURL = statusResponse.URL
	case domain.MergeJobError:
		job.Status = domain.MergeJobError
		job.ErrorDetail = statusResponse.Error
	default:
		return domain.MergeJob{}, fmt.Errorf("%w: unknown status %q", domain.ErrMergeProtocol, statusResponse.Status)
	}

	return job, nil
}

func (m *modalMergeClient) send(req *http.Request) ([]byte, error) {
	res, err := m.client.Do(req)
	if err != nil {
		m.logger.ErrorWithFields(err, "merge service request failed", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			m.logger.Error(err, "failed to close merge service response body")
		}
	}(res.Body)

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		m.logger.ErrorWithFields(nil, "merge service returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(body),
		})
		return nil, fmt.Errorf("merge service returned status code %d", res.StatusCode)
	}

	return body, nil
}
