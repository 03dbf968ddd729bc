package services

import (
	"context"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) InfoWithFields(string, map[string]interface{}) {}
func (nopLogger) Error(error, string) {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string) {}
func (nopLogger) DebugWithFields(string, map[string]interface{}) {}
func (nopLogger) Warn(string) {}
func (nopLogger) WarnWithFields(string, map[string]interface{}) {}

type inlineDispatcher struct{}

func (inlineDispatcher) Submit(task func()) error {
	task()
	return nil
}

type statusStep struct {
	job domain.MergeJob
	err error
}

type scriptedMergeClient struct {
	steps       []statusStep
	statusCalls int
	submitCalls int
	submitJobID string
	submitErr   error

	lastVideoURL string
	lastAudioURL string
}

func (c *scriptedMergeClient) Submit(_ context.Context, videoURL string, audioURL string) (string, error) {
	c.submitCalls++
	c.lastVideoURL = videoURL
	c.lastAudioURL = audioURL
	if c.submitErr != nil {
		return "", c.submitErr
	}
	return c.submitJobID, nil
}

func (c *scriptedMergeClient) CheckStatus(_ context.Context, jobID string) (domain.MergeJob, error) {
	c.statusCalls++
	if len(c.steps) == 0 {
		return domain.MergeJob{}, nil
	}
	idx := c.statusCalls - 1
	if idx >= len(c.steps) {
		idx = len(c.steps) - 1
	}
	step := c.steps[idx]
	return step.job, step.err
}

type fakeMediaStore struct {
	keys     []string
	mimes    []string
	payloads [][]byte
	err      error
}

func (s *fakeMediaStore) Store(_ context.Context, params outbound.StoreMediaParams) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, params.Key)
	s.mimes = append(s.mimes, params.ContentType)
	s.payloads = append(s.payloads, params.Content)
	return "https://bucket.s3.us-east-1.amazonaws.com/" + params.Key, nil
}

type fakeIsolator struct {
	calls    int
	received []byte
	result   []byte
	errs     []error
}

func (i *fakeIsolator) Isolate(_ context.Context, params outbound.IsolateAudioParams) ([]byte, error) {
	idx := i.calls
	i.calls++
	i.received = params.Content
	if idx < len(i.errs) && i.errs[idx] != nil {
		return nil, i.errs[idx]
	}
	return i.result, nil
}

type fakeMediaFetcher struct {
	calls   int
	content []byte
	err     error
}

func (f *fakeMediaFetcher) FetchMedia(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.content, nil
}

type fakePoller struct {
	calls     int
	lastJobID string
	url       string
	err       error
}

func (p *fakePoller) Poll(_ context.Context, jobID string) (string, error) {
	p.calls++
	p.lastJobID = jobID
	if p.err != nil {
		return "", p.err
	}
	return p.url, nil
}

type fakeRecordStore struct {
	records []domain.EnhancementRecord
	err     error
}

func (r *fakeRecordStore) SaveRecord(_ context.Context, record domain.EnhancementRecord) error {
	r.records = append(r.records, record)
	return r.err
}
