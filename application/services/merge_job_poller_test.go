package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"strings"
	"testing"
	"time"
)

func processingStep() statusStep {
	return statusStep{job: domain.MergeJob{Status: domain.MergeJobProcessing}}
}

func completedStep(url string) statusStep {
	return statusStep{job: domain.MergeJob{Status: domain.MergeJobCompleted, OutputURL: url}}
}

func TestPollerReturnsURLOnCompletion(t *testing.T) {
	client := &scriptedMergeClient{steps: []statusStep{
		processingStep(),
		processingStep(),
		completedStep("https://bucket.s3.us-east-1.amazonaws.com/final-videos/x.mp4"),
	}}
	poller := NewMergeJobPoller(nopLogger{}, client, 60, time.Millisecond)

	url, err := poller.Poll(context.Background(), "abc123")
	if err != nil {
		t.Fatal("expected success, got:", err)
	}
	if url != "https://bucket.s3.us-east-1.amazonaws.com/final-videos/x.mp4" {
		t.Fatalf("unexpected output URL %q", url)
	}
	if client.statusCalls != 3 {
		t.Fatalf("expected exactly 3 status queries, got %d", client.statusCalls)
	}
}

func TestPollerTimesOutWhileProcessing(t *testing.T) {
	const maxAttempts = 5
	client := &scriptedMergeClient{steps: []statusStep{processingStep()}}
	poller := NewMergeJobPoller(nopLogger{}, client, maxAttempts, time.Millisecond)

	_, err := poller.Poll(context.Background(), "abc123")
	if !errors.Is(err, domain.ErrPollTimeout) {
		t.Fatal("expected ErrPollTimeout, got:", err)
	}
	if client.statusCalls != maxAttempts {
		t.Fatalf("expected exactly %d status queries, got %d", maxAttempts, client.statusCalls)
	}
}

func TestPollerSurfacesJobErrorImmediately(t *testing.T) {
	client := &scriptedMergeClient{steps: []statusStep{
		{job: domain.MergeJob{Status: domain.MergeJobError, ErrorDetail: "bad audio"}},
	}}
	poller := NewMergeJobPoller(nopLogger{}, client, 60, time.Millisecond)

	_, err := poller.Poll(context.Background(), "abc123")
	if !errors.Is(err, domain.ErrMergeJobFailed) {
		t.Fatal("expected ErrMergeJobFailed, got:", err)
	}
	if !strings.Contains(err.Error(), "bad audio") {
		t.Fatalf("expected reported detail in error, got %q", err.Error())
	}
	if client.statusCalls != 1 {
		t.Fatalf("expected exactly 1 status query, got %d", client.statusCalls)
	}
}

func TestPollerPropagatesProtocolErrorImmediately(t *testing.T) {
	client := &scriptedMergeClient{steps: []statusStep{
		{err: fmt.Errorf("%w: completed without an output URL", domain.ErrMergeProtocol)},
	}}
	poller := NewMergeJobPoller(nopLogger{}, client, 60, time.Millisecond)

	_, err := poller.Poll(context.Background(), "abc123")
	if !errors.Is(err, domain.ErrMergeProtocol) {
		t.Fatal("expected ErrMergeProtocol, got:", err)
	}
	if errors.Is(err, domain.ErrPollTimeout) {
		t.Fatal("protocol violation must not be reported as a poll timeout")
	}
	if client.statusCalls != 1 {
		t.Fatalf("expected exactly 1 status query, got %d", client.statusCalls)
	}
}

func TestPollerRetriesTransportFailures(t *testing.T) {
	client := &scriptedMergeClient{steps: []statusStep{
		{err: fmt.Errorf("%w: connection refused", domain.ErrMergeStatus)},
		completedStep("https://example.com/final.mp4"),
	}}
	poller := NewMergeJobPoller(nopLogger{}, client, 60, time.Millisecond)

	url, err := poller.Poll(context.Background(), "abc123")
	if err != nil {
		t.Fatal("expected success after transient failure, got:", err)
	}
	if url != "https://example.com/final.mp4" {
		t.Fatalf("unexpected output URL %q", url)
	}
	if client.statusCalls != 2 {
		t.Fatalf("expected exactly 2 status queries, got %d", client.statusCalls)
	}
}

func TestPollerPropagatesTransportFailureWhenBudgetExhausted(t *testing.T) {
	const maxAttempts = 3
	client := &scriptedMergeClient{steps: []statusStep{
		{err: fmt.Errorf("%w: connection refused", domain.ErrMergeStatus)},
	}}
	poller := NewMergeJobPoller(nopLogger{}, client, maxAttempts, time.Millisecond)

	_, err := poller.Poll(context.Background(), "abc123")
	if !errors.Is(err, domain.ErrMergeStatus) {
		t.Fatal("expected the underlying transport error, got:", err)
	}
	if client.statusCalls != maxAttempts {
		t.Fatalf("expected exactly %d status queries, got %d", maxAttempts, client.statusCalls)
	}
}
