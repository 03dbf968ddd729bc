package mock_merge

import (
	"fmt"
	"github.com/google/uuid"
	"sync"
)

type jobState struct {
	videoURL       string
	audioURL       string
	pollsRemaining int
}

// Runner is an in-memory stand-in for the merge job service. Each job
// reports processing for a fixed number of status queries, then completes
// with a fabricated output URL.
type Runner struct {
	mu            sync.Mutex
	jobs          map[string]*jobState
	pollsToFinish int
}

func NewRunner(pollsToFinish int) *Runner {
	if pollsToFinish < 1 {
		pollsToFinish = 1
	}
	return &Runner{
		jobs:          make(map[string]*jobState),
		pollsToFinish: pollsToFinish,
	}
}

func (r *Runner) Submit(videoURL string, audioURL string) string {
	jobID := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[jobID] = &jobState{
		videoURL:       videoURL,
		audioURL:       audioURL,
		pollsRemaining: r.pollsToFinish,
	}

	return jobID
}

func (r *Runner) Status(jobID string) (status string, outputURL string, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return "", "", false
	}

	if job.pollsRemaining > 0 {
		job.pollsRemaining--
		return "processing", "", true
	}

	return "completed", fmt.Sprintf("https://mock-merge.local/final-videos/%s.mp4", jobID), true
}
