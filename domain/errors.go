package domain

import "errors"

// Pipeline error taxonomy. Stages wrap these with fmt.Errorf("%w: ...") so
// callers can branch with errors.Is while the message stays human-readable.
var (
	// ErrValidation marks bad input shape. Reported as HTTP 400, never retried.
	ErrValidation = errors.New("invalid input")

	// ErrStorage marks an object store write failure.
	ErrStorage = errors.New("storage failure")

	// ErrIsolation marks an upstream rejection from the audio isolation API.
	ErrIsolation = errors.New("audio isolation failed")

	// ErrIsolationTimeout marks a single isolation attempt exceeding its deadline.
	ErrIsolationTimeout = errors.New("audio isolation timed out")

	// ErrIsolationEmpty marks a zero-byte isolation response.
	ErrIsolationEmpty = errors.New("audio isolation returned no data")

	// ErrMergeSubmit marks a failed merge job submission or a response
	// without a job identifier.
	ErrMergeSubmit = errors.New("merge job submission failed")

	// ErrMergeStatus marks a transport-level status query failure. The
	// poller retries these within its own attempt budget.
	ErrMergeStatus = errors.New("merge job status query failed")

	// ErrMergeProtocol marks a malformed terminal payload: an unknown
	// status value, or completed without an output URL. Never retried.
	ErrMergeProtocol = errors.New("merge service returned a malformed response")

	// ErrMergeJobFailed marks a job the merge service reported as failed.
	ErrMergeJobFailed = errors.New("merge job failed")

	// ErrPollTimeout marks the poll budget running out while the job was
	// still processing.
	ErrPollTimeout = errors.New("merge job did not finish in time")
)
