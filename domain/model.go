package domain

type MergeJobStatus string

const (
	MergeJobProcessing MergeJobStatus = "processing"
	MergeJobCompleted  MergeJobStatus = "completed"
	MergeJobError      MergeJobStatus = "error"
)

// MergeJob is the externally-owned state of an asynchronous merge job,
// as reported by the merge service's status endpoint.
type MergeJob struct {
	JobID       string
	Status      MergeJobStatus
	OutputURL   string
	ErrorDetail string
}

// InputMedia carries exactly one of an uploaded file or a remote video URL.
type InputMedia struct {
	FileName    string
	Content     []byte
	ContentType string
	VideoURL    string
}

func (m InputMedia) HasFile() bool {
	return len(m.Content) > 0 || m.FileName != ""
}

func (m InputMedia) HasURL() bool {
	return m.VideoURL != ""
}

// EnhanceResult is the terminal outcome of a pipeline run. OriginalVideoURL
// is empty for URL inputs, where the caller already holds a durable URL.
type EnhanceResult struct {
	OriginalVideoURL  string
	ProcessedAudioURL string
	FinalVideoURL     string
}

type RecordStatus string

const (
	RecordCompleted RecordStatus = "completed"
	RecordFailed    RecordStatus = "failed"
)

// EnhancementRecord is the audit row written after a terminal pipeline
// outcome. Partial URLs are preserved here even when the caller gets none.
type EnhancementRecord struct {
	RecordID          string
	Status            RecordStatus
	OriginalVideoURL  string
	ProcessedAudioURL string
	FinalVideoURL     string
	JobID             string
	ErrorDetail       string
}
