package dto

type EnhanceVideoResponse struct {
	OriginalVideo  string `json:"originalVideo,omitempty"`
	ProcessedAudio string `json:"processedAudio"`
	FinalVideo     string `json:"finalVideo"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
