package mock_merge

import (
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/gin-gonic/gin"
)

// Init registers the in-memory merge service routes. Point
// MERGE_SUBMIT_URL and MERGE_STATUS_URL at them to run the pipeline
// without the real merge backend.
func Init(g *gin.Engine, pollsToFinish int, logger outbound.LoggerPort) {
	runner := NewRunner(pollsToFinish)
	mockController := NewMockMergeController(logger, runner)

	mockController.RegisterRoutes(g)
}
