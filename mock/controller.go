package mock_merge

import (
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/gin-gonic/gin"
	"net/http"
)

type submitRequest struct {
	VideoURL string `json:"video_url" binding:"required"`
	AudioURL string `json:"audio_url" binding:"required"`
}

type MockMergeController interface {
	SubmitJob(c *gin.Context)
	JobStatus(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type mockMergeController struct {
	logger outbound.LoggerPort
	runner *Runner
}

func NewMockMergeController(logger outbound.LoggerPort, runner *Runner) MockMergeController {
	return &mockMergeController{
		logger: logger,
		runner: runner,
	}
}

func (m *mockMergeController) SubmitJob(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobID := m.runner.Submit(req.VideoURL, req.AudioURL)
	m.logger.InfoWithFields("mock merge job created", map[string]interface{}{
		"jobID": jobID,
	})

	c.JSON(http.StatusOK, gin.H{"job_id": jobID})
}

func (m *mockMergeController) JobStatus(c *gin.Context) {
	jobID := c.Query("job_id")
	if jobID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "job_id query parameter is required"})
		return
	}

	status, outputURL, found := m.runner.Status(jobID)
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown job_id"})
		return
	}

	if status == "completed" {
		c.JSON(http.StatusOK, gin.H{"status": status, "url": outputURL})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (m *mockMergeController) RegisterRoutes(g *gin.Engine) {
	g.POST("/mock/merge/submit", m.SubmitJob)
	g.GET("/mock/merge/status", m.JobStatus)
}
