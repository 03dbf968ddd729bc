package controllers

import (
	"errors"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/inbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"github.com/AdithyanI/audio-isolation-elevenlabs/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
)

// maxUploadBytes bounds request size; the pipeline buffers media in memory.
const maxUploadBytes = 100 << 20

type VideoEnhanceController interface {
	EnhanceVideo(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoEnhanceController struct {
	logger   outbound.LoggerPort
	pipeline inbound.VideoEnhancePipelinePort
}

func NewVideoEnhanceController(logger outbound.LoggerPort,
	pipeline inbound.VideoEnhancePipelinePort) VideoEnhanceController {
	return &videoEnhanceController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (v *videoEnhanceController) EnhanceVideo(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	media, err := v.parseInput(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := v.pipeline.Enhance(c.Request.Context(), inbound.EnhanceVideoParams{Media: media})
	if err != nil {
		v.logger.Error(err, "video enhancement failed")
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.EnhanceVideoResponse{
		OriginalVideo:  result.OriginalVideoURL,
		ProcessedAudio: result.ProcessedAudioURL,
		FinalVideo:     result.FinalVideoURL,
	})
}

// parseInput accepts multipart form data with a "file" field or a "url"
// field. Presence of exactly one is enforced by the pipeline's validation
// so that both inbound paths share one rule.
func (v *videoEnhanceController) parseInput(c *gin.Context) (domain.InputMedia, error) {
	media := domain.InputMedia{VideoURL: c.PostForm("url")}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return media, nil
		}
		return domain.InputMedia{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.InputMedia{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			v.logger.Error(err, "failed to close uploaded file")
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return domain.InputMedia{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	media.FileName = fileHeader.Filename
	media.Content = content
	media.ContentType = fileHeader.Header.Get("Content-Type")

	return media, nil
}

func (v *videoEnhanceController) RegisterRoutes(g *gin.Engine) {
	g.POST("/enhance", v.EnhanceVideo)
}
