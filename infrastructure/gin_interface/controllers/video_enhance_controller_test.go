package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/inbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"github.com/gin-gonic/gin"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
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

type fakePipeline struct {
	lastMedia domain.InputMedia
	result    *domain.EnhanceResult
	err       error
}

func (f *fakePipeline) Enhance(_ context.Context, params inbound.EnhanceVideoParams) (*domain.EnhanceResult, error) {
	f.lastMedia = params.Media
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestRouter(pipeline *fakePipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewVideoEnhanceController(nopLogger{}, pipeline).RegisterRoutes(router)
	return router
}

func multipartFileRequest(t *testing.T, fileName string, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal("failed to create multipart part:", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal("failed to write multipart content:", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal("failed to close multipart writer:", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/enhance", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestEnhanceVideoWithUploadedFile(t *testing.T) {
	pipeline := &fakePipeline{result: &domain.EnhanceResult{
		OriginalVideoURL:  "https://bucket.s3.us-east-1.amazonaws.com/original-videos/1-original-clip.mp4",
		ProcessedAudioURL: "https://bucket.s3.us-east-1.amazonaws.com/processed-audio/1-processed-clip.wav",
		FinalVideoURL:     "https://bucket.s3.us-east-1.amazonaws.com/final-videos/out.mp4",
	}}
	router := newTestRouter(pipeline)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, multipartFileRequest(t, "clip.mp4", "video/mp4", []byte("video-bytes")))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	if pipeline.lastMedia.FileName != "clip.mp4" || pipeline.lastMedia.ContentType != "video/mp4" {
		t.Fatalf("pipeline received wrong media metadata: %+v", pipeline.lastMedia)
	}
	if !bytes.Equal(pipeline.lastMedia.Content, []byte("video-bytes")) {
		t.Fatal("pipeline must receive the uploaded bytes")
	}

	var response map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatal("failed to decode response:", err)
	}
	if response["originalVideo"] == "" || response["processedAudio"] == "" || response["finalVideo"] == "" {
		t.Fatalf("incomplete response body: %v", response)
	}
}

func TestEnhanceVideoWithRemoteURL(t *testing.T) {
	pipeline := &fakePipeline{result: &domain.EnhanceResult{
		ProcessedAudioURL: "https://bucket.s3.us-east-1.amazonaws.com/processed-audio/1-processed-clip.wav",
		FinalVideoURL:     "https://bucket.s3.us-east-1.amazonaws.com/final-videos/out.mp4",
	}}
	router := newTestRouter(pipeline)

	form := url.Values{"url": {"https://example.com/videos/clip.mp4"}}
	req := httptest.NewRequest(http.MethodPost, "/enhance", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if pipeline.lastMedia.VideoURL != "https://example.com/videos/clip.mp4" {
		t.Fatalf("pipeline received wrong URL: %q", pipeline.lastMedia.VideoURL)
	}
	if strings.Contains(recorder.Body.String(), "originalVideo") {
		t.Fatal("originalVideo must be omitted for URL inputs")
	}
}

func TestEnhanceVideoValidationFailureIs400(t *testing.T) {
	pipeline := &fakePipeline{err: fmt.Errorf("%w: provide either a video file or a video URL", domain.ErrValidation)}
	router := newTestRouter(pipeline)

	req := httptest.NewRequest(http.MethodPost, "/enhance", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "error") {
		t.Fatalf("expected an error body, got %s", recorder.Body.String())
	}
}

func TestEnhanceVideoProcessingFailureIs500(t *testing.T) {
	pipeline := &fakePipeline{err: fmt.Errorf("%w: still processing after 60 attempts", domain.ErrPollTimeout)}
	router := newTestRouter(pipeline)

	form := url.Values{"url": {"https://example.com/videos/clip.mp4"}}
	req := httptest.NewRequest(http.MethodPost, "/enhance", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
}
