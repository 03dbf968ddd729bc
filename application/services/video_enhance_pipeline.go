package services

import (
	"context"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/inbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"github.com/google/uuid"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	originalVideoPrefix  = "original-videos"
	processedAudioPrefix = "processed-audio"
	isolatedAudioExt     = ".wav"
	isolatedAudioMime    = "audio/wav"
)

var allowedVideoExtensions = map[string]string{
	".mp4": "video/mp4",
	".mov": "video/quicktime",
	".avi": "video/x-msvideo",
}

var allowedVideoMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/x-msvideo": true,
}

type videoEnhancePipeline struct {
	logger         outbound.LoggerPort
	workerPool     outbound.TaskDispatcher
	mediaFetcher   outbound.MediaFetcherPort
	mediaStore     outbound.MediaStorePort
	audioIsolator  outbound.AudioIsolatorPort
	mergeClient    outbound.MergeJobPort
	jobPoller      inbound.MergeJobPollerPort
	recordStore    outbound.RecordStorePort
	retryPolicy    RetryPolicy
	attemptTimeout time.Duration
}

func NewVideoEnhancePipeline(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	mediaFetcher outbound.MediaFetcherPort,
	mediaStore outbound.MediaStorePort,
	audioIsolator outbound.AudioIsolatorPort,
	mergeClient outbound.MergeJobPort,
	jobPoller inbound.MergeJobPollerPort,
	recordStore outbound.RecordStorePort,
	retryPolicy RetryPolicy,
	attemptTimeout time.Duration) inbound.VideoEnhancePipelinePort {
	return &videoEnhancePipeline{
		logger:         logger,
		workerPool:     workerPool,
		mediaFetcher:   mediaFetcher,
		mediaStore:     mediaStore,
		audioIsolator:  audioIsolator,
		mergeClient:    mergeClient,
		jobPoller:      jobPoller,
		recordStore:    recordStore,
		retryPolicy:    retryPolicy,
		attemptTimeout: attemptTimeout,
	}
}

type enhanceOutcome struct {
	result *domain.EnhanceResult
	err    error
}

// Enhance runs the pipeline on the worker pool so the number of in-flight
// media buffers stays bounded by the pool size, and waits for the outcome.
func (p *videoEnhancePipeline) Enhance(ctx context.Context, params inbound.EnhanceVideoParams) (*domain.EnhanceResult, error) {
	outcomeCh := make(chan enhanceOutcome, 1)

	err := p.workerPool.Submit(func() {
		result, err := p.run(ctx, params.Media)
		outcomeCh <- enhanceOutcome{result: result, err: err}
	})
	if err != nil {
		p.logger.Error(err, "failed to submit pipeline run to worker pool")
		return nil, err
	}

	outcome := <-outcomeCh
	return outcome.result, outcome.err
}

func (p *videoEnhancePipeline) run(ctx context.Context, media domain.InputMedia) (*domain.EnhanceResult, error) {
	if err := validateInput(media); err != nil {
		return nil, err
	}

	partial := domain.EnhancementRecord{RecordID: uuid.NewString()}

	sourceBytes, sourceName, sourceMime, videoURL, err := p.resolveSource(ctx, media, &partial)
	if err != nil {
		p.saveFailure(ctx, partial, err)
		return nil, err
	}

	isolated, err := Retry(ctx, p.logger, p.retryPolicy, func(ctx context.Context) ([]byte, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, p.attemptTimeout)
		defer cancel()
		return p.audioIsolator.Isolate(attemptCtx, outbound.IsolateAudioParams{
			FileName:    sourceName,
			Content:     sourceBytes,
			ContentType: sourceMime,
		})
	})
	if err != nil {
		p.saveFailure(ctx, partial, err)
		return nil, err
	}

	processedAudioURL, err := p.mediaStore.Store(ctx, outbound.StoreMediaParams{
		Key:         processedAudioKey(sourceName),
		Content:     isolated,
		ContentType: isolatedAudioMime,
	})
	if err != nil {
		p.saveFailure(ctx, partial, err)
		return nil, err
	}
	partial.ProcessedAudioURL = processedAudioURL

	jobID, err := p.mergeClient.Submit(ctx, videoURL, processedAudioURL)
	if err != nil {
		p.saveFailure(ctx, partial, err)
		return nil, err
	}
	partial.JobID = jobID
	p.logger.InfoWithFields("merge job submitted", map[string]interface{}{
		"jobID":    jobID,
		"videoURL": videoURL,
	})

	finalVideoURL, err := p.jobPoller.Poll(ctx, jobID)
	if err != nil {
		p.saveFailure(ctx, partial, err)
		return nil, err
	}
	partial.FinalVideoURL = finalVideoURL

	partial.Status = domain.RecordCompleted
	p.saveRecord(ctx, partial)

	return &domain.EnhanceResult{
		OriginalVideoURL:  partial.OriginalVideoURL,
		ProcessedAudioURL: processedAudioURL,
		FinalVideoURL:     finalVideoURL,
	}, nil
}

// resolveSource produces the bytes handed to the isolation call and the
// durable video URL handed to the merge service. Uploaded files are
// persisted first so a durable URL exists; remote URLs are fetched
// read-through and never re-uploaded.
func (p *videoEnhancePipeline) resolveSource(ctx context.Context, media domain.InputMedia,
	partial *domain.EnhancementRecord) ([]byte, string, string, string, error) {
	if media.HasURL() {
		content, err := p.mediaFetcher.FetchMedia(ctx, media.VideoURL)
		if err != nil {
			return nil, "", "", "", err
		}
		name := remoteFileName(media.VideoURL)
		return content, name, allowedVideoExtensions[strings.ToLower(path.Ext(name))], media.VideoURL, nil
	}

	originalVideoURL, err := p.mediaStore.Store(ctx, outbound.StoreMediaParams{
		Key:         originalVideoKey(media.FileName),
		Content:     media.Content,
		ContentType: media.ContentType,
	})
	if err != nil {
		return nil, "", "", "", err
	}
	partial.OriginalVideoURL = originalVideoURL

	return media.Content, media.FileName, media.ContentType, originalVideoURL, nil
}

func (p *videoEnhancePipeline) saveFailure(ctx context.Context, record domain.EnhancementRecord, cause error) {
	record.Status = domain.RecordFailed
	record.ErrorDetail = cause.Error()
	p.saveRecord(ctx, record)
}

func (p *videoEnhancePipeline) saveRecord(ctx context.Context, record domain.EnhancementRecord) {
	if err := p.recordStore.SaveRecord(ctx, record); err != nil {
		p.logger.ErrorWithFields(err, "failed to save enhancement record", map[string]interface{}{
			"recordID": record.RecordID,
			"status":   record.Status,
		})
	}
}

func validateInput(media domain.InputMedia) error {
	if media.HasFile() == media.HasURL() {
		return fmt.Errorf("%w: provide either a video file or a video URL", domain.ErrValidation)
	}

	if media.HasURL() {
		parsed, err := url.Parse(media.VideoURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: malformed video URL", domain.ErrValidation)
		}
		ext := strings.ToLower(path.Ext(parsed.Path))
		if _, ok := allowedVideoExtensions[ext]; !ok {
			return fmt.Errorf("%w: unsupported video URL extension %q", domain.ErrValidation, ext)
		}
		return nil
	}

	if len(media.Content) == 0 {
		return fmt.Errorf("%w: uploaded file is empty", domain.ErrValidation)
	}
	if !allowedVideoMimeTypes[media.ContentType] {
		return fmt.Errorf("%w: unsupported content type %q", domain.ErrValidation, media.ContentType)
	}
	return nil
}

func originalVideoKey(fileName string) string {
	return fmt.Sprintf("%s/%d-original-%s", originalVideoPrefix, time.Now().UnixMilli(), fileName)
}

func processedAudioKey(fileName string) string {
	base := strings.TrimSuffix(fileName, path.Ext(fileName))
	return fmt.Sprintf("%s/%d-processed-%s%s", processedAudioPrefix, time.Now().UnixMilli(), base, isolatedAudioExt)
}

func remoteFileName(videoURL string) string {
	parsed, err := url.Parse(videoURL)
	if err != nil {
		return path.Base(videoURL)
	}
	return path.Base(parsed.Path)
}
