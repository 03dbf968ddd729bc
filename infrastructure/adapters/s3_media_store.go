package adapters

import (
	"bytes"
	"context"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/config"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
)

type s3MediaStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
	logger   outbound.LoggerPort
}

func NewS3MediaStore(s3Svc *s3.S3, s3Config *config.S3Config, logger outbound.LoggerPort) outbound.MediaStorePort {
	return &s3MediaStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
		logger:   logger,
	}
}

func (s *s3MediaStore) Store(ctx context.Context, params outbound.StoreMediaParams) (string, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(params.Key),
		Body:          bytes.NewReader(params.Content),
		ContentType:   aws.String(params.ContentType),
		ContentLength: aws.Int64(int64(len(params.Content))),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to upload object to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    params.Key,
		})
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s3Url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, params.Key)
	s.logger.DebugWithFields("uploaded object to S3", map[string]interface{}{
		"s3Url": s3Url,
	})

	return s3Url, nil
}
