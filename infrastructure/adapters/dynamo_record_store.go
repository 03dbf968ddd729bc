package adapters

import (
	"context"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/AdithyanI/audio-isolation-elevenlabs/config"
	"github.com/AdithyanI/audio-isolation-elevenlabs/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"time"
)

type dynamoRecordItem struct {
	RecordID          string `dynamodbav:"record_id"`
	Status            string `dynamodbav:"status"`
	OriginalVideoURL  string `dynamodbav:"original_video_url,omitempty"`
	ProcessedAudioURL string `dynamodbav:"processed_audio_url,omitempty"`
	FinalVideoURL     string `dynamodbav:"final_video_url,omitempty"`
	JobID             string `dynamodbav:"job_id,omitempty"`
	ErrorDetail       string `dynamodbav:"error_detail,omitempty"`
	CreatedAt         int64  `dynamodbav:"created_at"`
	TTL               int64  `dynamodbav:"ttl"`
}

type dynamoRecordStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoRecordStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.RecordStorePort {
	return &dynamoRecordStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (d *dynamoRecordStore) SaveRecord(ctx context.Context, record domain.EnhancementRecord) error {
	now := time.Now()
	item := dynamoRecordItem{
		RecordID:          record.RecordID,
		Status:            string(record.Status),
		OriginalVideoURL:  record.OriginalVideoURL,
		ProcessedAudioURL: record.ProcessedAudioURL,
		FinalVideoURL:     record.FinalVideoURL,
		JobID:             record.JobID,
		ErrorDetail:       record.ErrorDetail,
		CreatedAt:         now.Unix(),
		TTL:               now.Add(time.Duration(d.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		d.logger.ErrorWithFields(err, "failed to marshal enhancement record", map[string]interface{}{
			"recordID": record.RecordID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(d.dynamoConfig.TableName),
	}

	_, err = d.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		d.logger.ErrorWithFields(err, "failed to save enhancement record", map[string]interface{}{
			"recordID": record.RecordID,
		})
		return err
	}

	return nil
}
