package main

import (
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/services"
	"github.com/AdithyanI/audio-isolation-elevenlabs/config"
	"github.com/AdithyanI/audio-isolation-elevenlabs/infrastructure/adapters"
	"github.com/AdithyanI/audio-isolation-elevenlabs/infrastructure/gin_interface/controllers"
	"github.com/AdithyanI/audio-isolation-elevenlabs/middleware"
	mockmerge "github.com/AdithyanI/audio-isolation-elevenlabs/mock"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
)

func main() {
	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	isolationConfig, err := config.GetIsolationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get isolation config")
	}

	mergeConfig, err := config.GetMergeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get merge config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	dispatcher := adapters.NewAntsDispatcher(workerPool)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	mediaFetcher := adapters.NewMediaFetcher(zeroLogger)

	audioIsolator := adapters.NewElevenLabsIsolator(contentFetcher, isolationConfig, zeroLogger)
	mergeClient := adapters.NewModalMergeClient(mergeConfig, zeroLogger)

	mediaStore := adapters.NewS3MediaStore(s3Client, s3Config, zeroLogger)
	recordStore := adapters.NewDynamoRecordStore(zeroLogger, dynamoClient, dynamoConfig)

	jobPoller := services.NewMergeJobPoller(zeroLogger, mergeClient, mergeConfig.PollMaxAttempts, mergeConfig.PollInterval)

	enhancePipeline := services.NewVideoEnhancePipeline(
		zeroLogger,
		dispatcher,
		mediaFetcher,
		mediaStore,
		audioIsolator,
		mergeClient,
		jobPoller,
		recordStore,
		services.RetryPolicy{Attempts: isolationConfig.MaxAttempts, Delay: isolationConfig.RetryDelay},
		isolationConfig.AttemptTimeout,
	)

	videoEnhanceController := controllers.NewVideoEnhanceController(zeroLogger, enhancePipeline)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	if jwksUrl := os.Getenv("JWKS_URL"); jwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(jwksUrl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	} else {
		zeroLogger.Warn("JWKS_URL not set, running without authentication")
	}

	if os.Getenv("MOCK_MERGE_SERVICE") == "true" {
		mockmerge.Init(router, 2, zeroLogger)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	videoEnhanceController.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = router.Run(":" + port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
