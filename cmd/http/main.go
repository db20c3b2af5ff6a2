package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"revolucare-service/internal/app/config"
	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/delivery/http/controllers"
	"revolucare-service/internal/app/delivery/http/middlewares"
	"revolucare-service/internal/app/delivery/http/routers"
	"revolucare-service/internal/app/drivers/database"
	"revolucare-service/internal/app/drivers/logger"
	"revolucare-service/internal/app/drivers/messaging"
	"revolucare-service/internal/app/drivers/storage"
	"revolucare-service/internal/app/services/core/analyses"
	"revolucare-service/internal/app/services/core/careplans"
	"revolucare-service/internal/app/services/core/documents"
	"revolucare-service/internal/app/services/core/planoptions"
	"revolucare-service/internal/app/services/shared/events"
	"revolucare-service/internal/app/services/shared/extraction"
	"revolucare-service/internal/app/services/shared/locker"
	"revolucare-service/internal/app/services/shared/redis"
	minio "revolucare-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	documentStorage := minio.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	eventPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}

	// Extraction
	openAIClient := extraction.NewOpenAIClient(bootstrap.DriverConfig.OpenAI)
	capabilities := []contracts.ExtractionCapability{
		extraction.NewMedicalExtractionCapability(openAIClient),
		extraction.NewTextExtractionCapability(),
		extraction.NewFormRecognitionCapability(openAIClient),
		extraction.NewIdentityVerificationCapability(openAIClient),
	}
	planComposers := extraction.NewPlanComposers(openAIClient)

	// Documents
	documentMongoRepository := documents.NewDocumentMongoRepository(bootstrap.MongoDB, dbName)
	analysisMongoRepository := analyses.NewAnalysisMongoRepository(bootstrap.MongoDB, dbName)
	documentUsecase := documents.NewDocumentUsecase(
		documentMongoRepository,
		analysisMongoRepository,
		documentStorage,
		bootstrap.Logger,
	)

	// Analyses
	analysisUsecase := analyses.NewAnalysisUsecase(
		analysisMongoRepository,
		documentMongoRepository,
		documentStorage,
		capabilities,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Care plans
	carePlanMongoRepository := careplans.NewCarePlanMongoRepository(bootstrap.MongoDB, dbName)
	assignmentAuthorizer := careplans.NewAssignmentMongoAuthorizer(bootstrap.MongoDB, dbName)
	carePlanUsecase := careplans.NewCarePlanUsecase(
		carePlanMongoRepository,
		assignmentAuthorizer,
		eventPublisher,
		redisRepository,
		bootstrap.Logger,
	)

	// Plan options
	optionUsecase := planoptions.NewCarePlanOptionUsecase(
		documentMongoRepository,
		analysisUsecase,
		planComposers,
		lockerService,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Delivery
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	carePlanController := controllers.NewCarePlanController(bootstrap.Logger, carePlanUsecase)
	documentController := controllers.NewDocumentController(bootstrap.Logger, documentUsecase, analysisUsecase, bootstrap.InternalConfig)
	planOptionsController := controllers.NewPlanOptionsController(bootstrap.Logger, optionUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		carePlanController,
		documentController,
		planOptionsController,
	)
}
