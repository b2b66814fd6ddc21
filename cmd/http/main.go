package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/delivery/http/routers"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/app/drivers/messaging"
	"carelink-service/internal/app/drivers/storage"
	"carelink-service/internal/app/services/core/appointments"
	"carelink-service/internal/app/services/core/auth"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/app/services/core/donorrequests"
	"carelink-service/internal/app/services/core/ratings"
	"carelink-service/internal/app/services/shared/eventqueue"
	"carelink-service/internal/app/services/shared/redis"
	sharedstorage "carelink-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)

	chiRouter := chi.NewRouter()

	bootstrapApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Log:            zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

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
	zapLogger.Info("server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	zapLogger.Info("shutting down, waiting for in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("server exited")
}

func bootstrapApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	eventQueue := eventqueue.NewRabbitMQEventQueue(bootstrap.RabbitMQ)

	directoryRepository := directory.NewDirectoryMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	donorRequestRepository := donorrequests.NewDonorRequestMongoRepository(bootstrap.MongoDB, dbName)

	authUsecase := auth.NewAuthUsecase(directoryRepository, redisRepository, bootstrap.InternalConfig)
	directoryUsecase := directory.NewDirectoryUsecase(directoryRepository, minioStorage, bootstrap.InternalConfig)
	ratingUsecase := ratings.NewRatingUsecase(directoryRepository)
	appointmentUsecase := appointments.NewAppointmentUsecase(bootstrap.Log, appointmentRepository, directoryRepository, eventQueue)
	donorRequestUsecase := donorrequests.NewDonorRequestUsecase(bootstrap.Log, donorRequestRepository, directoryRepository, eventQueue)

	authController := auth.NewAuthController(bootstrap.Log, authUsecase)
	directoryController := directory.NewDirectoryController(bootstrap.Log, directoryUsecase, bootstrap.InternalConfig)
	ratingController := ratings.NewRatingController(bootstrap.Log, ratingUsecase)
	appointmentController := appointments.NewAppointmentController(bootstrap.Log, appointmentUsecase)
	donorRequestController := donorrequests.NewDonorRequestController(bootstrap.Log, donorRequestUsecase)

	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Log, redisRepository, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		directoryController,
		ratingController,
		appointmentController,
		donorRequestController,
	)
}
