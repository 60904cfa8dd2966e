package main

import (
	"context"
	"fmt"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/app/services/core/payments"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/notifier"
	"medibook-service/internal/app/services/shared/payment_gateway"
	"medibook-service/internal/app/services/shared/redis"
	sharedstorage "medibook-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logrusLogger := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         logrusLogger,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		logrusLogger.Infof("Server listening on port %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrusLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logrusLogger.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.ZapLogger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	gatewayService := payment_gateway.NewGatewayService(bootstrap.InternalConfig)

	notificationPublisher, err := notifier.NewAmqpPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.ZapLogger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize notification publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, redisRepository, bootstrap.InternalConfig)

	// Repositories
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Patient
	patientUsecase := patients.NewPatientUsecase(
		patientMongoRepository,
		redisRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.ZapLogger,
	)
	patientController := patients.NewPatientController(
		bootstrap.ZapLogger,
		patientUsecase,
		bootstrap.InternalConfig.App.MinioProfilePictureMaxUploadSizeInMB,
	)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		patientMongoRepository,
		doctorMongoRepository,
		lockerService,
		notificationPublisher,
		bootstrap.ZapLogger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		appointmentMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	doctorController := doctors.NewDoctorController(bootstrap.ZapLogger, doctorUsecase, appointmentUsecase)

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(
		appointmentMongoRepository,
		gatewayService,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	paymentController := payments.NewPaymentController(bootstrap.ZapLogger, paymentUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patientController,
		doctorController,
		appointmentController,
		paymentController,
	)
}
