package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"slotly-service/internal/app/config"
	"slotly-service/internal/app/delivery/http/controllers"
	"slotly-service/internal/app/delivery/http/middlewares"
	"slotly-service/internal/app/delivery/http/routers"
	"slotly-service/internal/app/drivers/database"
	"slotly-service/internal/app/drivers/logger"
	"slotly-service/internal/app/drivers/messaging"
	"slotly-service/internal/app/drivers/storage"
	"slotly-service/internal/app/services/core/appointments"
	"slotly-service/internal/app/services/core/auth"
	"slotly-service/internal/app/services/core/doctors"
	"slotly-service/internal/app/services/core/payments"
	"slotly-service/internal/app/services/core/schedule"
	"slotly-service/internal/app/services/core/session"
	"slotly-service/internal/app/services/core/slots"
	"slotly-service/internal/app/services/shared/bookingqueue"
	"slotly-service/internal/app/services/shared/calendar"
	"slotly-service/internal/app/services/shared/extraction"
	"slotly-service/internal/app/services/shared/locker"
	paymentGateway "slotly-service/internal/app/services/shared/payment_gateway"
	"slotly-service/internal/app/services/shared/redis"
	storageService "slotly-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

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
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap)

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

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing app dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Shared services
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)
	minioStorage := storageService.NewMinioStorage(bootstrap.Minio)
	calendarService := calendar.NewCalendarService(bootstrap.InternalConfig, bootstrap.Logger)
	paymentGatewayService := paymentGateway.NewStripeService(bootstrap.InternalConfig, bootstrap.Logger)

	extractionService, err := extraction.NewExtractionService(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize schedule extraction service: %v", err)
	}

	bookingQueueService, err := bookingqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.BookingQueue,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize booking queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	slotMongoRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	referralMongoRepository := doctors.NewReferralMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Schedule
	scheduleUsecase := schedule.NewScheduleUsecase(extractionService, slotMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		userMongoRepository,
		referralMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Slot
	slotUsecase := slots.NewSlotUsecase(slotMongoRepository, bootstrap.Logger)
	slotController := controllers.NewSlotController(bootstrap.Logger, slotUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		slotMongoRepository,
		doctorMongoRepository,
		lockerService,
		bookingQueueService,
		calendarService,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		doctorMongoRepository,
		sessionService,
		paymentGatewayService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(paymentGatewayService, doctorMongoRepository, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Slot maintenance worker
	slotWorker := schedule.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, slotMongoRepository)
	slotWorker.Start(context.Background())
	bootstrap.SlotWorkerStop = slotWorker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		scheduleController,
		doctorController,
		slotController,
		appointmentController,
		authController,
		paymentController,
	)
}
