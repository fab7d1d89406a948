package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fichaescolar/config"
	"fichaescolar/services/records/delivery"
	"fichaescolar/services/records/repository"
	"fichaescolar/services/records/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

const useCaseTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootUserPool(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot user pool: %v", err)
		return
	}
	defer pool.Close()

	// Repositories
	recordRepo := repository.NewRecordRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	searchRepo := repository.NewSearchRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	userRepo := repository.NewUserRepository(pool)
	authRepo := repository.NewAuthRepository(pool)

	// Use cases
	recordUC := usecase.NewRecordUseCase(recordRepo, useCaseTimeout)
	draftUC := usecase.NewDraftManager(recordRepo, useCaseTimeout)
	studentUC := usecase.NewStudentUseCase(studentRepo, useCaseTimeout)
	searchUC := usecase.NewSearchUseCase(searchRepo, useCaseTimeout)
	statsUC := usecase.NewStatsUseCase(statsRepo, useCaseTimeout)
	userUC := usecase.NewUserUseCase(userRepo, useCaseTimeout)
	authUC := usecase.NewAuthUseCase(authRepo, useCaseTimeout)

	// Delivery
	delivery.NewAuthHandler(app, authUC, userUC)
	delivery.NewRecordHandler(app, draftUC, recordUC)
	delivery.NewStudentHandler(app, studentUC, recordUC)
	delivery.NewSearchHandler(app, searchUC)
	delivery.NewStatsHandler(app, statsUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
