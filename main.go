// File: viaduct/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viaduct/config"
	"viaduct/cron"
	"viaduct/database"
	clientRepo "viaduct/database/repository/client"
	orderRepo "viaduct/database/repository/order"
	reminderRepo "viaduct/database/repository/reminder"
	waitinglistRepo "viaduct/database/repository/waitinglist"
	"viaduct/handlers"
	"viaduct/middleware"
	"viaduct/routes"
	"viaduct/services/registry"
	"viaduct/services/storage"
	"viaduct/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Repositories for the configured backend. The choice is made once
	// here and injected; nothing downstream consults the config again.
	var (
		clients     clientRepo.ClientRepository
		reminders   reminderRepo.ReminderRepository
		waitinglist waitinglistRepo.WaitingListRepository
		orders      orderRepo.OrderRepository
	)
	switch config.AppConfig.PersistenceBackend {
	case "mongo":
		database.InitDB()
		clients = clientRepo.NewMongoClientRepo()
		reminders = reminderRepo.NewMongoReminderRepo()
		waitinglist = waitinglistRepo.NewMongoWaitingListRepo()
		orders = orderRepo.NewMongoOrderRepo()
	default:
		logger.Info("Using in-memory persistence backend")
		clients = clientRepo.NewMemoryClientRepo()
		reminders = reminderRepo.NewMemoryReminderRepo()
		waitinglist = waitinglistRepo.NewMemoryWaitingListRepo()
		orders = orderRepo.NewMemoryOrderRepo()
	}

	var storageSvc storage.StorageService
	if svc, err := utils.Cloudinary(); err != nil {
		logger.Warn("Attachment storage disabled", zap.Error(err))
	} else {
		storageSvc = svc
	}

	// Registries.
	reminderRegistry := registry.NewReminderRegistry(reminders, utils.GetCacheClient())
	reminderRegistry.Enqueue = cron.NewReminderEnqueuer()
	clientRegistry := registry.NewClientRegistry(clients, reminderRegistry,
		config.AppConfig.WeekWindow, config.AppConfig.CapacityLimit)
	waitingListRegistry := registry.NewWaitingListRegistry(waitinglist)
	orderRegistry := registry.NewOrderRegistry(orders)

	// Load persisted state; a broken store degrades to an empty board.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 15*time.Second)
	clientRegistry.Load(loadCtx)
	reminderRegistry.Load(loadCtx)
	waitingListRegistry.Load(loadCtx)
	orderRegistry.Load(loadCtx)
	loadCancel()

	// Background work: due-reminder worker plus the day-change ticker.
	cron.InitReminderWorker(reminderRegistry)
	tickCtx, tickCancel := context.WithCancel(context.Background())
	defer tickCancel()
	cron.StartDayTicker(tickCtx, clientRegistry)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Schedule:    handlers.NewScheduleHandler(clientRegistry),
		Clients:     handlers.NewClientHandler(clientRegistry),
		Reminders:   handlers.NewReminderHandler(reminderRegistry, clientRegistry),
		WaitingList: handlers.NewWaitingListHandler(waitingListRegistry),
		Orders:      handlers.NewOrderHandler(orderRegistry),
		Storage:     handlers.NewStorageHandler(storageSvc, clientRegistry),
	}
	routes.RegisterAll(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
