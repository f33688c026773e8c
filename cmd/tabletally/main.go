package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	appActivity "github.com/playdeck/tabletally/pkg/app/activity"
	"github.com/playdeck/tabletally/pkg/app/analytics"
	appSession "github.com/playdeck/tabletally/pkg/app/session"
	"github.com/playdeck/tabletally/pkg/config"
	handlers "github.com/playdeck/tabletally/pkg/handlers/http"
	wshandlers "github.com/playdeck/tabletally/pkg/handlers/websocket"
	"github.com/playdeck/tabletally/pkg/infra/cache"
	"github.com/playdeck/tabletally/pkg/infra/cache/channel"
	"github.com/playdeck/tabletally/pkg/infra/cache/event"
	"github.com/playdeck/tabletally/pkg/infra/cache/subscriber"
	"github.com/playdeck/tabletally/pkg/infra/database"
	"github.com/playdeck/tabletally/pkg/infra/jwt"
	infraLogger "github.com/playdeck/tabletally/pkg/infra/logger"
	"github.com/playdeck/tabletally/pkg/infra/receipt"
	"github.com/playdeck/tabletally/pkg/infra/repository"
	"github.com/playdeck/tabletally/pkg/middleware"
	"github.com/playdeck/tabletally/pkg/server"

	_ "github.com/playdeck/tabletally/pkg/infra/migrations"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config"
	}
	if err := config.Load(configPath); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheClient, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	})
	if err != nil {
		logger.Fatalf("failed to initialize cache: %v", err)
	}

	// repositories
	sessionRepository := repository.NewSessionRepository(db.DB)
	promotionRepository := repository.NewPromotionRepository(db.DB)
	paymentRepository := repository.NewPaymentRepository(db.DB)
	customerRepository := repository.NewCustomerRepository(db.DB)
	gameRepository := repository.NewGameRepository(db.DB)
	tableRepository := repository.NewCafeTableRepository(db.DB)
	activityRepository := repository.NewActivityRepository(db.DB)

	// redis pub/sub
	redisPublisher := cache.NewRedisEventPublisher(cacheClient)
	redisListener := cache.NewRedisEventListener(logger, cacheClient, event.Registry)

	cache.RegisterEventSubscriber[event.SessionChangedEvent](
		redisListener, subscriber.NewSessionChangedSubscriber(logger, cacheClient))
	cache.RegisterEventSubscriber[event.PromotionChangedEvent](
		redisListener, subscriber.NewPromotionChangedSubscriber(logger, cacheClient))
	cache.RegisterEventSubscriber[event.TableChangedEvent](
		redisListener, subscriber.NewTableChangedSubscriber(logger, cacheClient))

	// application services
	recorder := appActivity.NewRecorder(logger, activityRepository)
	schedules := appSession.NewScheduleResolver(logger, promotionRepository)
	notifier := receipt.NewNotifier(logger, cfg.Receipt)
	starter := appSession.NewStarter(logger, sessionRepository, tableRepository, promotionRepository, redisPublisher, recorder)
	settler := appSession.NewSettler(logger, sessionRepository, tableRepository, paymentRepository, schedules, redisPublisher, recorder, notifier)
	canceller := appSession.NewCanceller(logger, sessionRepository, tableRepository, redisPublisher, recorder)
	reporter := analytics.NewReporter(logger, sessionRepository, paymentRepository)

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	middlewareTransport := middleware.Transport{
		AuthMiddleware:    middleware.NewAuthMiddleware(logger, jwtManager),
		MetricsMiddleware: middleware.NewMetricsMiddleware(logger),
		RecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		// Customer
		CreateCustomerHandler: handlers.NewCreateCustomerHandler(logger, customerRepository),
		ListCustomersHandler:  handlers.NewListCustomersHandler(logger, customerRepository),
		GetCustomerHandler:    handlers.NewGetCustomerHandler(logger, customerRepository),
		UpdateCustomerHandler: handlers.NewUpdateCustomerHandler(logger, customerRepository),
		DeleteCustomerHandler: handlers.NewDeleteCustomerHandler(logger, customerRepository),
		// Game
		CreateGameHandler: handlers.NewCreateGameHandler(logger, gameRepository),
		ListGamesHandler:  handlers.NewListGamesHandler(logger, gameRepository),
		GetGameHandler:    handlers.NewGetGameHandler(logger, gameRepository),
		UpdateGameHandler: handlers.NewUpdateGameHandler(logger, gameRepository),
		DeleteGameHandler: handlers.NewDeleteGameHandler(logger, gameRepository),
		// Table
		CreateTableHandler: handlers.NewCreateTableHandler(logger, tableRepository),
		ListTablesHandler:  handlers.NewListTablesHandler(logger, tableRepository),
		GetTableHandler:    handlers.NewGetTableHandler(logger, tableRepository),
		UpdateTableHandler: handlers.NewUpdateTableHandler(logger, tableRepository),
		DeleteTableHandler: handlers.NewDeleteTableHandler(logger, tableRepository),
		// Promotion
		CreatePromotionHandler: handlers.NewCreatePromotionHandler(logger, promotionRepository, redisPublisher, recorder),
		ListPromotionsHandler:  handlers.NewListPromotionsHandler(logger, promotionRepository),
		GetPromotionHandler:    handlers.NewGetPromotionHandler(logger, promotionRepository, cacheClient),
		UpdatePromotionHandler: handlers.NewUpdatePromotionHandler(logger, promotionRepository, cacheClient, redisPublisher, recorder),
		DeletePromotionHandler: handlers.NewDeletePromotionHandler(logger, promotionRepository, cacheClient, redisPublisher),
		// Session
		StartSessionHandler:  handlers.NewStartSessionHandler(logger, starter),
		ListSessionsHandler:  handlers.NewListSessionsHandler(logger, sessionRepository),
		GetSessionHandler:    handlers.NewGetSessionHandler(logger, sessionRepository),
		SessionQuoteHandler:  handlers.NewSessionQuoteHandler(logger, sessionRepository, schedules),
		EndSessionHandler:    handlers.NewEndSessionHandler(logger, settler),
		CancelSessionHandler: handlers.NewCancelSessionHandler(logger, canceller),
		// Payment
		ListPaymentsHandler: handlers.NewListPaymentsHandler(logger, paymentRepository),
		GetPaymentHandler:   handlers.NewGetPaymentHandler(logger, paymentRepository),
		// Activity / analytics
		ListActivityHandler:   handlers.NewListActivityHandler(logger, activityRepository),
		RevenueSummaryHandler: handlers.NewRevenueSummaryHandler(logger, reporter),
	}

	websocketTransport := wshandlers.HandlerTransport{
		LiveSessionsHandler: wshandlers.NewLiveSessionsHandler(logger, sessionRepository, schedules),
	}

	go func() {
		logger.Info("listening for floor events")
		redisListener.Listen(ctx, channel.FloorEvents)
	}()

	srv := server.NewAdminServer(server.AdminServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		WebsocketTransport:  websocketTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
