package server

import (
	"assettracker/providers"
	configprovider "assettracker/providers/configProvider"
	"assettracker/providers/databaseProvider"
	"assettracker/providers/identityProvider"
	"assettracker/providers/imageProvider"
	"assettracker/providers/loggerProvider"
	"assettracker/providers/middlewareprovider"
	redisprovider "assettracker/providers/redisProvider"
	"assettracker/providers/summarizerProvider"
	"assettracker/repository"
	assetservice "assettracker/services/asset"
	directoryservice "assettracker/services/directory"
	reportservice "assettracker/services/report"
	webhookservice "assettracker/services/webhook"
	"context"
	"io"
	stdlog "log"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Server struct {
	Config           providers.ConfigProvider
	DB               providers.DBProvider
	Redis            providers.RedisProvider
	Logger           providers.ZapLoggerProvider
	Middleware       providers.AuthMiddlewareService
	Summarizer       providers.Summarizer
	AssetHandler     *assetservice.AssetHandler
	ReportHandler    *reportservice.ReportHandler
	WebhookHandler   *webhookservice.WebhookHandler
	DirectoryHandler *directoryservice.DirectoryHandler
	httpServer       *http.Server
}

func ServerInit() *Server {
	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		stdlog.Fatalf("invalid configuration: %v", err)
	}

	logger := loggerProvider.NewLogProvider(cfg.GetAppEnv())
	logger.InitLogger()
	log := logger.GetLogger()

	db := databaseProvider.NewDBProvider(cfg.GetDatabaseString())

	middleware, err := middlewareprovider.NewAuthMiddlewareService(cfg.GetClerkJWTPublicKey(), logger)
	if err != nil {
		log.Fatal("failed to init session middleware", zap.Error(err))
	}

	var redis providers.RedisProvider
	if addr := cfg.GetRedisAddr(); addr != "" {
		redis = redisprovider.NewRedisProvider(addr, cfg.GetRedisPassword())
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redis.Ping(ctx); err != nil {
			log.Warn("redis unreachable, directory cache will fall through", zap.String("addr", addr), zap.Error(err))
		}
		cancel()
	} else {
		log.Info("REDIS_ADDR not set, directory cache disabled")
	}

	images, err := imageProvider.NewCloudinaryStore(cfg.GetCloudinaryCloudName(), cfg.GetCloudinaryAPIKey(), cfg.GetCloudinaryAPISecret())
	if err != nil {
		log.Fatal("failed to init image store", zap.Error(err))
	}

	summarizer, err := summarizerProvider.NewGeminiSummarizer(context.Background(), cfg.GetGeminiAPIKey(), cfg.GetGeminiModel(), cfg.GetSummarizerTimeout())
	if err != nil {
		log.Fatal("failed to init summarizer", zap.Error(err))
	}

	identity := identityProvider.NewClerkProvider(cfg.GetClerkSecretKey(), "")
	verifier := identityProvider.NewWebhookVerifier(cfg.GetClerkWebhookSecret())

	// repositories
	assetRepo := repository.NewAssetRepository(db.DB())
	userRepo := repository.NewUserRepository(db.DB())
	orgRepo := repository.NewOrganizationRepository(db.DB())
	notificationRepo := repository.NewNotificationRepository(db.DB())

	// services
	assetService := assetservice.NewAssetService(assetRepo, userRepo, notificationRepo, identity, images, logger)
	reportService := reportservice.NewReportService(assetRepo, orgRepo, summarizer, logger)
	webhookService := webhookservice.NewWebhookService(db.DB(), userRepo, orgRepo, assetRepo, logger)
	directoryService := directoryservice.NewDirectoryService(identity, redis, logger)

	return &Server{
		Config:           cfg,
		DB:               db,
		Redis:            redis,
		Logger:           logger,
		Middleware:       middleware,
		Summarizer:       summarizer,
		AssetHandler:     assetservice.NewAssetHandler(assetService, middleware, logger),
		ReportHandler:    reportservice.NewReportHandler(reportService, middleware, logger),
		WebhookHandler:   webhookservice.NewWebhookHandler(webhookService, verifier, logger),
		DirectoryHandler: directoryservice.NewDirectoryHandler(directoryService, middleware, logger),
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	log := s.Logger.GetLogger()
	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error("error shutting down server", zap.Error(err))
		}
	}

	if err := s.DB.Close(); err != nil {
		log.Error("error closing DB", zap.Error(err))
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Error("error closing redis", zap.Error(err))
		}
	}
	if closer, ok := s.Summarizer.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Error("error closing summarizer", zap.Error(err))
		}
	}

	log.Info("server shutdown complete")
	s.Logger.SyncLogger()
}
