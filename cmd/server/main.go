package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"workpulse/internal/cache"
	"workpulse/internal/config"
	"workpulse/internal/repository"
	"workpulse/internal/service"
	"workpulse/internal/transport/rest"
	"workpulse/internal/transport/ws"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to ping Redis", zap.Error(err))
	}
	log.Info("connected to Redis")

	// Initialize repositories
	answerRepo := repository.NewAnswerRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	modelRepo := repository.NewClassifierModelRepo(db)

	// Initialize caches
	assessmentCache := cache.NewAssessmentCache(rdb, cfg.CacheTTL)

	// Initialize WebSocket hub
	wsHub := ws.NewHub(log)

	// Initialize services
	authSvc := service.NewAuthService(cfg.AuthUsername, cfg.AuthPassword, cfg.JWTSecret)
	surveySvc := service.NewSurveyService(answerRepo, log)
	classifierSvc := service.NewClassifierService(modelRepo, log, cfg.TrainSamplesPerClass, cfg.TrainEpochs)
	scoringSvc := service.NewScoringService(answerRepo, assessmentRepo, assessmentCache, classifierSvc, log, cfg.Freshness)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	scoringSvc.SetBroadcaster(wsHub)

	// Load or bootstrap the classifier model before serving traffic
	if err := classifierSvc.Load(ctx); err != nil {
		log.Fatal("failed to load classifier model", zap.Error(err))
	}

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		SurveyService:     surveySvc,
		ScoringService:    scoringSvc,
		ClassifierService: classifierSvc,
		WSHub:             wsHub,
		Logger:            log,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
