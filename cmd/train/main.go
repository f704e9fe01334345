package main

import (
	"context"
	"flag"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"workpulse/internal/config"
	"workpulse/internal/repository"
	"workpulse/internal/service"
)

// Offline (re)training of the burnout classifier. Trains on the synthetic
// bootstrap set and replaces the persisted model wholesale.
func main() {
	force := flag.Bool("force", false, "retrain even when a trained model already exists")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(cfg.MongoDB)
	modelRepo := repository.NewClassifierModelRepo(db)

	if !*force {
		exists, err := modelRepo.Exists(ctx)
		if err != nil {
			log.Fatal("failed to check for existing model", zap.Error(err))
		}
		if exists {
			log.Info("trained model already exists, use -force to replace it")
			return
		}
	}

	classifierSvc := service.NewClassifierService(modelRepo, log, cfg.TrainSamplesPerClass, cfg.TrainEpochs)
	if err := classifierSvc.Retrain(ctx); err != nil {
		log.Fatal("training failed", zap.Error(err))
	}

	log.Info("classifier model trained and persisted",
		zap.Int("samplesPerClass", cfg.TrainSamplesPerClass),
		zap.Int("epochs", cfg.TrainEpochs))
}
