package service

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"workpulse/internal/feature"
	"workpulse/internal/model"
	"workpulse/internal/neural"
	"workpulse/internal/repository"
)

var (
	// ErrClassifierNotReady means inference was requested before a model was
	// trained or loaded. Fatal to the inference call only; the rule-based
	// scoring path does not depend on it.
	ErrClassifierNotReady = errors.New("classifier model not trained or loaded")

	// ErrTrainingInProgress means a retraining run is already in flight
	ErrTrainingInProgress = errors.New("classifier training already in progress")
)

// ClassifierService owns the neural risk classifier. The live network sits
// behind an atomic pointer: inference reads it lock-free and retraining
// swaps in a complete replacement, so readers never observe a partially
// updated model.
type ClassifierService struct {
	repo            repository.ClassifierModelRepo
	log             *zap.Logger
	samplesPerClass int
	epochs          int

	net      atomic.Pointer[neural.Network]
	training atomic.Bool
}

// NewClassifierService creates a new classifier service
func NewClassifierService(repo repository.ClassifierModelRepo, log *zap.Logger, samplesPerClass, epochs int) *ClassifierService {
	if samplesPerClass <= 0 {
		samplesPerClass = 50
	}
	if epochs <= 0 {
		epochs = 200
	}
	return &ClassifierService{
		repo:            repo,
		log:             log,
		samplesPerClass: samplesPerClass,
		epochs:          epochs,
	}
}

// Load restores the persisted model, bootstrapping one from synthetic data
// when none exists yet. Called once at process start.
func (s *ClassifierService) Load(ctx context.Context) error {
	weights, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if weights == nil {
		s.log.Info("no persisted classifier model, bootstrapping from synthetic data")
		return s.Retrain(ctx)
	}

	net, err := neural.FromWeights(weights)
	if err != nil {
		return err
	}
	s.net.Store(net)
	s.log.Info("classifier model loaded",
		zap.Int("version", net.Version()),
		zap.Time("trainedAt", weights.TrainedAt))
	return nil
}

// Retrain trains a fresh network on synthetic bootstrap data, persists it
// and atomically swaps it in. The synthetic set is a stand-in until real
// labeled outcomes accumulate. At most one retraining runs at a time;
// a concurrent call returns ErrTrainingInProgress instead of racing to
// be the last write.
func (s *ClassifierService) Retrain(ctx context.Context) error {
	if !s.training.CompareAndSwap(false, true) {
		return ErrTrainingInProgress
	}
	defer s.training.Store(false)
	return s.retrain(ctx)
}

// StartRetrain launches a retraining run in the background, failing fast
// when one is already in flight. Failures of the run itself are logged.
func (s *ClassifierService) StartRetrain() error {
	if !s.training.CompareAndSwap(false, true) {
		return ErrTrainingInProgress
	}
	go func() {
		defer s.training.Store(false)
		// Detached from any request context so training survives the response
		if err := s.retrain(context.Background()); err != nil {
			s.log.Error("classifier retraining failed", zap.Error(err))
		}
	}()
	return nil
}

func (s *ClassifierService) retrain(ctx context.Context) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	samples := neural.Synthetic(s.samplesPerClass, rng)
	net := neural.New(rng)

	start := time.Now()
	net.Train(samples, s.epochs, rng)
	s.log.Info("classifier trained",
		zap.Int("samples", len(samples)),
		zap.Int("epochs", s.epochs),
		zap.Duration("took", time.Since(start)))

	if err := s.repo.Save(ctx, net.Weights()); err != nil {
		return err
	}
	s.net.Store(net)
	return nil
}

// Predict runs the feature vector through the live model and classifies it
// with the ordered override thresholds.
func (s *ClassifierService) Predict(v feature.Vector) (neural.Probabilities, model.RiskTier, error) {
	net := s.net.Load()
	if net == nil {
		return neural.Probabilities{}, "", ErrClassifierNotReady
	}
	probs, err := net.Predict(v)
	if err != nil {
		return neural.Probabilities{}, "", ErrClassifierNotReady
	}
	return probs, probs.Tier(), nil
}

// Ready reports whether a trained model is available for inference
func (s *ClassifierService) Ready() bool {
	return s.net.Load() != nil
}

// Training reports whether a retraining run is currently in flight
func (s *ClassifierService) Training() bool {
	return s.training.Load()
}
