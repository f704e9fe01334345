package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"workpulse/internal/cache"
	"workpulse/internal/feature"
	"workpulse/internal/model"
	"workpulse/internal/repository"
	"workpulse/internal/risk"
	"workpulse/internal/scoring"
)

// ErrNoAnswers means the user has not completed any survey yet
var ErrNoAnswers = errors.New("no completed surveys for user")

// Broadcaster pushes computed assessments to connected clients
type Broadcaster interface {
	AssessmentReady(userID string, assessment *model.OverallAssessment)
}

// ScoringService is the orchestrator: it fetches the latest answers, runs
// extraction, aggregation and the advisory classifier, persists and caches
// the result. A singleflight group keyed by user guarantees at most one
// concurrent recomputation per user; concurrent callers share the result.
type ScoringService struct {
	answers    repository.AnswerRepo
	results    repository.AssessmentRepo
	cache      cache.AssessmentCache
	classifier *ClassifierService
	log        *zap.Logger
	freshness  time.Duration

	group       singleflight.Group
	broadcaster Broadcaster
}

// NewScoringService creates a new scoring service
func NewScoringService(
	answers repository.AnswerRepo,
	results repository.AssessmentRepo,
	assessmentCache cache.AssessmentCache,
	classifier *ClassifierService,
	log *zap.Logger,
	freshness time.Duration,
) *ScoringService {
	if freshness <= 0 {
		freshness = 5 * time.Minute
	}
	return &ScoringService{
		answers:    answers,
		results:    results,
		cache:      assessmentCache,
		classifier: classifier,
		log:        log,
		freshness:  freshness,
	}
}

// SetBroadcaster injects the event hub (optional)
func (s *ScoringService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// ComputeOrRefresh returns a fresh assessment for the user, serving the
// cached one when it is younger than the freshness window. Persistence
// failures are logged but never fail the call: the in-memory result is
// authoritative for the caller. When the recomputation itself fails, a
// stale cached assessment is still served; the error only reaches the
// caller when there is no result at all.
func (s *ScoringService) ComputeOrRefresh(ctx context.Context, userID string) (*model.OverallAssessment, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.Warn("assessment cache read failed", zap.String("userId", userID), zap.Error(err))
	}
	if cached != nil && time.Since(cached.ComputedAt) < s.freshness {
		return cached, nil
	}

	// The computation is shared by every coalesced caller, so it must not
	// die with whichever caller happened to start it
	computeCtx := context.WithoutCancel(ctx)
	result, err, _ := s.group.Do(userID, func() (interface{}, error) {
		return s.compute(computeCtx, userID)
	})
	if err != nil {
		if cached != nil {
			s.log.Warn("recompute failed, serving stale cached assessment",
				zap.String("userId", userID), zap.Error(err))
			return cached, nil
		}
		return nil, err
	}
	return result.(*model.OverallAssessment), nil
}

// GetCached returns the latest known assessment without recomputing:
// cache first, then the durable store. Nil when none exists.
func (s *ScoringService) GetCached(ctx context.Context, userID string) (*model.OverallAssessment, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.Warn("assessment cache read failed", zap.String("userId", userID), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}
	return s.results.GetLatest(ctx, userID)
}

// History returns the user's assessments over the last rangeDays for trends
func (s *ScoringService) History(ctx context.Context, userID string, rangeDays int) ([]*model.OverallAssessment, error) {
	return s.results.History(ctx, userID, rangeDays)
}

func (s *ScoringService) compute(ctx context.Context, userID string) (*model.OverallAssessment, error) {
	answers := make(map[model.SurveyDomain]*model.AnswerRecord)
	found := false
	for _, domain := range model.AllDomains() {
		record, err := s.answers.GetLatest(ctx, userID, domain)
		if err != nil {
			return nil, err
		}
		if record != nil {
			answers[domain] = record
			found = true
		}
	}
	if !found {
		return nil, ErrNoAnswers
	}

	vector, missing := feature.Extract(answers)

	present := make([]model.SurveyDomain, 0, len(answers))
	for _, domain := range model.AllDomains() {
		if _, ok := answers[domain]; ok {
			present = append(present, domain)
		}
	}

	domainScores, overall, tier := scoring.Aggregate(&vector, present)
	factors := risk.Identify(&vector)
	recommendations := risk.Generate(factors, tier)

	assessment := &model.OverallAssessment{
		ID:              uuid.NewString(),
		UserID:          userID,
		Score:           overall,
		Tier:            tier,
		DomainScores:    domainScores,
		RiskFactors:     factors,
		Recommendations: recommendations,
		MissingDomains:  missing,
		ComputedAt:      time.Now(),
	}

	// Advisory path: a missing model degrades to a rule-based-only result
	if s.classifier != nil {
		probs, neuralTier, err := s.classifier.Predict(vector)
		if err != nil {
			s.log.Warn("neural classification skipped", zap.String("userId", userID), zap.Error(err))
		} else {
			assessment.NeuralTier = neuralTier
			assessment.NeuralProbs = probs.Model()
			if neuralTier != tier {
				s.log.Info("rule-based and neural classifications disagree",
					zap.String("userId", userID),
					zap.String("ruleTier", string(tier)),
					zap.String("neuralTier", string(neuralTier)))
			}
		}
	}

	if err := s.results.Save(ctx, assessment); err != nil {
		s.log.Error("assessment persistence failed, returning in-memory result",
			zap.String("userId", userID), zap.Error(err))
	}
	if err := s.cache.Set(ctx, assessment); err != nil {
		s.log.Warn("assessment cache write failed", zap.String("userId", userID), zap.Error(err))
	}

	if s.broadcaster != nil {
		s.broadcaster.AssessmentReady(userID, assessment)
	}

	return assessment, nil
}
