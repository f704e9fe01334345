package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"workpulse/internal/model"
	"workpulse/internal/repository"
)

var (
	ErrUnknownDomain = errors.New("unknown survey domain")
	ErrEmptyAnswers  = errors.New("survey submission has no answers")
)

// SurveyService handles survey answer ingestion and retrieval
type SurveyService struct {
	answers repository.AnswerRepo
	log     *zap.Logger
}

// NewSurveyService creates a new survey service
func NewSurveyService(answers repository.AnswerRepo, log *zap.Logger) *SurveyService {
	return &SurveyService{
		answers: answers,
		log:     log,
	}
}

// Submit stores a completed survey. Records are append-only: the new record
// supersedes older ones of the same domain without touching them. Answer
// values are not validated beyond shape; the extractor degrades malformed
// values to defaults.
func (s *SurveyService) Submit(ctx context.Context, userID string, domain model.SurveyDomain, answers map[string]model.AnswerValue) (*model.AnswerRecord, error) {
	if !domain.Valid() {
		return nil, ErrUnknownDomain
	}
	if len(answers) == 0 {
		return nil, ErrEmptyAnswers
	}

	record := &model.AnswerRecord{
		UserID:      userID,
		Domain:      domain,
		Answers:     answers,
		CompletedAt: time.Now(),
	}
	if err := s.answers.Create(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info("survey submitted",
		zap.String("userId", userID),
		zap.String("domain", string(domain)),
		zap.Int("answers", len(answers)))
	return record, nil
}

// Latest returns the most recent completed record for a domain, nil when
// the user never completed that survey.
func (s *SurveyService) Latest(ctx context.Context, userID string, domain model.SurveyDomain) (*model.AnswerRecord, error) {
	if !domain.Valid() {
		return nil, ErrUnknownDomain
	}
	return s.answers.GetLatest(ctx, userID, domain)
}
