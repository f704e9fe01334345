package model

import "time"

// SurveyDomain identifies one surveyed life-area
type SurveyDomain string

const (
	DomainErgonomics      SurveyDomain = "ergonomics"
	DomainMusculoskeletal SurveyDomain = "musculoskeletal"
	DomainVisual          SurveyDomain = "visual"
	DomainWorkload        SurveyDomain = "workload"
	DomainStress          SurveyDomain = "stress"
	DomainSleep           SurveyDomain = "sleep"
	DomainActivity        SurveyDomain = "activity"
	DomainWorkLife        SurveyDomain = "worklife"
	DomainHealth          SurveyDomain = "health"
)

// AllDomains returns every survey domain in canonical order
func AllDomains() []SurveyDomain {
	return []SurveyDomain{
		DomainErgonomics,
		DomainMusculoskeletal,
		DomainVisual,
		DomainWorkload,
		DomainStress,
		DomainSleep,
		DomainActivity,
		DomainWorkLife,
		DomainHealth,
	}
}

// Valid reports whether d is a known survey domain
func (d SurveyDomain) Valid() bool {
	switch d {
	case DomainErgonomics, DomainMusculoskeletal, DomainVisual, DomainWorkload,
		DomainStress, DomainSleep, DomainActivity, DomainWorkLife, DomainHealth:
		return true
	}
	return false
}

// AnswerValue holds one answer: a category label, a 0-5 scale rating, or a
// numeric measurement (hours, days). Exactly one field is expected to be set.
type AnswerValue struct {
	Label  string   `json:"label,omitempty" bson:"label,omitempty"`   // For categorical questions
	Scale  *int     `json:"scale,omitempty" bson:"scale,omitempty"`   // For 0-5 rating questions
	Number *float64 `json:"number,omitempty" bson:"number,omitempty"` // For measurements
}

// AnswerRecord is one completed survey instance. Records are append-only: a
// later record of the same domain for the same user supersedes this one,
// it is never mutated in place.
type AnswerRecord struct {
	ID          string                 `json:"id" bson:"_id,omitempty"`
	UserID      string                 `json:"userId" bson:"userId"`
	Domain      SurveyDomain           `json:"domain" bson:"domain"`
	Answers     map[string]AnswerValue `json:"answers" bson:"answers"`
	CompletedAt time.Time              `json:"completedAt" bson:"completedAt"`
}

// Scale returns the 0-5 rating for a question key
func (r *AnswerRecord) Scale(key string) (int, bool) {
	v, ok := r.Answers[key]
	if !ok || v.Scale == nil {
		return 0, false
	}
	return *v.Scale, true
}

// Label returns the category label for a question key
func (r *AnswerRecord) Label(key string) (string, bool) {
	v, ok := r.Answers[key]
	if !ok || v.Label == "" {
		return "", false
	}
	return v.Label, true
}

// Number returns the numeric measurement for a question key
func (r *AnswerRecord) Number(key string) (float64, bool) {
	v, ok := r.Answers[key]
	if !ok || v.Number == nil {
		return 0, false
	}
	return *v.Number, true
}
