package model

import "time"

// RiskTier is one of the ordered risk classifications. Low always means
// "good" regardless of the polarity of the underlying features.
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierModerate RiskTier = "moderate"
	TierHigh     RiskTier = "high"
	TierCritical RiskTier = "critical"
)

// Rank returns the tier's position for ordering (higher = worse)
func (t RiskTier) Rank() int {
	switch t {
	case TierLow:
		return 0
	case TierModerate:
		return 1
	case TierHigh:
		return 2
	case TierCritical:
		return 3
	}
	return -1
}

// Priority orders recommendations (Urgent first)
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the priority's sort position (lower = more urgent)
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// DomainScore is one domain's 0-100 risk score with its tier and its weight
// in the overall score. 100 is always worst; domains with higher-is-better
// features are inverted before scoring.
type DomainScore struct {
	Domain SurveyDomain `json:"domain" bson:"domain"`
	Score  int          `json:"score" bson:"score"`   // 0-100
	Tier   RiskTier     `json:"tier" bson:"tier"`     // From domain-specific cut-points
	Weight float64      `json:"weight" bson:"weight"` // Effective weight after renormalization
}

// RiskFactor is a single named, thresholded finding of elevated risk.
// Derived purely from the feature vector; persisted only as part of the
// assessment that produced it.
type RiskFactor struct {
	Name        string       `json:"name" bson:"name"`
	Domain      SurveyDomain `json:"domain" bson:"domain"`
	Severity    float64      `json:"severity" bson:"severity"` // 0-1
	Impact      RiskTier     `json:"impact" bson:"impact"`
	Description string       `json:"description" bson:"description"`
}

// Recommendation is a prioritized action item tied to one domain
type Recommendation struct {
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description" bson:"description"`
	Priority    Priority     `json:"priority" bson:"priority"`
	Domain      SurveyDomain `json:"domain" bson:"domain"`
	Actions     []string     `json:"actions" bson:"actions"`
}

// RiskProbabilities is the neural classifier's 3-way output distribution
type RiskProbabilities struct {
	Low      float64 `json:"low" bson:"low"`
	Moderate float64 `json:"moderate" bson:"moderate"`
	High     float64 `json:"high" bson:"high"`
}

// OverallAssessment is one computed burnout-risk assessment. Assessments are
// append-only history: every recomputation creates a fresh one.
//
// Score/Tier come from the rule-based aggregator, which is the system of
// record. NeuralTier/NeuralProbs carry the classifier's advisory opinion side
// by side; the two are intentionally not reconciled when they disagree.
type OverallAssessment struct {
	ID              string                       `json:"id" bson:"_id,omitempty"`
	UserID          string                       `json:"userId" bson:"userId"`
	Score           int                          `json:"score" bson:"score"` // 0-100 weighted over present domains
	Tier            RiskTier                     `json:"tier" bson:"tier"`
	DomainScores    map[SurveyDomain]DomainScore `json:"domainScores" bson:"domainScores"`
	RiskFactors     []RiskFactor                 `json:"riskFactors" bson:"riskFactors"`
	Recommendations []Recommendation             `json:"recommendations" bson:"recommendations"`
	MissingDomains  []SurveyDomain               `json:"missingDomains,omitempty" bson:"missingDomains,omitempty"`
	NeuralTier      RiskTier                     `json:"neuralTier,omitempty" bson:"neuralTier,omitempty"`
	NeuralProbs     *RiskProbabilities           `json:"neuralProbs,omitempty" bson:"neuralProbs,omitempty"`
	ComputedAt      time.Time                    `json:"computedAt" bson:"computedAt"`
}

// Partial reports whether the assessment was computed without every domain
func (a *OverallAssessment) Partial() bool {
	return len(a.MissingDomains) > 0
}
