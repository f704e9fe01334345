package scoring

import (
	"math"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

// Domain weights for the overall score. Must sum to 1.0; renormalized at
// aggregation time over the domains that actually have data.
var domainWeights = map[model.SurveyDomain]float64{
	model.DomainErgonomics:      0.10,
	model.DomainMusculoskeletal: 0.15,
	model.DomainVisual:          0.05,
	model.DomainWorkload:        0.15,
	model.DomainStress:          0.20,
	model.DomainSleep:           0.15,
	model.DomainActivity:        0.05,
	model.DomainWorkLife:        0.10,
	model.DomainHealth:          0.05,
}

// cutpoints are the tier boundaries for a 0-100 score:
// score < [0] is low, < [1] moderate, < [2] high, else critical.
type cutpoints [3]int

var defaultCutpoints = cutpoints{25, 50, 75}

// Domains with outsized downstream impact classify more aggressively.
var domainCutpoints = map[model.SurveyDomain]cutpoints{
	model.DomainStress:          {20, 45, 70},
	model.DomainSleep:           {25, 45, 70},
	model.DomainMusculoskeletal: {20, 45, 75},
}

var overallCutpoints = defaultCutpoints

// Per-feature weights for domains where a plain mean misrepresents risk.
// Features absent from a domain's table weigh 1.
var featureWeights = map[int]float64{
	feature.StressLevel:         1.5,
	feature.EmotionalExhaustion: 1.5,
	feature.WorkHours:           1.3,
	feature.WorkOverload:        1.3,
	feature.SleepDeficit:        1.2,
}

// Aggregate combines the feature vector into per-domain scores and the
// weighted overall score and tier. Only the given present domains
// contribute; their weights are renormalized to sum to 1 so a user who
// completed a subset of surveys still gets a comparably-scaled score.
// Pure function: same vector and domains always yield the same result.
func Aggregate(v *feature.Vector, present []model.SurveyDomain) (map[model.SurveyDomain]model.DomainScore, int, model.RiskTier) {
	scores := make(map[model.SurveyDomain]model.DomainScore, len(present))

	totalWeight := 0.0
	for _, d := range present {
		totalWeight += domainWeights[d]
	}

	weightedSum := 0.0
	for _, d := range present {
		score := domainScore(v, d)
		weight := 0.0
		if totalWeight > 0 {
			weight = domainWeights[d] / totalWeight
		}
		scores[d] = model.DomainScore{
			Domain: d,
			Score:  score,
			Tier:   tierFor(score, cutpointsFor(d)),
			Weight: weight,
		}
		weightedSum += float64(score) * weight
	}

	overall := clampScore(weightedSum)
	return scores, overall, tierFor(overall, overallCutpoints)
}

// DomainScore computes one domain's 0-100 risk score from the vector
func DomainScore(v *feature.Vector, d model.SurveyDomain) int {
	return domainScore(v, d)
}

// TierFor classifies a 0-100 score with a domain's cut-points
func TierFor(score int, d model.SurveyDomain) model.RiskTier {
	return tierFor(score, cutpointsFor(d))
}

// OverallTier classifies a 0-100 overall score
func OverallTier(score int) model.RiskTier {
	return tierFor(score, overallCutpoints)
}

// Weights returns a copy of the configured domain weights
func Weights() map[model.SurveyDomain]float64 {
	w := make(map[model.SurveyDomain]float64, len(domainWeights))
	for d, v := range domainWeights {
		w[d] = v
	}
	return w
}

func domainScore(v *feature.Vector, d model.SurveyDomain) int {
	indices := feature.DomainFeatures(d)
	if len(indices) == 0 {
		return 0
	}

	sum, weightSum := 0.0, 0.0
	for _, i := range indices {
		w := 1.0
		if fw, ok := featureWeights[i]; ok {
			w = fw
		}
		sum += v.Risk(i) * w
		weightSum += w
	}
	risk := sum / weightSum

	if d == model.DomainStress {
		risk = stressBoost(v, risk)
	}

	return clampScore(risk * 100)
}

// stressBoost applies the nonlinear stress rule: an acute spike in stress
// level or emotional exhaustion dominates the domain score even when the
// remaining indicators are calm.
func stressBoost(v *feature.Vector, base float64) float64 {
	worst := math.Max(v.Risk(feature.StressLevel), v.Risk(feature.EmotionalExhaustion))
	if worst >= 0.8 {
		return math.Max(base, 0.6+0.4*worst)
	}
	return base
}

// clampScore rounds and clamps to [0,100]
func clampScore(s float64) int {
	score := int(math.Round(s))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func cutpointsFor(d model.SurveyDomain) cutpoints {
	if c, ok := domainCutpoints[d]; ok {
		return c
	}
	return defaultCutpoints
}

func tierFor(score int, c cutpoints) model.RiskTier {
	switch {
	case score < c[0]:
		return model.TierLow
	case score < c[1]:
		return model.TierModerate
	case score < c[2]:
		return model.TierHigh
	default:
		return model.TierCritical
	}
}
