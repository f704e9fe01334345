package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

// riskVector builds a vector whose polarity-adjusted badness is `level`
// for every feature.
func riskVector(level float64) feature.Vector {
	var v feature.Vector
	for i := 0; i < feature.Count; i++ {
		if feature.PolarityOf(i) == feature.HigherIsBetter {
			v[i] = 1 - level
		} else {
			v[i] = level
		}
	}
	return v
}

func TestAggregateScoreBounds(t *testing.T) {
	for _, level := range []float64{0, 0.25, 0.5, 0.75, 1} {
		v := riskVector(level)
		scores, overall, _ := Aggregate(&v, model.AllDomains())

		assert.GreaterOrEqual(t, overall, 0)
		assert.LessOrEqual(t, overall, 100)
		for d, ds := range scores {
			assert.GreaterOrEqual(t, ds.Score, 0, "domain %s", d)
			assert.LessOrEqual(t, ds.Score, 100, "domain %s", d)
		}
	}
}

func TestAggregateExtremes(t *testing.T) {
	v := riskVector(0)
	_, overall, tier := Aggregate(&v, model.AllDomains())
	assert.Equal(t, 0, overall)
	assert.Equal(t, model.TierLow, tier)

	v = riskVector(1)
	scores, overall, tier := Aggregate(&v, model.AllDomains())
	assert.Equal(t, 100, overall)
	assert.Equal(t, model.TierCritical, tier)
	for d, ds := range scores {
		assert.Equal(t, 100, ds.Score, "domain %s", d)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	v := riskVector(0.6)
	present := model.AllDomains()

	scores1, overall1, tier1 := Aggregate(&v, present)
	scores2, overall2, tier2 := Aggregate(&v, present)

	assert.Equal(t, scores1, scores2)
	assert.Equal(t, overall1, overall2)
	assert.Equal(t, tier1, tier2)
}

func TestPartialWeightsRenormalized(t *testing.T) {
	v := riskVector(0.7)
	present := []model.SurveyDomain{model.DomainStress, model.DomainSleep, model.DomainWorkload}

	scores, overall, _ := Aggregate(&v, present)

	require.Len(t, scores, 3)
	sum := 0.0
	for _, ds := range scores {
		sum += ds.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.GreaterOrEqual(t, overall, 0)
	assert.LessOrEqual(t, overall, 100)
}

func TestDomainWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range Weights() {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestTierMonotonicity(t *testing.T) {
	for _, d := range model.AllDomains() {
		prevRank := -1
		for step := 0; step <= 20; step++ {
			level := float64(step) / 20
			v := riskVector(0)
			for _, i := range feature.DomainFeatures(d) {
				if feature.PolarityOf(i) == feature.HigherIsBetter {
					v[i] = 1 - level
				} else {
					v[i] = level
				}
			}
			tier := TierFor(DomainScore(&v, d), d)
			rank := tier.Rank()
			require.GreaterOrEqual(t, rank, prevRank,
				"domain %s tier regressed at badness %.2f", d, level)
			prevRank = rank
		}
	}
}

func TestStressSpikeDominates(t *testing.T) {
	// Calm profile except an acute stress spike
	v := riskVector(0.1)
	v[feature.StressLevel] = 1.0

	score := DomainScore(&v, model.DomainStress)
	assert.GreaterOrEqual(t, score, 90)
	assert.Equal(t, model.TierCritical, TierFor(score, model.DomainStress))
}

func TestNoStressScenarioStaysBelowHigh(t *testing.T) {
	// No stress indicators at all, everything else mid-range
	v := riskVector(0.5)
	for _, i := range feature.DomainFeatures(model.DomainStress) {
		v[i] = 0
	}

	_, _, tier := Aggregate(&v, model.AllDomains())
	assert.Contains(t, []model.RiskTier{model.TierLow, model.TierModerate}, tier)
}
