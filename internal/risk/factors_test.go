package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

// midVector sets every feature to raw 0.5
func midVector() feature.Vector {
	var v feature.Vector
	for i := range v {
		v[i] = 0.5
	}
	return v
}

// worstVector maxes out polarity-adjusted badness everywhere
func worstVector() feature.Vector {
	var v feature.Vector
	for i := range v {
		if feature.PolarityOf(i) == feature.HigherIsBetter {
			v[i] = 0
		} else {
			v[i] = 1
		}
	}
	return v
}

func factorNames(factors []model.RiskFactor) []string {
	names := make([]string, len(factors))
	for i, f := range factors {
		names[i] = f.Name
	}
	return names
}

func TestIdentifyHighStressScenario(t *testing.T) {
	v := midVector()
	v[feature.StressLevel] = 1.0
	v[feature.EmotionalExhaustion] = 0.9
	v[feature.WorkOverload] = 0.9

	factors := Identify(&v)
	names := factorNames(factors)

	require.Contains(t, names, "High stress")
	require.Contains(t, names, "Work overload")

	for _, f := range factors {
		switch f.Name {
		case "High stress", "Work overload":
			assert.Contains(t, []model.RiskTier{model.TierCritical, model.TierHigh}, f.Impact,
				"%s should be flagged as serious", f.Name)
		}
	}
}

func TestIdentifyCalmProfileFindsNothingSerious(t *testing.T) {
	var v feature.Vector
	for i := range v {
		if feature.PolarityOf(i) == feature.HigherIsBetter {
			v[i] = 0.9
		} else {
			v[i] = 0.1
		}
	}

	assert.Empty(t, Identify(&v))
}

func TestIdentifyOrderedByImpact(t *testing.T) {
	v := midVector()
	v[feature.StressLevel] = 1.0   // Critical
	v[feature.WorkOverload] = 0.75 // Moderate-ish
	v[feature.NeckPain] = 0.6      // Pain mean barely over threshold

	factors := Identify(&v)
	require.NotEmpty(t, factors)

	for i := 1; i < len(factors); i++ {
		assert.LessOrEqual(t, factors[i].Impact.Rank(), factors[i-1].Impact.Rank(),
			"factors must be sorted by descending impact")
	}
	assert.Equal(t, "High stress", factors[0].Name)
}

func TestIdentifySeverityInRange(t *testing.T) {
	v := worstVector()
	factors := Identify(&v)
	require.NotEmpty(t, factors)

	for _, f := range factors {
		assert.GreaterOrEqual(t, f.Severity, 0.0)
		assert.LessOrEqual(t, f.Severity, 1.0)
		assert.True(t, f.Domain.Valid())
		assert.NotEmpty(t, f.Description)
	}
}

func TestGenerateIncludesStressRecommendation(t *testing.T) {
	v := midVector()
	v[feature.StressLevel] = 1.0
	v[feature.EmotionalExhaustion] = 0.9
	v[feature.WorkOverload] = 0.9

	factors := Identify(&v)
	recs := Generate(factors, model.TierHigh)

	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	assert.Contains(t, titles, "Reduce stress load")
	assert.Contains(t, titles, "Rebalance your workload")
}

func TestGenerateDedupAndCap(t *testing.T) {
	v := worstVector()
	factors := Identify(&v)
	recs := Generate(factors, model.TierCritical)

	assert.LessOrEqual(t, len(recs), MaxRecommendations)

	seen := make(map[string]bool)
	for _, r := range recs {
		assert.False(t, seen[r.Title], "duplicate recommendation title %s", r.Title)
		seen[r.Title] = true
		assert.NotEmpty(t, r.Actions)
	}
}

func TestGenerateCriticalPrependsUrgentHelp(t *testing.T) {
	recs := Generate(nil, model.TierCritical)

	require.Len(t, recs, 1)
	assert.Equal(t, "Seek professional support", recs[0].Title)
	assert.Equal(t, model.PriorityUrgent, recs[0].Priority)
}

func TestGenerateSortedByPriority(t *testing.T) {
	v := worstVector()
	factors := Identify(&v)
	recs := Generate(factors, model.TierCritical)

	require.NotEmpty(t, recs)
	assert.Equal(t, "Seek professional support", recs[0].Title)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i].Priority.Rank(), recs[i-1].Priority.Rank(),
			"recommendations must be sorted urgent-first")
	}
}

func TestGenerateNoFactorsNoNoise(t *testing.T) {
	assert.Empty(t, Generate(nil, model.TierLow))
}

func TestOneRecommendationPerDomain(t *testing.T) {
	// Two stress factors must collapse into one stress recommendation
	v := midVector()
	v[feature.StressLevel] = 1.0
	v[feature.EmotionalExhaustion] = 1.0

	factors := Identify(&v)
	stressFactors := 0
	for _, f := range factors {
		if f.Domain == model.DomainStress {
			stressFactors++
		}
	}
	require.GreaterOrEqual(t, stressFactors, 2)

	recs := Generate(factors, model.TierModerate)
	stressRecs := 0
	for _, r := range recs {
		if r.Domain == model.DomainStress {
			stressRecs++
		}
	}
	assert.Equal(t, 1, stressRecs)
}
