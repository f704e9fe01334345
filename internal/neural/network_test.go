package neural

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

func TestOverrideThresholds(t *testing.T) {
	tests := []struct {
		name  string
		probs Probabilities
		want  model.RiskTier
	}{
		{"high at upper threshold", Probabilities{High: 0.7, Moderate: 0.2, Low: 0.1}, model.TierCritical},
		{"high above upper threshold", Probabilities{High: 0.92, Moderate: 0.05, Low: 0.03}, model.TierCritical},
		{"high at lower threshold", Probabilities{High: 0.5, Moderate: 0.3, Low: 0.2}, model.TierHigh},
		{"moderate dominant", Probabilities{High: 0.2, Moderate: 0.6, Low: 0.2}, model.TierModerate},
		{"low dominant", Probabilities{High: 0.05, Moderate: 0.15, Low: 0.8}, model.TierLow},
		{"nothing dominant", Probabilities{High: 0.34, Moderate: 0.33, Low: 0.33}, model.TierLow},
		// Not an arg-max: pHigh at the cascade head wins even when
		// pModerate is numerically larger
		{"high threshold beats larger moderate", Probabilities{High: 0.7, Moderate: 0.75, Low: 0}, model.TierCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.probs.Tier())
		})
	}
}

func TestPredictRequiresTraining(t *testing.T) {
	n := New(rand.New(rand.NewSource(7)))

	_, err := n.Predict(feature.Vector{})
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestTrainThenPredict(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := New(rng)

	n.Train(Synthetic(10, rng), 3, rng)
	require.True(t, n.Trained())
	assert.Equal(t, 1, n.Version())

	probs, err := n.Predict(riskProfile(0.9))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, probs.Low+probs.Moderate+probs.High, 1e-9)
	for _, p := range []float64{probs.Low, probs.Moderate, probs.High} {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}

	// Inference is deterministic: dropout is training-only
	again, err := n.Predict(riskProfile(0.9))
	require.NoError(t, err)
	assert.Equal(t, probs, again)
}

func TestWeightsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := New(rng)
	n.Train(Synthetic(5, rng), 2, rng)

	restored, err := FromWeights(n.Weights())
	require.NoError(t, err)

	input := riskProfile(0.4)
	want, err := n.Predict(input)
	require.NoError(t, err)
	got, err := restored.Predict(input)
	require.NoError(t, err)

	assert.InDelta(t, want.Low, got.Low, 1e-12)
	assert.InDelta(t, want.Moderate, got.Moderate, 1e-12)
	assert.InDelta(t, want.High, got.High, 1e-12)
}

func TestFromWeightsRejectsInvalidShapes(t *testing.T) {
	_, err := FromWeights(nil)
	assert.ErrorIs(t, err, ErrInvalidModel)

	_, err = FromWeights(&model.ClassifierWeights{Trained: false})
	assert.ErrorIs(t, err, ErrInvalidModel)

	rng := rand.New(rand.NewSource(3))
	n := New(rng)
	n.Train(Synthetic(2, rng), 1, rng)

	w := n.Weights()
	w.Layers = w.Layers[:2]
	_, err = FromWeights(w)
	assert.ErrorIs(t, err, ErrInvalidModel)

	w = n.Weights()
	w.Layers[1].Biases = w.Layers[1].Biases[:3]
	_, err = FromWeights(w)
	assert.ErrorIs(t, err, ErrInvalidModel)
}

func TestSyntheticBalancedAndInRange(t *testing.T) {
	samples := Synthetic(50, rand.New(rand.NewSource(5)))
	require.Len(t, samples, 150)

	counts := make(map[int]int)
	for _, s := range samples {
		counts[s.Label]++
		for i := 0; i < feature.Count; i++ {
			require.GreaterOrEqual(t, s.Input[i], 0.0)
			require.LessOrEqual(t, s.Input[i], 1.0)
		}
	}
	assert.Equal(t, map[int]int{0: 50, 1: 50, 2: 50}, counts)
}

func TestSyntheticClustersAreSeparated(t *testing.T) {
	samples := Synthetic(20, rand.New(rand.NewSource(9)))

	// Low-risk draws keep stress features low and wellbeing features high
	for _, s := range samples {
		if s.Label != 0 {
			continue
		}
		assert.Less(t, s.Input[feature.StressLevel], 0.4)
		assert.GreaterOrEqual(t, s.Input[feature.ChairQuality], 0.7)
	}
	for _, s := range samples {
		if s.Label != 2 {
			continue
		}
		assert.GreaterOrEqual(t, s.Input[feature.StressLevel], 0.65)
		assert.Less(t, s.Input[feature.ChairQuality], 0.45)
	}
}

// riskProfile builds a vector with uniform polarity-adjusted badness
func riskProfile(level float64) feature.Vector {
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
