package neural

import (
	"math/rand"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

// classProfile holds the per-class draw ranges for each feature group.
// Ranges are in raw feature space: wellbeing features are higher-is-better,
// so the low-risk class draws them high.
type classProfile struct {
	strain    [2]float64 // stress and workload features
	symptoms  [2]float64 // musculoskeletal, visual and sleep complaints
	wellbeing [2]float64 // higher-is-better features
}

// Tuning constants for the synthetic bootstrap, not an empirical model.
// They exist to produce a usable classifier before real labeled outcomes
// accumulate; sample counts come from configuration.
var profiles = [outputs]classProfile{
	{strain: [2]float64{0.0, 0.4}, symptoms: [2]float64{0.0, 0.35}, wellbeing: [2]float64{0.7, 1.0}},
	{strain: [2]float64{0.35, 0.7}, symptoms: [2]float64{0.3, 0.65}, wellbeing: [2]float64{0.4, 0.75}},
	{strain: [2]float64{0.65, 1.0}, symptoms: [2]float64{0.55, 1.0}, wellbeing: [2]float64{0.0, 0.45}},
}

// Synthetic generates perClass labeled examples for each of the three
// burnout classes by drawing every feature uniformly from its class range.
func Synthetic(perClass int, rng *rand.Rand) []Sample {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	samples := make([]Sample, 0, perClass*outputs)
	for label := 0; label < outputs; label++ {
		p := profiles[label]
		for s := 0; s < perClass; s++ {
			var v feature.Vector
			for i := 0; i < feature.Count; i++ {
				r := rangeFor(&p, i)
				v[i] = r[0] + rng.Float64()*(r[1]-r[0])
			}
			samples = append(samples, Sample{Input: v, Label: label})
		}
	}
	return samples
}

func rangeFor(p *classProfile, i int) [2]float64 {
	if feature.PolarityOf(i) == feature.HigherIsBetter {
		return p.wellbeing
	}
	switch feature.DomainOf(i) {
	case model.DomainStress, model.DomainWorkload:
		return p.strain
	default:
		return p.symptoms
	}
}
