package risk

import (
	"sort"

	"workpulse/internal/feature"
	"workpulse/internal/model"
)

// rule is one independent threshold check over the feature vector. value
// returns polarity-adjusted badness in [0,1]; the rule fires when it
// reaches the threshold.
type rule struct {
	name        string
	domain      model.SurveyDomain
	threshold   float64
	description string
	value       func(v *feature.Vector) float64
}

// Rules fire independently; declaration order is the tie-break for equal
// impact in the returned list.
var rules = []rule{
	{
		name:        "High stress",
		domain:      model.DomainStress,
		threshold:   0.7,
		description: "Reported stress level is well above the healthy range",
		value:       func(v *feature.Vector) float64 { return v.Risk(feature.StressLevel) },
	},
	{
		name:        "Emotional exhaustion",
		domain:      model.DomainStress,
		threshold:   0.65,
		description: "Signs of emotional depletion, a core burnout dimension",
		value:       func(v *feature.Vector) float64 { return v.Risk(feature.EmotionalExhaustion) },
	},
	{
		name:        "Work overload",
		domain:      model.DomainWorkload,
		threshold:   0.7,
		description: "Perceived workload consistently exceeds capacity",
		value:       func(v *feature.Vector) float64 { return v.Risk(feature.WorkOverload) },
	},
	{
		name:        "Long working hours",
		domain:      model.DomainWorkload,
		threshold:   0.75,
		description: "Daily working hours are far above a sustainable schedule",
		value: func(v *feature.Vector) float64 {
			return (v.Risk(feature.WorkHours) + v.Risk(feature.OvertimeFrequency)) / 2
		},
	},
	{
		name:        "Musculoskeletal pain",
		domain:      model.DomainMusculoskeletal,
		threshold:   0.5,
		description: "Recurring pain in the neck, shoulders, back or wrists",
		value: func(v *feature.Vector) float64 {
			return (v.Risk(feature.NeckPain) + v.Risk(feature.ShoulderPain) +
				v.Risk(feature.BackPain) + v.Risk(feature.WristPain)) / 4
		},
	},
	{
		name:        "Poor ergonomics",
		domain:      model.DomainErgonomics,
		threshold:   0.6,
		description: "Workstation setup is likely contributing to physical strain",
		value: func(v *feature.Vector) float64 {
			return v.MeanRisk(feature.DomainFeatures(model.DomainErgonomics))
		},
	},
	{
		name:        "Eye strain",
		domain:      model.DomainVisual,
		threshold:   0.6,
		description: "Frequent visual fatigue symptoms from screen work",
		value: func(v *feature.Vector) float64 {
			return (v.Risk(feature.EyeStrain) + v.Risk(feature.DryEyes) + v.Risk(feature.BlurredVision)) / 3
		},
	},
	{
		name:        "Sleep deprivation",
		domain:      model.DomainSleep,
		threshold:   0.6,
		description: "Insufficient or non-restorative sleep",
		value: func(v *feature.Vector) float64 {
			return (v.Risk(feature.SleepDeficit) + v.Risk(feature.InsomniaFrequency) + v.Risk(feature.WakeFatigue)) / 3
		},
	},
	{
		name:        "Sedentary lifestyle",
		domain:      model.DomainActivity,
		threshold:   0.65,
		description: "Little physical activity and long uninterrupted sitting",
		value: func(v *feature.Vector) float64 {
			return v.MeanRisk(feature.DomainFeatures(model.DomainActivity))
		},
	},
	{
		name:        "Poor work-life balance",
		domain:      model.DomainWorkLife,
		threshold:   0.6,
		description: "Work is crowding out recovery, family and leisure time",
		value: func(v *feature.Vector) float64 {
			return v.MeanRisk(feature.DomainFeatures(model.DomainWorkLife))
		},
	},
}

// Identify evaluates every rule against the vector and returns the fired
// factors ordered by descending impact, ties in rule declaration order.
func Identify(v *feature.Vector) []model.RiskFactor {
	var factors []model.RiskFactor
	for _, r := range rules {
		val := r.value(v)
		if val < r.threshold {
			continue
		}
		factors = append(factors, model.RiskFactor{
			Name:        r.name,
			Domain:      r.domain,
			Severity:    clamp01(val),
			Impact:      impactFor(val, r.threshold),
			Description: r.description,
		})
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Impact.Rank() > factors[j].Impact.Rank()
	})
	return factors
}

// impactFor grades a factor by how far past its threshold the value lies,
// relative to the remaining headroom.
func impactFor(val, threshold float64) model.RiskTier {
	over := (val - threshold) / (1 - threshold)
	switch {
	case over >= 0.6:
		return model.TierCritical
	case over >= 0.35:
		return model.TierHigh
	case over >= 0.15:
		return model.TierModerate
	default:
		return model.TierLow
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
