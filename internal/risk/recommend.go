package risk

import (
	"sort"

	"workpulse/internal/model"
)

// MaxRecommendations caps the list so output stays actionable
const MaxRecommendations = 5

// urgentHelp is prepended unconditionally when the overall tier is critical
var urgentHelp = model.Recommendation{
	Title:       "Seek professional support",
	Description: "Your assessment indicates a critical burnout risk. Talk to an occupational health professional or your doctor as soon as possible.",
	Priority:    model.PriorityUrgent,
	Domain:      model.DomainStress,
	Actions: []string{
		"Book an appointment with an occupational health service this week",
		"Tell your manager or HR that you need workload relief",
		"Do not wait for symptoms to pass on their own",
	},
}

// One fixed recommendation per domain. A domain appearing via multiple
// factors still yields a single entry.
var domainRecommendations = map[model.SurveyDomain]model.Recommendation{
	model.DomainStress: {
		Title:       "Reduce stress load",
		Description: "Build daily recovery moments into your schedule to bring stress back to a manageable level.",
		Domain:      model.DomainStress,
		Actions: []string{
			"Block two short decompression breaks in your calendar every day",
			"Practice a 5-minute breathing exercise when tension rises",
			"Identify your top stressor this week and raise it with your team",
		},
	},
	model.DomainWorkload: {
		Title:       "Rebalance your workload",
		Description: "Sustained overload erodes performance and health. Make the load visible and negotiate it down.",
		Domain:      model.DomainWorkload,
		Actions: []string{
			"List current commitments and flag what cannot be delivered",
			"Agree priorities with your manager instead of absorbing everything",
			"Protect at least one meeting-free focus block per day",
		},
	},
	model.DomainMusculoskeletal: {
		Title:       "Address recurring pain",
		Description: "Recurring pain during desk work is a warning sign, not a normal cost of the job.",
		Domain:      model.DomainMusculoskeletal,
		Actions: []string{
			"Do a 2-minute stretch routine every hour of desk work",
			"See a physiotherapist if pain persists beyond two weeks",
			"Alternate sitting and standing if your desk allows it",
		},
	},
	model.DomainErgonomics: {
		Title:       "Fix your workstation setup",
		Description: "Small workstation corrections remove a constant source of physical strain.",
		Domain:      model.DomainErgonomics,
		Actions: []string{
			"Raise your monitor so the top of the screen sits at eye level",
			"Adjust your chair for full lumbar support",
			"Keep keyboard and mouse at elbow height, wrists straight",
		},
	},
	model.DomainVisual: {
		Title:       "Protect your eyes",
		Description: "Screen-heavy work needs deliberate visual rest to prevent chronic strain.",
		Domain:      model.DomainVisual,
		Actions: []string{
			"Follow the 20-20-20 rule: every 20 minutes look 20 feet away for 20 seconds",
			"Reduce glare with indirect lighting or a matte screen filter",
			"Get an eye exam if symptoms persist",
		},
	},
	model.DomainSleep: {
		Title:       "Improve your sleep",
		Description: "Sleep is the primary recovery mechanism from work strain; protect it first.",
		Domain:      model.DomainSleep,
		Actions: []string{
			"Keep a fixed wake-up time, including weekends",
			"Stop screen use 30 minutes before bed",
			"Aim for 7-8 hours in bed, not just asleep",
		},
	},
	model.DomainActivity: {
		Title:       "Move more during the day",
		Description: "Regular movement offsets the health cost of prolonged sitting.",
		Domain:      model.DomainActivity,
		Actions: []string{
			"Stand up and walk for a few minutes every hour",
			"Schedule at least three 30-minute exercise sessions per week",
			"Take walking meetings for one-on-ones",
		},
	},
	model.DomainWorkLife: {
		Title:       "Restore work-life boundaries",
		Description: "Recovery requires genuinely disconnecting from work outside working hours.",
		Domain:      model.DomainWorkLife,
		Actions: []string{
			"Set a hard end to the workday and log off completely",
			"Turn off work notifications outside working hours",
			"Plan one non-negotiable personal activity per week",
		},
	},
	model.DomainHealth: {
		Title:       "Invest in your general health",
		Description: "General health underpins resilience to workplace strain.",
		Domain:      model.DomainHealth,
		Actions: []string{
			"Schedule a routine health check-up",
			"Keep regular meal times with balanced food",
			"Track your energy for a week to spot patterns",
		},
	},
}

// Generate maps identified risk factors and the overall tier to a
// deduplicated, prioritized list of at most MaxRecommendations items.
func Generate(factors []model.RiskFactor, overall model.RiskTier) []model.Recommendation {
	var recs []model.Recommendation
	seen := make(map[string]bool)

	if overall == model.TierCritical {
		recs = append(recs, urgentHelp)
		seen[urgentHelp.Title] = true
	}

	// Worst factor impact per domain drives that domain's priority
	worst := make(map[model.SurveyDomain]model.RiskTier)
	var order []model.SurveyDomain
	for _, f := range factors {
		if _, ok := worst[f.Domain]; !ok {
			order = append(order, f.Domain)
		}
		if worst[f.Domain].Rank() < f.Impact.Rank() {
			worst[f.Domain] = f.Impact
		}
	}

	for _, d := range order {
		rec, ok := domainRecommendations[d]
		if !ok || seen[rec.Title] {
			continue
		}
		rec.Priority = priorityFor(worst[d])
		seen[rec.Title] = true
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() < recs[j].Priority.Rank()
	})

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

func priorityFor(impact model.RiskTier) model.Priority {
	switch impact {
	case model.TierCritical:
		return model.PriorityUrgent
	case model.TierHigh:
		return model.PriorityHigh
	case model.TierModerate:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
