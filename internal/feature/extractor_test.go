package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workpulse/internal/model"
)

func intPtr(v int) *int { return &v }

func numPtr(v float64) *float64 { return &v }

func record(domain model.SurveyDomain, answers map[string]model.AnswerValue) *model.AnswerRecord {
	return &model.AnswerRecord{
		UserID:  "u1",
		Domain:  domain,
		Answers: answers,
	}
}

func fullAnswerSet() map[model.SurveyDomain]*model.AnswerRecord {
	return map[model.SurveyDomain]*model.AnswerRecord{
		model.DomainErgonomics: record(model.DomainErgonomics, map[string]model.AnswerValue{
			"chair_type":        {Label: "ergonomic"},
			"lumbar_support":    {Scale: intPtr(5)},
			"desk_height":       {Label: "adjustable"},
			"monitor_height":    {Label: "eye_level"},
			"monitor_distance":  {Label: "arm_length"},
			"keyboard_position": {Scale: intPtr(4)},
			"mouse_position":    {Scale: intPtr(4)},
			"lighting":          {Label: "natural"},
			"comfort":           {Scale: intPtr(4)},
		}),
		model.DomainMusculoskeletal: record(model.DomainMusculoskeletal, map[string]model.AnswerValue{
			"neck_pain":         {Scale: intPtr(2)},
			"shoulder_pain":     {Scale: intPtr(1)},
			"back_pain":         {Scale: intPtr(3)},
			"wrist_pain":        {Scale: intPtr(0)},
			"pain_frequency":    {Label: "sometimes"},
			"pain_interference": {Scale: intPtr(1)},
		}),
		model.DomainVisual: record(model.DomainVisual, map[string]model.AnswerValue{
			"eye_strain":     {Scale: intPtr(3)},
			"dry_eyes":       {Scale: intPtr(2)},
			"blurred_vision": {Scale: intPtr(1)},
			"headaches":      {Label: "rarely"},
			"screen_breaks":  {Label: "hourly"},
		}),
		model.DomainWorkload: record(model.DomainWorkload, map[string]model.AnswerValue{
			"daily_hours":       {Number: numPtr(9)},
			"overload":          {Scale: intPtr(3)},
			"deadline_pressure": {Scale: intPtr(4)},
			"multitasking":      {Scale: intPtr(3)},
			"overtime":          {Label: "weekly"},
		}),
		model.DomainStress: record(model.DomainStress, map[string]model.AnswerValue{
			"stress_level":         {Scale: intPtr(4)},
			"emotional_exhaustion": {Scale: intPtr(3)},
			"irritability":         {Scale: intPtr(2)},
			"anxiety":              {Scale: intPtr(2)},
			"concentration_issues": {Scale: intPtr(3)},
			"depersonalization":    {Scale: intPtr(1)},
		}),
		model.DomainSleep: record(model.DomainSleep, map[string]model.AnswerValue{
			"quality":      {Scale: intPtr(2)},
			"hours":        {Number: numPtr(6)},
			"insomnia":     {Label: "often"},
			"wake_fatigue": {Scale: intPtr(4)},
		}),
		model.DomainActivity: record(model.DomainActivity, map[string]model.AnswerValue{
			"exercise_days":   {Number: numPtr(2)},
			"sedentary_hours": {Number: numPtr(9)},
			"active_breaks":   {Label: "few_per_week"},
		}),
		model.DomainWorkLife: record(model.DomainWorkLife, map[string]model.AnswerValue{
			"balance":      {Scale: intPtr(2)},
			"disconnect":   {Scale: intPtr(1)},
			"family_time":  {Label: "some"},
			"leisure_time": {Label: "little"},
		}),
		model.DomainHealth: record(model.DomainHealth, map[string]model.AnswerValue{
			"general_health": {Label: "good"},
			"energy":         {Scale: intPtr(3)},
			"diet":           {Label: "mostly_ok"},
		}),
	}
}

func TestExtractAllComponentsInRange(t *testing.T) {
	v, missing := Extract(fullAnswerSet())

	assert.Empty(t, missing)
	for i := 0; i < Count; i++ {
		assert.GreaterOrEqual(t, v[i], 0.0, "feature %s below range", Name(i))
		assert.LessOrEqual(t, v[i], 1.0, "feature %s above range", Name(i))
	}
}

func TestExtractMalformedInputDegradesToDefaults(t *testing.T) {
	answers := map[model.SurveyDomain]*model.AnswerRecord{
		model.DomainErgonomics: record(model.DomainErgonomics, map[string]model.AnswerValue{
			"chair_type": {Label: "hammock"},     // Unknown category
			"lighting":   {Label: "disco ball"},  // Unknown category
			"comfort":    {Scale: intPtr(42)},    // Out-of-range scale
		}),
		model.DomainWorkload: record(model.DomainWorkload, map[string]model.AnswerValue{
			"daily_hours": {Number: numPtr(-3)}, // Negative measurement
			"overload":    {Scale: intPtr(-1)},
		}),
	}

	v, missing := Extract(answers)

	assert.Len(t, missing, 7)
	// Unknown chair type degrades to its 0.5 default; lumbar is missing (0.5)
	assert.InDelta(t, 0.5, v[ChairQuality], 1e-9)
	assert.InDelta(t, 0.5, v[LightingQuality], 1e-9)
	// Out-of-range values clamp instead of escaping [0,1]
	assert.Equal(t, 1.0, v[WorkspaceComfort])
	assert.Equal(t, 0.0, v[WorkHours])
	assert.Equal(t, 0.0, v[WorkOverload])
}

func TestExtractDeterministic(t *testing.T) {
	answers := fullAnswerSet()

	v1, m1 := Extract(answers)
	v2, m2 := Extract(answers)

	assert.Equal(t, v1, v2)
	assert.Equal(t, m1, m2)
}

func TestExtractMissingDomainsKeepDefaults(t *testing.T) {
	answers := map[model.SurveyDomain]*model.AnswerRecord{
		model.DomainStress: fullAnswerSet()[model.DomainStress],
	}

	v, missing := Extract(answers)

	require.Len(t, missing, 8)
	assert.NotContains(t, missing, model.DomainStress)

	defaults := Defaults()
	for _, d := range missing {
		for _, i := range DomainFeatures(d) {
			assert.Equal(t, defaults[i], v[i], "feature %s should keep its default", Name(i))
		}
	}
}

func TestScaleNormalization(t *testing.T) {
	answers := map[model.SurveyDomain]*model.AnswerRecord{
		model.DomainStress: record(model.DomainStress, map[string]model.AnswerValue{
			"stress_level":         {Scale: intPtr(5)},
			"emotional_exhaustion": {Scale: intPtr(3)},
		}),
	}

	v, _ := Extract(answers)

	assert.Equal(t, 1.0, v[StressLevel])
	assert.InDelta(t, 0.6, v[EmotionalExhaustion], 1e-9)
}

func TestChairQualityComposite(t *testing.T) {
	answers := map[model.SurveyDomain]*model.AnswerRecord{
		model.DomainErgonomics: record(model.DomainErgonomics, map[string]model.AnswerValue{
			"chair_type":     {Label: "ergonomic"},
			"lumbar_support": {Scale: intPtr(5)},
		}),
	}

	v, _ := Extract(answers)
	assert.Equal(t, 1.0, v[ChairQuality])

	answers[model.DomainErgonomics] = record(model.DomainErgonomics, map[string]model.AnswerValue{
		"chair_type":     {Label: "stool"},
		"lumbar_support": {Scale: intPtr(0)},
	})
	v, _ = Extract(answers)
	assert.InDelta(t, 0.05, v[ChairQuality], 1e-9)
}

func TestPolarityAdjustedRisk(t *testing.T) {
	require.Equal(t, HigherIsBetter, PolarityOf(ChairQuality))
	require.Equal(t, HigherIsWorse, PolarityOf(StressLevel))

	var v Vector
	v[ChairQuality] = 0.9
	v[StressLevel] = 0.9

	// A good chair is low risk, high stress is high risk
	assert.InDelta(t, 0.1, v.Risk(ChairQuality), 1e-9)
	assert.InDelta(t, 0.9, v.Risk(StressLevel), 1e-9)
}

func TestRegistryNamesAreUniqueAndResolvable(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < Count; i++ {
		name := Name(i)
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate feature name %s", name)
		seen[name] = true

		idx, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestDomainFeaturesCoverVector(t *testing.T) {
	total := 0
	for _, d := range model.AllDomains() {
		total += len(DomainFeatures(d))
	}
	assert.Equal(t, Count, total)
}
