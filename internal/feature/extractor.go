package feature

import (
	"strings"

	"workpulse/internal/model"
)

// Category tables map exact (lowercased, trimmed) answer labels to
// normalized scores. Lookups are total: anything not in the table falls
// back to the feature's registry default, extraction never fails on
// malformed input.

var chairTypeScores = map[string]float64{
	"ergonomic": 1.0,
	"office":    0.7,
	"standard":  0.4,
	"kitchen":   0.2,
	"stool":     0.1,
	"couch":     0.1,
}

var deskHeightScores = map[string]float64{
	"adjustable":    1.0,
	"fixed_correct": 0.8,
	"fixed_high":    0.3,
	"fixed_low":     0.3,
	"no_desk":       0.0,
}

var monitorHeightScores = map[string]float64{
	"eye_level":    1.0,
	"slightly_low": 0.7,
	"too_low":      0.2,
	"too_high":     0.3,
	"laptop_only":  0.2,
}

var monitorDistanceScores = map[string]float64{
	"arm_length": 1.0,
	"too_close":  0.3,
	"too_far":    0.5,
}

var lightingScores = map[string]float64{
	"natural":  1.0,
	"adequate": 0.8,
	"dim":      0.3,
	"glare":    0.2,
	"dark":     0.1,
}

var frequencyScores = map[string]float64{
	"never":     0.0,
	"rarely":    0.25,
	"sometimes": 0.5,
	"often":     0.75,
	"always":    1.0,
	"daily":     1.0,
}

var screenBreakScores = map[string]float64{
	"every_30_min": 1.0,
	"hourly":       0.75,
	"few_per_day":  0.4,
	"rarely":       0.15,
	"never":        0.0,
}

var overtimeScores = map[string]float64{
	"never":        0.0,
	"occasionally": 0.3,
	"weekly":       0.6,
	"most_days":    0.85,
	"daily":        1.0,
}

var activeBreakScores = map[string]float64{
	"several_daily": 1.0,
	"once_daily":    0.7,
	"few_per_week":  0.4,
	"rarely":        0.15,
	"never":         0.0,
}

var timeAmountScores = map[string]float64{
	"plenty": 1.0,
	"enough": 0.75,
	"some":   0.5,
	"little": 0.25,
	"none":   0.0,
}

var generalHealthScores = map[string]float64{
	"excellent": 1.0,
	"good":      0.75,
	"fair":      0.5,
	"poor":      0.2,
	"very_poor": 0.0,
}

var dietScores = map[string]float64{
	"balanced":  1.0,
	"mostly_ok": 0.7,
	"irregular": 0.4,
	"poor":      0.1,
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

// scaleValue normalizes a 0-5 rating answer linearly into [0,1]
func scaleValue(rec *model.AnswerRecord, key string, def float64) float64 {
	s, ok := rec.Scale(key)
	if !ok {
		return def
	}
	return clamp01(float64(s) / 5)
}

// categoryValue looks a label up in a score table
func categoryValue(rec *model.AnswerRecord, key string, table map[string]float64, def float64) float64 {
	label, ok := rec.Label(key)
	if !ok {
		return def
	}
	score, ok := table[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return def
	}
	return score
}

// numberValue normalizes a measurement linearly between lo and hi. When
// invert is set, lo maps to 1 and hi to 0.
func numberValue(rec *model.AnswerRecord, key string, lo, hi, def float64, invert bool) float64 {
	n, ok := rec.Number(key)
	if !ok {
		return def
	}
	v := clamp01((n - lo) / (hi - lo))
	if invert {
		return 1 - v
	}
	return v
}

func mean(vals ...float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Extract maps the latest answer records onto the normalized feature vector.
// Features whose domain has no record keep their registry defaults; the
// missing domains are returned so the caller can flag a partial assessment.
// Individual malformed answers degrade to defaults, never to an error.
func Extract(answers map[model.SurveyDomain]*model.AnswerRecord) (Vector, []model.SurveyDomain) {
	v := Defaults()
	var missing []model.SurveyDomain

	for _, domain := range model.AllDomains() {
		rec, ok := answers[domain]
		if !ok || rec == nil {
			missing = append(missing, domain)
			continue
		}
		extractors[domain](rec, &v)
	}

	// No extraction path may leave a component outside [0,1]
	for i := range v {
		v[i] = clamp01(v[i])
	}
	return v, missing
}

var extractors = map[model.SurveyDomain]func(*model.AnswerRecord, *Vector){
	model.DomainErgonomics:      extractErgonomics,
	model.DomainMusculoskeletal: extractMusculoskeletal,
	model.DomainVisual:          extractVisual,
	model.DomainWorkload:        extractWorkload,
	model.DomainStress:          extractStress,
	model.DomainSleep:           extractSleep,
	model.DomainActivity:        extractActivity,
	model.DomainWorkLife:        extractWorkLife,
	model.DomainHealth:          extractHealth,
}

func extractErgonomics(rec *model.AnswerRecord, v *Vector) {
	// Composites average their sub-normalizations
	v[ChairQuality] = mean(
		categoryValue(rec, "chair_type", chairTypeScores, 0.5),
		scaleValue(rec, "lumbar_support", 0.5),
	)
	v[DeskSetup] = categoryValue(rec, "desk_height", deskHeightScores, 0.5)
	v[MonitorPosition] = mean(
		categoryValue(rec, "monitor_height", monitorHeightScores, 0.5),
		categoryValue(rec, "monitor_distance", monitorDistanceScores, 0.5),
	)
	v[KeyboardMouseSetup] = mean(
		scaleValue(rec, "keyboard_position", 0.5),
		scaleValue(rec, "mouse_position", 0.5),
	)
	v[LightingQuality] = categoryValue(rec, "lighting", lightingScores, 0.5)
	v[WorkspaceComfort] = scaleValue(rec, "comfort", 0.5)
}

func extractMusculoskeletal(rec *model.AnswerRecord, v *Vector) {
	v[NeckPain] = scaleValue(rec, "neck_pain", 0)
	v[ShoulderPain] = scaleValue(rec, "shoulder_pain", 0)
	v[BackPain] = scaleValue(rec, "back_pain", 0)
	v[WristPain] = scaleValue(rec, "wrist_pain", 0)
	v[PainFrequency] = categoryValue(rec, "pain_frequency", frequencyScores, 0)
	v[PainInterference] = scaleValue(rec, "pain_interference", 0)
}

func extractVisual(rec *model.AnswerRecord, v *Vector) {
	v[EyeStrain] = scaleValue(rec, "eye_strain", 0)
	v[DryEyes] = scaleValue(rec, "dry_eyes", 0)
	v[BlurredVision] = scaleValue(rec, "blurred_vision", 0)
	v[HeadacheFrequency] = categoryValue(rec, "headaches", frequencyScores, 0)
	v[ScreenBreakDiscipline] = categoryValue(rec, "screen_breaks", screenBreakScores, 0.5)
}

func extractWorkload(rec *model.AnswerRecord, v *Vector) {
	// 6h/day maps to 0, 12h/day or more to 1
	v[WorkHours] = numberValue(rec, "daily_hours", 6, 12, 0.5, false)
	v[WorkOverload] = scaleValue(rec, "overload", 0.5)
	v[DeadlinePressure] = scaleValue(rec, "deadline_pressure", 0.5)
	v[Multitasking] = scaleValue(rec, "multitasking", 0.5)
	v[OvertimeFrequency] = categoryValue(rec, "overtime", overtimeScores, 0.5)
}

func extractStress(rec *model.AnswerRecord, v *Vector) {
	v[StressLevel] = scaleValue(rec, "stress_level", 0.5)
	v[EmotionalExhaustion] = scaleValue(rec, "emotional_exhaustion", 0.5)
	v[Irritability] = scaleValue(rec, "irritability", 0.5)
	v[AnxietyLevel] = scaleValue(rec, "anxiety", 0.5)
	v[ConcentrationIssues] = scaleValue(rec, "concentration_issues", 0.5)
	v[Depersonalization] = scaleValue(rec, "depersonalization", 0.5)
}

func extractSleep(rec *model.AnswerRecord, v *Vector) {
	v[SleepQuality] = scaleValue(rec, "quality", 0.5)
	// 8h of sleep maps to no deficit, 4h or less to full deficit
	v[SleepDeficit] = numberValue(rec, "hours", 4, 8, 0.5, true)
	v[InsomniaFrequency] = categoryValue(rec, "insomnia", frequencyScores, 0)
	v[WakeFatigue] = scaleValue(rec, "wake_fatigue", 0.5)
}

func extractActivity(rec *model.AnswerRecord, v *Vector) {
	v[ExerciseFrequency] = numberValue(rec, "exercise_days", 0, 5, 0.5, false)
	// 4 sedentary hours map to 0, 12 or more to 1
	v[SedentaryHours] = numberValue(rec, "sedentary_hours", 4, 12, 0.5, false)
	v[ActiveBreaks] = categoryValue(rec, "active_breaks", activeBreakScores, 0.5)
}

func extractWorkLife(rec *model.AnswerRecord, v *Vector) {
	v[WorkLifeBalance] = scaleValue(rec, "balance", 0.5)
	v[DisconnectAbility] = scaleValue(rec, "disconnect", 0.5)
	v[FamilyTime] = categoryValue(rec, "family_time", timeAmountScores, 0.5)
	v[LeisureTime] = categoryValue(rec, "leisure_time", timeAmountScores, 0.5)
}

func extractHealth(rec *model.AnswerRecord, v *Vector) {
	v[GeneralHealth] = categoryValue(rec, "general_health", generalHealthScores, 0.5)
	v[EnergyLevel] = scaleValue(rec, "energy", 0.5)
	v[DietQuality] = categoryValue(rec, "diet", dietScores, 0.5)
}
