package feature

import "workpulse/internal/model"

// Polarity states what a higher normalized value means for a feature.
// Every consumer must check polarity instead of assuming higher-is-worse;
// the ergonomics and wellbeing features run the other way.
type Polarity int

const (
	HigherIsWorse Polarity = iota
	HigherIsBetter
)

// Feature indices. The order is fixed and part of the persisted model
// contract: trained classifier weights are only valid for this layout.
const (
	ChairQuality = iota
	DeskSetup
	MonitorPosition
	KeyboardMouseSetup
	LightingQuality
	WorkspaceComfort
	NeckPain
	ShoulderPain
	BackPain
	WristPain
	PainFrequency
	PainInterference
	EyeStrain
	DryEyes
	BlurredVision
	HeadacheFrequency
	ScreenBreakDiscipline
	WorkHours
	WorkOverload
	DeadlinePressure
	Multitasking
	OvertimeFrequency
	StressLevel
	EmotionalExhaustion
	Irritability
	AnxietyLevel
	ConcentrationIssues
	Depersonalization
	SleepQuality
	SleepDeficit
	InsomniaFrequency
	WakeFatigue
	ExerciseFrequency
	SedentaryHours
	ActiveBreaks
	WorkLifeBalance
	DisconnectAbility
	FamilyTime
	LeisureTime
	GeneralHealth
	EnergyLevel
	DietQuality

	Count // Fixed vector length (42)
)

// Def describes one feature: its stable name, owning domain, polarity and
// the default used when its answer is missing or malformed.
type Def struct {
	Name     string
	Domain   model.SurveyDomain
	Polarity Polarity
	Default  float64
}

var registry = [Count]Def{
	ChairQuality:       {"chair_quality", model.DomainErgonomics, HigherIsBetter, 0.5},
	DeskSetup:          {"desk_setup", model.DomainErgonomics, HigherIsBetter, 0.5},
	MonitorPosition:    {"monitor_position", model.DomainErgonomics, HigherIsBetter, 0.5},
	KeyboardMouseSetup: {"keyboard_mouse_setup", model.DomainErgonomics, HigherIsBetter, 0.5},
	LightingQuality:    {"lighting_quality", model.DomainErgonomics, HigherIsBetter, 0.5},
	WorkspaceComfort:   {"workspace_comfort", model.DomainErgonomics, HigherIsBetter, 0.5},

	// Symptom scales default to 0: an unanswered symptom question is not a symptom
	NeckPain:         {"neck_pain", model.DomainMusculoskeletal, HigherIsWorse, 0},
	ShoulderPain:     {"shoulder_pain", model.DomainMusculoskeletal, HigherIsWorse, 0},
	BackPain:         {"back_pain", model.DomainMusculoskeletal, HigherIsWorse, 0},
	WristPain:        {"wrist_pain", model.DomainMusculoskeletal, HigherIsWorse, 0},
	PainFrequency:    {"pain_frequency", model.DomainMusculoskeletal, HigherIsWorse, 0},
	PainInterference: {"pain_interference", model.DomainMusculoskeletal, HigherIsWorse, 0},

	EyeStrain:             {"eye_strain", model.DomainVisual, HigherIsWorse, 0},
	DryEyes:               {"dry_eyes", model.DomainVisual, HigherIsWorse, 0},
	BlurredVision:         {"blurred_vision", model.DomainVisual, HigherIsWorse, 0},
	HeadacheFrequency:     {"headache_frequency", model.DomainVisual, HigherIsWorse, 0},
	ScreenBreakDiscipline: {"screen_break_discipline", model.DomainVisual, HigherIsBetter, 0.5},

	WorkHours:         {"work_hours", model.DomainWorkload, HigherIsWorse, 0.5},
	WorkOverload:      {"work_overload", model.DomainWorkload, HigherIsWorse, 0.5},
	DeadlinePressure:  {"deadline_pressure", model.DomainWorkload, HigherIsWorse, 0.5},
	Multitasking:      {"multitasking", model.DomainWorkload, HigherIsWorse, 0.5},
	OvertimeFrequency: {"overtime_frequency", model.DomainWorkload, HigherIsWorse, 0.5},

	StressLevel:         {"stress_level", model.DomainStress, HigherIsWorse, 0.5},
	EmotionalExhaustion: {"emotional_exhaustion", model.DomainStress, HigherIsWorse, 0.5},
	Irritability:        {"irritability", model.DomainStress, HigherIsWorse, 0.5},
	AnxietyLevel:        {"anxiety_level", model.DomainStress, HigherIsWorse, 0.5},
	ConcentrationIssues: {"concentration_issues", model.DomainStress, HigherIsWorse, 0.5},
	Depersonalization:   {"depersonalization", model.DomainStress, HigherIsWorse, 0.5},

	SleepQuality:      {"sleep_quality", model.DomainSleep, HigherIsBetter, 0.5},
	SleepDeficit:      {"sleep_deficit", model.DomainSleep, HigherIsWorse, 0.5},
	InsomniaFrequency: {"insomnia_frequency", model.DomainSleep, HigherIsWorse, 0},
	WakeFatigue:       {"wake_fatigue", model.DomainSleep, HigherIsWorse, 0.5},

	ExerciseFrequency: {"exercise_frequency", model.DomainActivity, HigherIsBetter, 0.5},
	SedentaryHours:    {"sedentary_hours", model.DomainActivity, HigherIsWorse, 0.5},
	ActiveBreaks:      {"active_breaks", model.DomainActivity, HigherIsBetter, 0.5},

	WorkLifeBalance:   {"work_life_balance", model.DomainWorkLife, HigherIsBetter, 0.5},
	DisconnectAbility: {"disconnect_ability", model.DomainWorkLife, HigherIsBetter, 0.5},
	FamilyTime:        {"family_time", model.DomainWorkLife, HigherIsBetter, 0.5},
	LeisureTime:       {"leisure_time", model.DomainWorkLife, HigherIsBetter, 0.5},

	GeneralHealth: {"general_health", model.DomainHealth, HigherIsBetter, 0.5},
	EnergyLevel:   {"energy_level", model.DomainHealth, HigherIsBetter, 0.5},
	DietQuality:   {"diet_quality", model.DomainHealth, HigherIsBetter, 0.5},
}

var nameIndex = func() map[string]int {
	m := make(map[string]int, Count)
	for i, d := range registry {
		m[d.Name] = i
	}
	return m
}()

var domainIndex = func() map[model.SurveyDomain][]int {
	m := make(map[model.SurveyDomain][]int)
	for i, d := range registry {
		m[d.Domain] = append(m[d.Domain], i)
	}
	return m
}()

// Name returns the stable semantic name of feature i
func Name(i int) string {
	return registry[i].Name
}

// ByName returns the index of a named feature
func ByName(name string) (int, bool) {
	i, ok := nameIndex[name]
	return i, ok
}

// PolarityOf returns the polarity of feature i
func PolarityOf(i int) Polarity {
	return registry[i].Polarity
}

// DomainOf returns the owning domain of feature i
func DomainOf(i int) model.SurveyDomain {
	return registry[i].Domain
}

// DomainFeatures returns the indices belonging to one domain, in vector order
func DomainFeatures(d model.SurveyDomain) []int {
	return domainIndex[d]
}

// Vector is the fixed-length normalized feature vector. Every component is
// in [0,1]; a vector is fully determined by the answer records it was
// derived from.
type Vector [Count]float64

// Defaults returns a vector holding every feature's documented default
func Defaults() Vector {
	var v Vector
	for i, d := range registry {
		v[i] = d.Default
	}
	return v
}

// Risk returns the polarity-adjusted badness of feature i in [0,1],
// so downstream consumers never have to special-case inverted features.
func (v *Vector) Risk(i int) float64 {
	if registry[i].Polarity == HigherIsBetter {
		return 1 - v[i]
	}
	return v[i]
}

// MeanRisk returns the average polarity-adjusted badness over the given indices
func (v *Vector) MeanRisk(indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range indices {
		sum += v.Risk(i)
	}
	return sum / float64(len(indices))
}
