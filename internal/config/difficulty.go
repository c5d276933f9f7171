package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds multipliers applied on top of the loaded config.
type presetScale struct {
	padding float64
	speed   float64
}

var presets = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {padding: 1.25, speed: 0.85},
	DifficultyNormal: {padding: 1.0, speed: 1.0},
	DifficultyHard:   {padding: 0.8, speed: 1.2},
}

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset scales pipe padding and hero speed for the given preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *FlapConfig, preset DifficultyPreset) {
	scale, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Pipes.Padding *= scale.padding
	cfg.Physics.HeroSpeed *= scale.speed
}
