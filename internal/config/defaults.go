package config

import (
	_ "embed"
)

//go:embed defaults/shootout.yaml
var defaultShootoutYAML []byte

// DefaultShootoutConfig returns the default shootout configuration.
// Kept in sync with defaults/shootout.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultShootoutConfig() ShootoutConfig {
	return ShootoutConfig{
		Field: FieldConfig{
			Width:      200,
			Height:     100,
			GoalX:      18,
			GoalTop:    38,
			GoalBottom: 62,
		},
		Goalie: GoalieConfig{
			Radius:          6,
			Speed:           1.2,
			BoxDepth:        12,
			BoxMarginY:      8,
			StanceSmoothing: 0.15,
		},
		Shooter: ShooterConfig{
			SpawnMarginX: 20,
			PuckLead:     4,
			WobbleFreq:   0.08,
			ThresholdMin: 45,
			ThresholdMax: 75,
			WindupMillis: 500,
		},
		Puck: PuckConfig{
			Radius:       1.5,
			TrailLen:     15,
			MagnetRadius: 100,
			MagnetGain:   0.25,
			CurveGain:    0.3,
		},
		Zones: ZonesConfig{
			StickOffsetX:    7,
			StickRaiseY:     5,
			StickRadius:     4,
			GloveWidth:      10,
			GloveHeight:     7,
			ButterflyWidth:  22,
			ButterflyHeight: 6,
		},
		Commentary: CommentaryConfig{
			URL:           "",
			APIKeyEnv:     "SHOOTOUT_COMMENTARY_KEY",
			TimeoutMillis: 1500,
			Fallback:      "What a moment in this shootout!",
		},
	}
}
