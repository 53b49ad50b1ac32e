// Package config provides YAML-based tuning for the shootout and the fixed
// ten-round difficulty curve.
package config

// ShootoutConfig contains all tunable parameters for the shootout game.
// Distances and speeds are in field units (the field is FieldW x FieldH
// units regardless of terminal size; rendering scales to the screen).
type ShootoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Goalie     GoalieConfig     `yaml:"goalie"`
	Shooter    ShooterConfig    `yaml:"shooter"`
	Puck       PuckConfig       `yaml:"puck"`
	Zones      ZonesConfig      `yaml:"zones"`
	Commentary CommentaryConfig `yaml:"commentary"`
}

// FieldConfig defines the playfield and goal-mouth geometry.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GoalX      float64 `yaml:"goal_x"`      // Goal line x-coordinate
	GoalTop    float64 `yaml:"goal_top"`    // Goal mouth upper bound
	GoalBottom float64 `yaml:"goal_bottom"` // Goal mouth lower bound
}

// GoalieConfig defines goalie movement and stance parameters.
type GoalieConfig struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`            // Units per tick, per axis
	BoxDepth        float64 `yaml:"box_depth"`        // Movement box width in front of the goal line
	BoxMarginY      float64 `yaml:"box_margin_y"`     // Vertical margin of the movement box
	StanceSmoothing float64 `yaml:"stance_smoothing"` // Per-frame lerp factor toward the target stance
}

// ShooterConfig defines shooter AI parameters.
type ShooterConfig struct {
	SpawnMarginX float64 `yaml:"spawn_margin_x"` // Spawn distance from the right edge
	PuckLead     float64 `yaml:"puck_lead"`      // How far the puck rides ahead of the stick
	WobbleFreq   float64 `yaml:"wobble_freq"`    // Sine frequency of the lateral weave, per tick
	ThresholdMin float64 `yaml:"threshold_min"`  // Release threshold draw range (distance to goal)
	ThresholdMax float64 `yaml:"threshold_max"`
	WindupMillis int     `yaml:"windup_millis"` // Slap-shot wind-up duration
}

// PuckConfig defines puck physics parameters.
type PuckConfig struct {
	Radius       float64 `yaml:"radius"`
	TrailLen     int     `yaml:"trail_len"`
	MagnetRadius float64 `yaml:"magnet_radius"`
	MagnetGain   float64 `yaml:"magnet_gain"`
	CurveGain    float64 `yaml:"curve_gain"`
}

// ZonesConfig defines the save-zone geometry around the goalie.
type ZonesConfig struct {
	StickOffsetX    float64 `yaml:"stick_offset_x"` // Stick zone offset toward play
	StickRaiseY     float64 `yaml:"stick_raise_y"`  // Vertical shift for UP/DOWN stick
	StickRadius     float64 `yaml:"stick_radius"`
	GloveWidth      float64 `yaml:"glove_width"` // Glove box, above and beside the goalie (stick UP)
	GloveHeight     float64 `yaml:"glove_height"`
	ButterflyWidth  float64 `yaml:"butterfly_width"` // Butterfly box, below the goalie (stick DOWN)
	ButterflyHeight float64 `yaml:"butterfly_height"`
}

// CommentaryConfig configures the post-round commentary service.
// The call is best-effort: any failure falls back to Fallback.
type CommentaryConfig struct {
	URL           string `yaml:"url"`             // Empty disables the call entirely
	APIKeyEnv     string `yaml:"api_key_env"`     // Name of the env var holding the key
	TimeoutMillis int    `yaml:"timeout_millis"`
	Fallback      string `yaml:"fallback"`
}
