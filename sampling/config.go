package sampling

// CommonConfig holds the configuration fields shared by every strategy.
// All fields are optional on the wire; validation fills nothing — absent
// pointers keep their strategy-defined meaning (no rotation, strategy
// default target, deterministic default seed).
type CommonConfig struct {
	// TargetPointCount is the desired number of points, subject to process
	// and tool clamping. Nil means the strategy default.
	TargetPointCount *int `json:"target_point_count,omitempty" yaml:"target_point_count,omitempty" validate:"omitempty,gte=1"`
	// EdgeExclusionMM shrinks the effective valid radius before masking.
	EdgeExclusionMM float64 `json:"edge_exclusion_mm,omitempty" yaml:"edge_exclusion_mm,omitempty" validate:"gte=0"`
	// RotationSeed rotates candidate generation by that many degrees about
	// wafer center. Nil means no rotation.
	RotationSeed *int `json:"rotation_seed,omitempty" yaml:"rotation_seed,omitempty" validate:"omitempty,gte=0,lt=360"`
	// DeterministicSeed seeds the deterministic RNG used by stochastic
	// options such as grid jitter. Nil falls back to a fixed default.
	DeterministicSeed *int64 `json:"deterministic_seed,omitempty" yaml:"deterministic_seed,omitempty" validate:"omitempty,gte=0"`
}

// DefaultRNGSeed is used when a stochastic option runs without an explicit
// deterministic_seed.
const DefaultRNGSeed int64 = 42

// RNGSeed resolves the effective seed for stochastic operations.
func (c CommonConfig) RNGSeed() int64 {
	if c.DeterministicSeed != nil {
		return *c.DeterministicSeed
	}
	return DefaultRNGSeed
}

// RadialSpacing selects how CENTER_EDGE spaces its rings.
type RadialSpacing string

const (
	SpacingUniform     RadialSpacing = "UNIFORM"
	SpacingExponential RadialSpacing = "EXPONENTIAL"
)

// GridAlignment selects how GRID_UNIFORM anchors its grid.
type GridAlignment string

const (
	AlignCenter GridAlignment = "CENTER"
	AlignCorner GridAlignment = "CORNER"
)

// AllocationMode selects how ZONE_RING_N distributes quota across rings.
type AllocationMode string

const (
	AllocAreaProportional AllocationMode = "AREA_PROPORTIONAL"
	AllocUniform          AllocationMode = "UNIFORM"
	AllocEdgeHeavy        AllocationMode = "EDGE_HEAVY"
)

// AdvancedConfig is the closed set of per-strategy configuration variants.
// Exactly one variant exists per strategy identifier; the configuration
// validator produces the variant matching the dispatched strategy, so
// engines may type-assert their own variant without checking.
type AdvancedConfig interface {
	advancedConfig()
}

// CenterEdgeConfig configures the CENTER_EDGE strategy.
type CenterEdgeConfig struct {
	CenterWeight  float64       `json:"center_weight" yaml:"center_weight" validate:"gte=0,lte=1"`
	RingCount     int           `json:"ring_count" yaml:"ring_count" validate:"gte=2,lte=5"`
	RadialSpacing RadialSpacing `json:"radial_spacing" yaml:"radial_spacing" validate:"oneof=UNIFORM EXPONENTIAL"`
}

func (CenterEdgeConfig) advancedConfig() {}

// GridUniformConfig configures the GRID_UNIFORM strategy.
type GridUniformConfig struct {
	// GridPitchMM is the grid spacing. Nil auto-derives a pitch from the
	// resolved target count.
	GridPitchMM   *float64      `json:"grid_pitch_mm,omitempty" yaml:"grid_pitch_mm,omitempty" validate:"omitempty,gt=0"`
	JitterRatio   float64       `json:"jitter_ratio" yaml:"jitter_ratio" validate:"gte=0,lte=0.3"`
	GridAlignment GridAlignment `json:"grid_alignment" yaml:"grid_alignment" validate:"oneof=CENTER CORNER"`
}

func (GridUniformConfig) advancedConfig() {}

// EdgeOnlyConfig configures the EDGE_ONLY strategy.
type EdgeOnlyConfig struct {
	EdgeBandWidthMM   float64 `json:"edge_band_width_mm" yaml:"edge_band_width_mm" validate:"gte=5,lte=50"`
	AngularSpacingDeg float64 `json:"angular_spacing_deg" yaml:"angular_spacing_deg" validate:"gte=15,lte=90"`
	PrioritizeCorners bool    `json:"prioritize_corners" yaml:"prioritize_corners"`
}

func (EdgeOnlyConfig) advancedConfig() {}

// ZoneRingConfig configures the ZONE_RING_N strategy.
type ZoneRingConfig struct {
	NumRings       int            `json:"num_rings" yaml:"num_rings" validate:"gte=2,lte=10"`
	AllocationMode AllocationMode `json:"allocation_mode" yaml:"allocation_mode" validate:"oneof=AREA_PROPORTIONAL UNIFORM EDGE_HEAVY"`
}

func (ZoneRingConfig) advancedConfig() {}

// StrategyConfig is a fully validated configuration: common fields plus the
// advanced variant matching the dispatched strategy. Engines receive only
// values that already passed the configuration validator.
type StrategyConfig struct {
	Common   CommonConfig
	Advanced AdvancedConfig
}

// defaultAdvanced returns the advanced variant defaults for a strategy.
// The per-field defaults mirror the catalog's published schema.
func defaultAdvanced(strategyID string) (AdvancedConfig, bool) {
	switch strategyID {
	case StrategyCenterEdge:
		return CenterEdgeConfig{CenterWeight: 0.2, RingCount: 3, RadialSpacing: SpacingUniform}, true
	case StrategyGridUniform:
		return GridUniformConfig{JitterRatio: 0, GridAlignment: AlignCenter}, true
	case StrategyEdgeOnly:
		return EdgeOnlyConfig{EdgeBandWidthMM: 10, AngularSpacingDeg: 45, PrioritizeCorners: true}, true
	case StrategyZoneRingN:
		return ZoneRingConfig{NumRings: 3, AllocationMode: AllocAreaProportional}, true
	default:
		return nil, false
	}
}
