package sampling

import "time"

// DiePoint addresses a discrete die position on the wafer grid.
type DiePoint struct {
	DieX int `json:"die_x" yaml:"die_x"`
	DieY int `json:"die_y" yaml:"die_y"`
}

// MaskType selects how WaferMapSpec declares its valid-die mask.
type MaskType string

const (
	// MaskEdgeExclusion limits valid dies to a maximum radius from center.
	MaskEdgeExclusion MaskType = "EDGE_EXCLUSION"
	// MaskExplicitList limits valid dies to an explicit allow-list.
	MaskExplicitList MaskType = "EXPLICIT_LIST"
)

// ValidDieMask defines the subset of die positions eligible for selection.
// Exactly one of RadiusMM (EDGE_EXCLUSION) or ValidDies (EXPLICIT_LIST) is
// meaningful depending on Type. An unrecognized Type is permissive: all
// candidates pass (matches the upstream catalog contract).
type ValidDieMask struct {
	Type      MaskType   `json:"type" yaml:"type"`
	RadiusMM  float64    `json:"radius_mm,omitempty" yaml:"radius_mm,omitempty"`
	ValidDies []DiePoint `json:"valid_die_list,omitempty" yaml:"valid_die_list,omitempty"`
}

// Origin declares where physical coordinate (0,0) sits on the wafer.
type Origin string

const (
	OriginCenter     Origin = "CENTER"
	OriginBottomLeft Origin = "BOTTOM_LEFT"
)

// CoordinateSystem identifies a coordinate convention a tool can consume.
type CoordinateSystem string

const (
	CoordDieGrid CoordinateSystem = "DIE_GRID"
	CoordMM      CoordinateSystem = "MM"
	CoordShot    CoordinateSystem = "SHOT"
)

// WaferMapSpec describes the wafer grid a selection runs against.
// Supplied per request and never mutated by any stage.
type WaferMapSpec struct {
	WaferSizeMM         float64          `json:"wafer_size_mm" yaml:"wafer_size_mm"`
	DiePitchXMM         float64          `json:"die_pitch_x_mm" yaml:"die_pitch_x_mm"`
	DiePitchYMM         float64          `json:"die_pitch_y_mm" yaml:"die_pitch_y_mm"`
	Origin              Origin           `json:"origin" yaml:"origin"`
	NotchOrientationDeg float64          `json:"notch_orientation_deg" yaml:"notch_orientation_deg"`
	CoordinateSystem    CoordinateSystem `json:"coordinate_system" yaml:"coordinate_system"`
	ValidDieMask        ValidDieMask     `json:"valid_die_mask" yaml:"valid_die_mask"`
	Version             string           `json:"version" yaml:"version"`
}

// Radius returns the wafer radius in mm.
func (w WaferMapSpec) Radius() float64 {
	return w.WaferSizeMM / 2
}

// Criticality classifies process risk. HIGH tightens scoring expectations on
// edge coverage.
type Criticality string

const (
	CriticalityHigh   Criticality = "HIGH"
	CriticalityMedium Criticality = "MEDIUM"
	CriticalityLow    Criticality = "LOW"
)

// ProcessContext carries the process-side sampling limits resolved by the
// upstream catalog. Immutable per request.
type ProcessContext struct {
	ProcessStep       string      `json:"process_step" yaml:"process_step"`
	MeasurementIntent string      `json:"measurement_intent" yaml:"measurement_intent"`
	Criticality       Criticality `json:"criticality" yaml:"criticality"`
	MinSamplingPoints int         `json:"min_sampling_points" yaml:"min_sampling_points"`
	MaxSamplingPoints int         `json:"max_sampling_points" yaml:"max_sampling_points"`
	AllowedStrategies []string    `json:"allowed_strategy_set" yaml:"allowed_strategy_set"`
	Version           string      `json:"version" yaml:"version"`
}

// StrategyAllowed reports whether the given strategy identifier is in the
// allowed set. An empty set allows every registered strategy.
func (p ProcessContext) StrategyAllowed(id string) bool {
	if len(p.AllowedStrategies) == 0 {
		return true
	}
	for _, allowed := range p.AllowedStrategies {
		if allowed == id {
			return true
		}
	}
	return false
}

// RecipeFormat identifies the tool's recipe file format.
type RecipeFormat struct {
	Type    string `json:"type" yaml:"type"`
	Version string `json:"version" yaml:"version"`
}

// ToolProfile describes the capabilities of the measurement tool a recipe
// targets. Immutable per request.
type ToolProfile struct {
	ToolType          string             `json:"tool_type" yaml:"tool_type"`
	Vendor            string             `json:"vendor" yaml:"vendor"`
	Model             string             `json:"model,omitempty" yaml:"model,omitempty"`
	CoordinateSystems []CoordinateSystem `json:"coordinate_system_supported" yaml:"coordinate_system_supported"`
	MaxPointsPerWafer int                `json:"max_points_per_wafer" yaml:"max_points_per_wafer"`
	EdgeDieSupported  bool               `json:"edge_die_supported" yaml:"edge_die_supported"`
	OrderingRequired  bool               `json:"ordering_required" yaml:"ordering_required"`
	RecipeFormat      RecipeFormat       `json:"recipe_format" yaml:"recipe_format"`
	Version           string             `json:"version" yaml:"version"`
}

// SupportsCoordinateSystem reports whether the tool accepts cs.
func (t ToolProfile) SupportsCoordinateSystem(cs CoordinateSystem) bool {
	for _, supported := range t.CoordinateSystems {
		if supported == cs {
			return true
		}
	}
	return false
}

// Trace is informational provenance metadata on a SamplingOutput.
// GeneratedAt is wall-clock and excluded from determinism and equality
// checks; StrategyVersion is stable per engine release.
type Trace struct {
	StrategyVersion string `json:"strategy_version" yaml:"strategy_version"`
	GeneratedAt     string `json:"generated_at" yaml:"generated_at"`
}

// SamplingOutput is the result of one selection call: the strategy that ran
// and its ordered sequence of unique die coordinates. Produced once and
// never mutated afterward; downstream stages treat it as read-only.
type SamplingOutput struct {
	StrategyID     string     `json:"sampling_strategy_id" yaml:"sampling_strategy_id"`
	SelectedPoints []DiePoint `json:"selected_points" yaml:"selected_points"`
	Trace          Trace      `json:"trace" yaml:"trace"`
}

// timestampFunc produces trace timestamps. Overridable in tests; never read
// by any selection, scoring, or translation decision.
var timestampFunc = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewTrace builds trace metadata for an engine version.
func NewTrace(strategyVersion string) Trace {
	return Trace{StrategyVersion: strategyVersion, GeneratedAt: timestampFunc()}
}
