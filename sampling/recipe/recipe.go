// Package recipe translates a sampling plan into a tool-consumable recipe.
// Translation converts die coordinates to the tool's coordinate convention,
// filters points that fall outside the physical wafer, and truncates to the
// tool's point capacity. It never reorders: measurement order is exactly the
// plan's order, minus dropped points.
package recipe

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yschiang/sampling-wizard/sampling"
	"github.com/yschiang/sampling-wizard/sampling/score"
)

// TranslatorVersion identifies the translation rules in effect.
const TranslatorVersion = "1.0"

// recipeNamespace seeds deterministic recipe identifiers. Fixed forever:
// the same plan against the same tool must yield the same recipe ID.
var recipeNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// PayloadPoint is one measurement site in the recipe payload. XMM and YMM
// are physical positions in the wafer's declared origin convention.
type PayloadPoint struct {
	PointID int     `json:"point_id" yaml:"point_id"`
	XMM     float64 `json:"x_mm" yaml:"x_mm"`
	YMM     float64 `json:"y_mm" yaml:"y_mm"`
	DieX    int     `json:"die_x" yaml:"die_x"`
	DieY    int     `json:"die_y" yaml:"die_y"`
}

// Payload is the tool-facing body of the recipe.
type Payload struct {
	WaferSizeMM      float64                   `json:"wafer_size_mm" yaml:"wafer_size_mm"`
	CoordinateSystem sampling.CoordinateSystem `json:"coordinate_system" yaml:"coordinate_system"`
	Origin           sampling.Origin           `json:"origin" yaml:"origin"`
	Points           []PayloadPoint            `json:"points" yaml:"points"`
}

// TruncationNote records a capacity truncation applied during translation.
type TruncationNote struct {
	Reason       string `json:"reason" yaml:"reason"`
	DroppedCount int    `json:"dropped_count" yaml:"dropped_count"`
	KeptCount    int    `json:"kept_count" yaml:"kept_count"`
}

// ToolRecipe is the complete translation result.
type ToolRecipe struct {
	RecipeID      string                `json:"recipe_id" yaml:"recipe_id"`
	ToolType      string                `json:"tool_type" yaml:"tool_type"`
	StrategyID    string                `json:"sampling_strategy_id" yaml:"sampling_strategy_id"`
	Payload       Payload               `json:"payload" yaml:"payload"`
	Truncation    *TruncationNote       `json:"truncation,omitempty" yaml:"truncation,omitempty"`
	Notes         []string              `json:"notes,omitempty" yaml:"notes,omitempty"`
	Format        sampling.RecipeFormat `json:"format" yaml:"format"`
	TranslatorVer string                `json:"translator_version" yaml:"translator_version"`
}

// Translate builds a tool recipe from a sampling plan. The plan is taken by
// value and never mutated. A non-nil report attaches the plan's evaluated
// score to the recipe notes; it never influences which points are kept.
// Returned warnings are advisory; a non-nil error means no recipe could be
// produced.
func Translate(wafer sampling.WaferMapSpec, tool sampling.ToolProfile,
	output sampling.SamplingOutput, report *score.Report) (ToolRecipe, []sampling.Warning, error) {

	if !tool.SupportsCoordinateSystem(wafer.CoordinateSystem) {
		return ToolRecipe{}, nil, sampling.NewValidationError(
			sampling.CodeUnsupportedCoordinateSystem,
			"tool %s does not support coordinate system %s",
			tool.ToolType, wafer.CoordinateSystem)
	}

	var warnings []sampling.Warning
	var notes []string
	if report != nil {
		notes = append(notes, fmt.Sprintf("plan scored %.2f by evaluator %s",
			report.OverallScore, report.EvaluatorVersion))
	}
	// Edge-die capability needs no filtering here: selection already confines
	// points to the wafer's valid-die mask. Record the limitation so recipe
	// consumers can audit it.
	if !tool.EdgeDieSupported {
		notes = append(notes, "tool does not support edge dies; selection already respects the wafer's edge exclusion")
	}

	kept, dropped := boundaryFilter(wafer, output.SelectedPoints)
	if dropped > 0 {
		warnings = append(warnings, sampling.NewWarning(sampling.WarnBoundaryPointsFiltered,
			"%d points outside the physical wafer were removed", dropped))
		notes = append(notes, fmt.Sprintf("removed %d out-of-bounds points", dropped))
	}

	var truncation *TruncationNote
	if tool.MaxPointsPerWafer > 0 && len(kept) > tool.MaxPointsPerWafer {
		droppedCount := len(kept) - tool.MaxPointsPerWafer
		kept = kept[:tool.MaxPointsPerWafer]
		truncation = &TruncationNote{
			Reason:       "tool point capacity exceeded",
			DroppedCount: droppedCount,
			KeptCount:    len(kept),
		}
		warnings = append(warnings, sampling.NewWarning(sampling.WarnPointsTruncated,
			"plan truncated from %d to %d points for tool capacity",
			len(kept)+droppedCount, len(kept)))
	}

	recipe := ToolRecipe{
		ToolType:   tool.ToolType,
		StrategyID: output.StrategyID,
		Payload: Payload{
			WaferSizeMM:      wafer.WaferSizeMM,
			CoordinateSystem: wafer.CoordinateSystem,
			Origin:           wafer.Origin,
			Points:           payloadPoints(wafer, kept),
		},
		Truncation:    truncation,
		Notes:         notes,
		Format:        tool.RecipeFormat,
		TranslatorVer: TranslatorVersion,
	}
	recipe.RecipeID = recipeID(recipe)
	return recipe, warnings, nil
}

// boundaryFilter removes points whose physical center lies outside the wafer
// radius, preserving order. Returns the kept points and the dropped count.
func boundaryFilter(wafer sampling.WaferMapSpec, points []sampling.DiePoint) ([]sampling.DiePoint, int) {
	kept := make([]sampling.DiePoint, 0, len(points))
	for _, p := range points {
		if sampling.RadialDistance(p, wafer) <= wafer.Radius() {
			kept = append(kept, p)
		}
	}
	return kept, len(points) - len(kept)
}

// payloadPoints converts die coordinates to physical positions in the
// wafer's origin convention. BOTTOM_LEFT shifts center-relative positions
// by the wafer radius on both axes.
func payloadPoints(wafer sampling.WaferMapSpec, points []sampling.DiePoint) []PayloadPoint {
	shift := 0.0
	if wafer.Origin == sampling.OriginBottomLeft {
		shift = wafer.Radius()
	}
	payload := make([]PayloadPoint, 0, len(points))
	for i, p := range points {
		x, y := sampling.PhysicalPosition(p, wafer)
		payload = append(payload, PayloadPoint{
			PointID: i + 1,
			XMM:     x + shift,
			YMM:     y + shift,
			DieX:    p.DieX,
			DieY:    p.DieY,
		})
	}
	return payload
}

// recipeID derives a stable identifier from the recipe content. Timestamps
// and other wall-clock inputs never feed the hash.
func recipeID(recipe ToolRecipe) string {
	content := fmt.Sprintf("%s|%s|%s|%s|%s",
		recipe.ToolType, recipe.StrategyID,
		recipe.Format.Type, recipe.Format.Version,
		pointKey(recipe.Payload.Points))
	return uuid.NewSHA1(recipeNamespace, []byte(content)).String()
}

func pointKey(points []PayloadPoint) string {
	key := make([]byte, 0, len(points)*16)
	for _, p := range points {
		key = fmt.Appendf(key, "(%d,%d)", p.DieX, p.DieY)
	}
	return string(key)
}
