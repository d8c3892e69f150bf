package sampling

import "fmt"

// WarningCode identifies a non-blocking condition attached to a successful
// result. Warnings never change success/failure status.
type WarningCode string

const (
	// WarnPointsTruncated reports deterministic truncation of excess points
	// against the effective maximum (selection) or tool capacity (translation).
	WarnPointsTruncated WarningCode = "POINTS_TRUNCATED_TO_MAX"
	// WarnReducedCoverage reports that fewer valid dies than the resolved
	// target remained after masking; the selection still met the minimum.
	WarnReducedCoverage WarningCode = "REDUCED_COVERAGE"
	// WarnHighCriticalityNoEdge reports a HIGH criticality process whose
	// selection has no point in the outermost ring.
	WarnHighCriticalityNoEdge WarningCode = "HIGH_CRITICALITY_NO_EDGE_COVERAGE"
	// WarnPointCountNearLimit reports a point count within the configured
	// margin of the tool/process ceiling.
	WarnPointCountNearLimit WarningCode = "POINT_COUNT_NEAR_LIMIT"
	// WarnPoorSpatialCoverage reports a coverage score below 0.5.
	WarnPoorSpatialCoverage WarningCode = "POOR_SPATIAL_COVERAGE"
	// WarnOverallQualityLow reports an overall score below 0.6.
	WarnOverallQualityLow WarningCode = "OVERALL_SAMPLING_QUALITY_LOW"
	// WarnBoundaryPointsFiltered reports points dropped during translation
	// because they fell outside the wafer boundary.
	WarnBoundaryPointsFiltered WarningCode = "BOUNDARY_POINTS_FILTERED"
)

// Warning is a non-blocking condition embedded in a successful result.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// NewWarning builds a Warning with a formatted message.
func NewWarning(code WarningCode, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}
