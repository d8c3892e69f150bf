package sampling

// Condition enumerates the failure conditions shared across the three
// pipeline stages. Every stage consults the same policy table so that a
// condition is never a warning in one stage and an error in another.
type Condition string

const (
	CondStrategyNotAllowed       Condition = "strategy_not_allowed"
	CondInvalidStrategyConfig    Condition = "invalid_strategy_config"
	CondBelowMinimumAfterMasking Condition = "below_minimum_after_masking"
	CondAboveEffectiveMaximum    Condition = "above_effective_maximum"
	CondCoordinateSystemMismatch Condition = "coordinate_system_mismatch"
	CondNoEdgeCoverageHighRisk   Condition = "no_edge_coverage_high_criticality"
	CondPointCountNearCeiling    Condition = "point_count_near_ceiling"
)

// Severity is the classification of a Condition.
type Severity int

const (
	// SeverityWarning conditions attach a Warning to a successful result.
	SeverityWarning Severity = iota
	// SeverityBlocking conditions fail the operation with no result.
	SeverityBlocking
)

// policy is the shared classification table. It is fixed at compile time;
// changing a row is a contract change for all three stages.
var policy = map[Condition]Severity{
	CondStrategyNotAllowed:       SeverityBlocking,
	CondInvalidStrategyConfig:    SeverityBlocking,
	CondBelowMinimumAfterMasking: SeverityBlocking,
	CondAboveEffectiveMaximum:    SeverityWarning,
	CondCoordinateSystemMismatch: SeverityBlocking,
	CondNoEdgeCoverageHighRisk:   SeverityWarning,
	CondPointCountNearCeiling:    SeverityWarning,
}

// Classify returns the severity of a condition. Unknown conditions are
// blocking: a stage that invents a condition without registering it here
// must not silently downgrade it.
func Classify(c Condition) Severity {
	sev, ok := policy[c]
	if !ok {
		return SeverityBlocking
	}
	return sev
}

// IsBlocking is shorthand for Classify(c) == SeverityBlocking.
func IsBlocking(c Condition) bool {
	return Classify(c) == SeverityBlocking
}
