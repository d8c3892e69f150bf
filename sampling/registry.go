package sampling

import (
	"fmt"
	"sort"
)

// Strategy identifiers for the built-in selection engines.
const (
	StrategyCenterEdge  = "CENTER_EDGE"
	StrategyGridUniform = "GRID_UNIFORM"
	StrategyEdgeOnly    = "EDGE_ONLY"
	StrategyZoneRingN   = "ZONE_RING_N"
)

// SelectionStats carries engine-side counts the caller-facing layer turns
// into warnings. Engines report facts; classification happens in Select.
type SelectionStats struct {
	// ValidCandidates is the number of valid dies remaining after masking
	// and edge exclusion.
	ValidCandidates int
	// TargetCount is the resolved effective point target.
	TargetCount int
}

// Strategy is the contract every selection engine implements. Select must
// be pure and deterministic: identical inputs always produce an identical
// ordered point sequence (trace timestamp excluded). The advanced config
// variant matches the engine's identifier; the configuration validator
// guarantees it is well-typed and in-range.
type Strategy interface {
	ID() string
	Version() string
	Select(wafer WaferMapSpec, process ProcessContext, tool ToolProfile, cfg StrategyConfig) (SamplingOutput, SelectionStats, error)
}

// registry maps strategy identifiers to engines. It is populated by
// Register during init (sampling/strategy's register.go) and read-only
// afterward, so dispatch needs no locking.
var registry = map[string]Strategy{}

// Register adds an engine to the registry. It panics on duplicate
// identifiers; registration happens only at init time.
func Register(s Strategy) {
	if _, dup := registry[s.ID()]; dup {
		panic(fmt.Sprintf("sampling: strategy %q registered twice", s.ID()))
	}
	registry[s.ID()] = s
}

// Lookup returns the engine registered under id.
func Lookup(id string) (Strategy, bool) {
	s, ok := registry[id]
	return s, ok
}

// StrategyIDs returns all registered identifiers in sorted order.
func StrategyIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
