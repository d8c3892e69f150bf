// Package strategy implements the built-in selection engines and registers
// them into the sampling registry via init(). Production code imports this
// package directly (cmd/, server/); test code in other packages uses a
// blank import to trigger registration.
//
// Every engine is pure and deterministic. The shared candidate pipeline
// (generate → mask → edge exclusion) lives in common.go; per-engine
// geometry lives in the engine files. Output sequences use the canonical
// ordering except EDGE_ONLY, which documents an edge-first ordering.
package strategy
