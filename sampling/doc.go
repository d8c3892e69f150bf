// Package sampling provides the core wafer sampling-plan engine.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - types.go: the immutable request documents (WaferMapSpec, ProcessContext,
//     ToolProfile) and the SamplingOutput produced by selection
//   - select.go: the Select operation — registry dispatch, constraint
//     resolution, and caller-facing warnings
//   - geometry.go: the deterministic geometry helpers every engine shares
//     (mask filtering, edge exclusion, rotation, canonical ordering)
//
// # Architecture
//
// The sampling package defines the Strategy interface and owns the registry;
// implementations live in sub-packages:
//   - sampling/strategy/: the selection engines (CENTER_EDGE, GRID_UNIFORM,
//     EDGE_ONLY, ZONE_RING_N), registered via init()
//   - sampling/score/: read-only quality evaluation of a SamplingOutput
//   - sampling/recipe/: translation into tool-executable recipes
//
// The pipeline is purely functional: every operation is a deterministic
// function over its explicit inputs. No stage reads wall-clock time, random
// sources, or map iteration order to influence its result; the trace
// timestamp on SamplingOutput is informational only and excluded from
// equality and determinism checks.
//
// Failure conditions are classified once, in classify.go: a condition is
// either blocking (the operation returns a *Error and no result) or a
// non-blocking Warning attached to an otherwise successful result. The
// evaluation stage never influences selection, and no stage mutates a prior
// stage's output; the only permitted reduction after selection is the
// deterministic truncation performed by sampling/recipe, which is recorded
// in translation notes.
package sampling
