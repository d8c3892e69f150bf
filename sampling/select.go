package sampling

// SelectResult is the successful outcome of the Select operation: the
// engine's output plus any non-blocking warnings the caller-facing layer
// attached. Warnings never alter the output sequence.
type SelectResult struct {
	Output   SamplingOutput `json:"sampling_output"`
	Warnings []Warning      `json:"warnings"`
}

// Select runs the full selection stage: context validation, registry
// dispatch gated by the process allow-list, configuration validation, and
// the engine itself. Non-blocking conditions (deterministic truncation,
// reduced coverage) are reported here as warnings rather than embedded by
// the engine.
func Select(wafer WaferMapSpec, process ProcessContext, tool ToolProfile,
	strategyID string, raw RawStrategyConfig) (*SelectResult, error) {

	if err := ValidateContext(wafer, process, tool); err != nil {
		return nil, err
	}

	engine, ok := Lookup(strategyID)
	if !ok {
		return nil, NewValidationError(CodeDisallowedStrategy,
			"strategy %q is not registered; available: %v", strategyID, StrategyIDs())
	}
	if !process.StrategyAllowed(strategyID) {
		return nil, NewValidationError(CodeDisallowedStrategy,
			"strategy %q is not allowed for this process context; allowed: %v",
			strategyID, process.AllowedStrategies)
	}

	cfg, err := ValidateConfig(strategyID, raw, wafer)
	if err != nil {
		return nil, err
	}

	output, stats, err := engine.Select(wafer, process, tool, cfg)
	if err != nil {
		if _, classified := AsError(err); classified {
			return nil, err
		}
		return nil, NewInternalError("strategy %s: %v", strategyID, err)
	}

	return &SelectResult{
		Output:   output,
		Warnings: selectionWarnings(output, stats),
	}, nil
}

// selectionWarnings derives the caller-facing warnings from engine stats,
// honoring the shared classification table.
func selectionWarnings(output SamplingOutput, stats SelectionStats) []Warning {
	warnings := []Warning{}

	if stats.ValidCandidates > stats.TargetCount && !IsBlocking(CondAboveEffectiveMaximum) {
		warnings = append(warnings, NewWarning(WarnPointsTruncated,
			"%d valid candidates exceeded the effective target of %d; selection truncated deterministically",
			stats.ValidCandidates, stats.TargetCount))
	}
	if len(output.SelectedPoints) < stats.TargetCount {
		warnings = append(warnings, NewWarning(WarnReducedCoverage,
			"selected %d of %d targeted points; fewer valid dies remained after masking",
			len(output.SelectedPoints), stats.TargetCount))
	}
	return warnings
}
