package sampling

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RawStrategyConfig is the wire shape of a strategy configuration before
// validation: optional common fields plus an untyped advanced payload keyed
// by the strategy identifier's schema.
type RawStrategyConfig struct {
	Common   *CommonConfig  `json:"common,omitempty" yaml:"common,omitempty"`
	Advanced map[string]any `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// validate is the shared struct validator. Field names in rejection
// messages come from json tags so they match the wire shape.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateConfig runs the configuration-validation gate for one strategy:
// range checks on common fields, strict structural validation of the
// advanced payload against the strategy's schema (unknown fields rejected,
// defaults filled), and cross-field business rules against the wafer spec.
// It runs strictly before any engine executes; on success the returned
// StrategyConfig is well-typed and in-range.
func ValidateConfig(strategyID string, raw RawStrategyConfig, wafer WaferMapSpec) (StrategyConfig, error) {
	common := CommonConfig{}
	if raw.Common != nil {
		common = *raw.Common
	}
	if err := validate.Struct(common); err != nil {
		return StrategyConfig{}, configErrorFrom(err)
	}
	if common.EdgeExclusionMM >= wafer.Radius() && wafer.Radius() > 0 {
		return StrategyConfig{}, NewConfigError("edge_exclusion_mm",
			"must be less than the wafer radius")
	}

	advanced, err := parseAdvanced(strategyID, raw.Advanced)
	if err != nil {
		return StrategyConfig{}, err
	}
	if err := validate.Struct(advanced); err != nil {
		return StrategyConfig{}, configErrorFrom(err)
	}
	if err := checkCrossFieldRules(common, advanced, wafer); err != nil {
		return StrategyConfig{}, err
	}

	return StrategyConfig{Common: common, Advanced: advanced}, nil
}

// parseAdvanced strict-decodes the raw advanced payload onto the strategy's
// default variant. Unknown fields and type mismatches are rejected.
func parseAdvanced(strategyID string, raw map[string]any) (AdvancedConfig, error) {
	defaults, ok := defaultAdvanced(strategyID)
	if !ok {
		return nil, NewValidationError(CodeDisallowedStrategy,
			"unknown strategy %q", strategyID)
	}
	if len(raw) == 0 {
		return defaults, nil
	}

	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, NewInternalError("re-encode advanced config: %v", err)
	}

	decode := func(dst any) error {
		dec := json.NewDecoder(bytes.NewReader(payload))
		dec.DisallowUnknownFields()
		return dec.Decode(dst)
	}

	switch v := defaults.(type) {
	case CenterEdgeConfig:
		if err := decode(&v); err != nil {
			return nil, NewConfigError("advanced", decodeReason(strategyID, err))
		}
		return v, nil
	case GridUniformConfig:
		if err := decode(&v); err != nil {
			return nil, NewConfigError("advanced", decodeReason(strategyID, err))
		}
		return v, nil
	case EdgeOnlyConfig:
		if err := decode(&v); err != nil {
			return nil, NewConfigError("advanced", decodeReason(strategyID, err))
		}
		return v, nil
	case ZoneRingConfig:
		if err := decode(&v); err != nil {
			return nil, NewConfigError("advanced", decodeReason(strategyID, err))
		}
		return v, nil
	default:
		return nil, NewInternalError("no decoder for strategy %q", strategyID)
	}
}

func decodeReason(strategyID string, err error) string {
	return "does not match the " + strategyID + " schema: " + err.Error()
}

// checkCrossFieldRules enforces rules spanning common, advanced, and wafer
// geometry that single-field tags cannot express.
func checkCrossFieldRules(common CommonConfig, advanced AdvancedConfig, wafer WaferMapSpec) error {
	switch cfg := advanced.(type) {
	case GridUniformConfig:
		if cfg.JitterRatio > 0 && common.DeterministicSeed == nil {
			return NewConfigError("jitter_ratio",
				"requires deterministic_seed when greater than zero")
		}
		if cfg.GridPitchMM != nil && *cfg.GridPitchMM > wafer.Radius() && wafer.Radius() > 0 {
			return NewConfigError("grid_pitch_mm",
				"must not exceed the wafer radius")
		}
	case EdgeOnlyConfig:
		if cfg.EdgeBandWidthMM >= wafer.Radius() && wafer.Radius() > 0 {
			return NewConfigError("edge_band_width_mm",
				"must be less than the wafer radius")
		}
	}
	return nil
}

// configErrorFrom converts a validator rejection into the pipeline's
// INVALID_STRATEGY_CONFIG error, reporting the first offending field.
func configErrorFrom(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return NewConfigError(fe.Field(), rangeReason(fe))
	}
	return NewConfigError("", err.Error())
}

func rangeReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// ValidateContext rejects malformed wafer/process/tool documents before any
// engine runs.
func ValidateContext(wafer WaferMapSpec, process ProcessContext, tool ToolProfile) error {
	if wafer.WaferSizeMM <= 0 {
		return NewValidationError(CodeValidation, "wafer_size_mm must be positive, got %v", wafer.WaferSizeMM)
	}
	if wafer.DiePitchXMM <= 0 || wafer.DiePitchYMM <= 0 {
		return NewValidationError(CodeValidation,
			"die_pitch_x_mm and die_pitch_y_mm must be positive, got (%v, %v)",
			wafer.DiePitchXMM, wafer.DiePitchYMM)
	}
	if process.MinSamplingPoints < 0 {
		return NewValidationError(CodeValidation,
			"min_sampling_points must be non-negative, got %d", process.MinSamplingPoints)
	}
	if process.MaxSamplingPoints < process.MinSamplingPoints {
		return NewValidationError(CodeValidation,
			"max_sampling_points (%d) must be >= min_sampling_points (%d)",
			process.MaxSamplingPoints, process.MinSamplingPoints)
	}
	if tool.MaxPointsPerWafer < 1 {
		return NewValidationError(CodeValidation,
			"tool max_points_per_wafer must be at least 1, got %d", tool.MaxPointsPerWafer)
	}
	return nil
}
