package sampling

import "testing"

func TestClassify_PolicyTable(t *testing.T) {
	blocking := []Condition{
		CondStrategyNotAllowed,
		CondInvalidStrategyConfig,
		CondBelowMinimumAfterMasking,
		CondCoordinateSystemMismatch,
	}
	warning := []Condition{
		CondAboveEffectiveMaximum,
		CondNoEdgeCoverageHighRisk,
		CondPointCountNearCeiling,
	}

	for _, c := range blocking {
		if !IsBlocking(c) {
			t.Errorf("Classify(%s): want blocking", c)
		}
	}
	for _, c := range warning {
		if IsBlocking(c) {
			t.Errorf("Classify(%s): want warning", c)
		}
	}
}

func TestClassify_UnknownConditionIsBlocking(t *testing.T) {
	if !IsBlocking(Condition("never_registered")) {
		t.Error("unknown conditions must classify as blocking")
	}
}
