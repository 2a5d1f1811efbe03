package budget

import (
	"strings"
	"testing"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Tier
	}{
		{0.0, TierVerySafe},
		{0.349999, TierVerySafe},
		{0.35, TierSafe}, // lower edge inclusive
		{0.499999, TierSafe},
		{0.50, TierCaution},
		{0.65, TierElevated},
		{0.80, TierWarning},
		{0.899999, TierWarning},
		{0.90, TierNearLimit},
		{0.95, TierCritical},
		{0.999999, TierCritical},
		{1.0, TierOverMild},
		{1.099999, TierOverMild},
		{1.10, TierOverModerate},
		{1.249999, TierOverModerate},
		{1.25, TierOverSevere},
		{5.0, TierOverSevere},
	}

	for _, tt := range tests {
		if got := TierFor(tt.ratio); got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestEvaluateUnset(t *testing.T) {
	for _, limit := range []int64{0, -100} {
		status := Evaluate(2500, limit)
		if status.Set {
			t.Errorf("limit %d: expected unset status", limit)
		}
		if status.PercentLabel != "—" {
			t.Errorf("limit %d: expected sentinel percent label, got %q", limit, status.PercentLabel)
		}
		if status.Message != UnsetMessage {
			t.Errorf("limit %d: expected set-a-budget prompt, got %q", limit, status.Message)
		}
		if status.Tier != "" {
			t.Errorf("limit %d: expected no tier, got %s", limit, status.Tier)
		}
	}
}

func TestEvaluateOverMildScenario(t *testing.T) {
	// limit 600.00, expenses 120.00 + 80.00 + 450.50 = 650.50
	status := Evaluate(65050, 60000)

	if !status.Set {
		t.Fatal("expected status to be set")
	}
	if status.Tier != TierOverMild {
		t.Errorf("expected over-mild, got %s", status.Tier)
	}
	if status.OverByCents != 5050 {
		t.Errorf("expected overBy 5050, got %d", status.OverByCents)
	}
	if status.RemainingCents != 0 {
		t.Errorf("expected remaining 0, got %d", status.RemainingCents)
	}
	if status.Ratio < 1.084 || status.Ratio > 1.085 {
		t.Errorf("expected ratio ~1.0842, got %v", status.Ratio)
	}
	if !strings.Contains(status.Message, "$50.50") {
		t.Errorf("expected message to carry the overage, got %q", status.Message)
	}
}

func TestEvaluateRemainingOverByExclusive(t *testing.T) {
	t.Run("under_limit", func(t *testing.T) {
		status := Evaluate(40000, 60000)
		if status.RemainingCents != 20000 || status.OverByCents != 0 {
			t.Errorf("expected remaining 20000 / overBy 0, got %d / %d",
				status.RemainingCents, status.OverByCents)
		}
	})

	t.Run("at_limit_both_zero", func(t *testing.T) {
		status := Evaluate(60000, 60000)
		if status.RemainingCents != 0 || status.OverByCents != 0 {
			t.Errorf("expected both zero at the limit, got %d / %d",
				status.RemainingCents, status.OverByCents)
		}
		if status.Tier != TierOverMild {
			t.Errorf("ratio 1.0 belongs to over-mild, got %s", status.Tier)
		}
	})

	t.Run("over_limit", func(t *testing.T) {
		status := Evaluate(70000, 60000)
		if status.RemainingCents != 0 || status.OverByCents != 10000 {
			t.Errorf("expected remaining 0 / overBy 10000, got %d / %d",
				status.RemainingCents, status.OverByCents)
		}
	})
}

func TestEvaluatePercentDisplay(t *testing.T) {
	t.Run("bar_clamped_to_100", func(t *testing.T) {
		status := Evaluate(90000, 60000) // 150%
		if status.BarPercent != 100 {
			t.Errorf("expected bar clamped to 100, got %d", status.BarPercent)
		}
		if status.PercentLabel != "150%" {
			t.Errorf("expected label 150%%, got %s", status.PercentLabel)
		}
	})

	t.Run("label_capped_at_999", func(t *testing.T) {
		status := Evaluate(1000000, 100) // 1000000%
		if status.PercentLabel != "999%" {
			t.Errorf("expected label capped at 999%%, got %s", status.PercentLabel)
		}
	})

	t.Run("zero_spend", func(t *testing.T) {
		status := Evaluate(0, 60000)
		if status.BarPercent != 0 || status.PercentLabel != "0%" {
			t.Errorf("expected 0%% everywhere, got %d / %s", status.BarPercent, status.PercentLabel)
		}
		if status.Tier != TierVerySafe {
			t.Errorf("expected very-safe, got %s", status.Tier)
		}
	})
}
