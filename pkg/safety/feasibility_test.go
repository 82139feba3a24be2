package safety

import "testing"

func TestGetAgeFeasibilityBands(t *testing.T) {
	tests := []struct {
		age          int
		wantStrength int
		wantElevated bool
	}{
		{0, 1, false},
		{2, 1, false},
		{3, 2, false},
		{4, 2, false},
		{5, 3, true},
		{7, 3, true},
		{8, 4, true},
		{12, 4, true},
	}

	for _, tt := range tests {
		feas := GetAgeFeasibility(tt.age)
		if feas.MaxStrengthDemand != tt.wantStrength {
			t.Errorf("age %d: expected strength %d, got %d", tt.age, tt.wantStrength, feas.MaxStrengthDemand)
		}
		if feas.AllowElevatedSurfaces != tt.wantElevated {
			t.Errorf("age %d: expected AllowElevatedSurfaces=%v", tt.age, tt.wantElevated)
		}
	}
}

func TestGetAgeFeasibilityMonotonic(t *testing.T) {
	prev := GetAgeFeasibility(0)
	for age := 1; age <= 18; age++ {
		cur := GetAgeFeasibility(age)
		if cur.MaxStrengthDemand < prev.MaxStrengthDemand ||
			cur.MaxBalanceComplexity < prev.MaxBalanceComplexity ||
			cur.MaxMotorPlanningLoad < prev.MaxMotorPlanningLoad {
			t.Errorf("age %d: capability decreased from the previous band", age)
		}
		if prev.AllowElevatedSurfaces && !cur.AllowElevatedSurfaces {
			t.Errorf("age %d: elevated surfaces revoked with age", age)
		}
		prev = cur
	}
}

func TestGetAgeFeasibilityNeverAllowsUnstableSurfaces(t *testing.T) {
	for age := 0; age <= 18; age++ {
		if GetAgeFeasibility(age).AllowUnstableSurfaces {
			t.Errorf("age %d: unstable surfaces must never be allowed", age)
		}
	}
}
