package safety

import (
	"testing"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

func classified(label string, height types.Height, stability types.Stability, motor ...types.TherapeuticFocus) *types.EnvironmentElement {
	el := &types.EnvironmentElement{
		ObjectLabel: label,
		Height:      height,
		Stability:   stability,
		Space:       types.SpaceSpacious,
		Motor:       motor,
	}
	el.Safety = ClassifyElementForSafety(el)
	return el
}

func candidate(el *types.EnvironmentElement, focus types.TherapeuticFocus) types.ActivityCandidate {
	return types.ActivityCandidate{ObjectLabel: el.ObjectLabel, Focus: focus, Element: el}
}

func TestIsActivitySafe(t *testing.T) {
	sofa := classified("sofa", types.HeightLow, types.StabilityStable,
		types.FocusGrossMotor, types.FocusSensoryRegulation, types.FocusMotorPlanning)
	ball := classified("ball", types.HeightFloor, types.StabilityMobile,
		types.FocusGrossMotor, types.FocusFineMotor)
	stairs := classified("stairs", types.HeightElevated, types.StabilityFixed,
		types.FocusGrossMotor, types.FocusMotorPlanning)

	tests := []struct {
		name  string
		focus types.TherapeuticFocus
		el    *types.EnvironmentElement
		age   int
		want  bool
	}{
		{"fine motor on ball", types.FocusFineMotor, ball, 5, true},
		{"gross motor on sofa", types.FocusGrossMotor, sofa, 5, true},
		{"sensory on sofa", types.FocusSensoryRegulation, sofa, 5, true},
		{"motor planning on sofa", types.FocusMotorPlanning, sofa, 5, false},
		{"fine motor on sofa", types.FocusFineMotor, sofa, 5, false},
		{"sensory on stairs", types.FocusSensoryRegulation, stairs, 2, true},
		{"gross motor on stairs young", types.FocusGrossMotor, stairs, 2, false},
		{"motor planning on stairs young", types.FocusMotorPlanning, stairs, 2, false},
		// Climbing stays forbidden for gross motor at every age
		{"gross motor on stairs older", types.FocusGrossMotor, stairs, 8, false},
		{"motor planning on stairs older", types.FocusMotorPlanning, stairs, 8, true},
	}

	for _, tt := range tests {
		if got := IsActivitySafe(tt.focus, tt.el, tt.age); got != tt.want {
			t.Errorf("%s: IsActivitySafe = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsActivitySafeNilMetadata(t *testing.T) {
	el := &types.EnvironmentElement{ObjectLabel: "ball"}
	if !IsActivitySafe(types.FocusFineMotor, el, 5) {
		t.Error("Expected unclassified elements to pass")
	}
}

func TestValidateActivitiesReplacesFocus(t *testing.T) {
	sofa := classified("sofa", types.HeightLow, types.StabilityStable,
		types.FocusGrossMotor, types.FocusSensoryRegulation, types.FocusMotorPlanning)

	cands := []types.ActivityCandidate{candidate(sofa, types.FocusMotorPlanning)}
	out := ValidateActivities(cands, []*types.EnvironmentElement{sofa}, 5)

	if len(out) != 1 {
		t.Fatalf("Expected length preserved, got %d", len(out))
	}
	if out[0].Focus != types.FocusSensoryRegulation && out[0].Focus != types.FocusGrossMotor {
		t.Errorf("Expected a safe-alternative focus, got %s", out[0].Focus)
	}
	if out[0].ObjectLabel != "sofa" {
		t.Errorf("Expected the element kept, got %q", out[0].ObjectLabel)
	}
}

func TestValidateActivitiesReplacesElement(t *testing.T) {
	sofa := classified("sofa", types.HeightLow, types.StabilityStable,
		types.FocusGrossMotor, types.FocusSensoryRegulation)
	ball := classified("ball", types.HeightFloor, types.StabilityMobile,
		types.FocusGrossMotor, types.FocusFineMotor)
	elements := []*types.EnvironmentElement{sofa, ball}

	// Both safe-alternative focuses on the sofa are already taken, so the
	// unsafe fine-motor pairing must move to the unrestricted ball
	cands := []types.ActivityCandidate{
		candidate(sofa, types.FocusGrossMotor),
		candidate(sofa, types.FocusSensoryRegulation),
		candidate(sofa, types.FocusFineMotor),
	}
	out := ValidateActivities(cands, elements, 5)

	if len(out) != 3 {
		t.Fatalf("Expected length preserved, got %d", len(out))
	}
	if out[2].ObjectLabel != "ball" || out[2].Focus != types.FocusFineMotor {
		t.Errorf("Expected fine motor moved to ball, got %s on %q", out[2].Focus, out[2].ObjectLabel)
	}
}

func TestValidateActivitiesWorstCasePassThrough(t *testing.T) {
	// Every element is heavy and every safe alternative is taken; the last
	// pairing passes through unchanged and phrasing carries the safety
	sofa := classified("sofa", types.HeightLow, types.StabilityStable,
		types.FocusGrossMotor, types.FocusSensoryRegulation, types.FocusFineMotor)

	cands := []types.ActivityCandidate{
		candidate(sofa, types.FocusGrossMotor),
		candidate(sofa, types.FocusSensoryRegulation),
		candidate(sofa, types.FocusFineMotor),
	}
	out := ValidateActivities(cands, []*types.EnvironmentElement{sofa}, 5)

	if len(out) != 3 {
		t.Fatalf("Expected length preserved, got %d", len(out))
	}
	last := out[2]
	if last.ObjectLabel != "sofa" || last.Focus != types.FocusFineMotor {
		t.Errorf("Expected unchanged pass-through, got %s on %q", last.Focus, last.ObjectLabel)
	}
	if !last.Element.Safety.UseSafeAlternativesOnly {
		t.Error("Pass-through element must still carry the safe-alternatives gate")
	}
}

func TestValidateActivitiesKeepsSafeCandidates(t *testing.T) {
	ball := classified("ball", types.HeightFloor, types.StabilityMobile,
		types.FocusGrossMotor, types.FocusFineMotor)

	cands := []types.ActivityCandidate{
		candidate(ball, types.FocusGrossMotor),
		candidate(ball, types.FocusFineMotor),
	}
	out := ValidateActivities(cands, []*types.EnvironmentElement{ball}, 5)

	for i := range out {
		if out[i].PairKey() != cands[i].PairKey() {
			t.Errorf("Safe candidate %d was modified: %q -> %q", i, cands[i].PairKey(), out[i].PairKey())
		}
	}
}

func TestValidateActivitiesNoDuplicatePairs(t *testing.T) {
	sofa := classified("sofa", types.HeightLow, types.StabilityStable,
		types.FocusGrossMotor, types.FocusSensoryRegulation, types.FocusMotorPlanning)
	ball := classified("ball", types.HeightFloor, types.StabilityMobile,
		types.FocusGrossMotor, types.FocusFineMotor)

	cands := []types.ActivityCandidate{
		candidate(sofa, types.FocusGrossMotor),
		candidate(sofa, types.FocusMotorPlanning),
		candidate(ball, types.FocusFineMotor),
	}
	out := ValidateActivities(cands, []*types.EnvironmentElement{sofa, ball}, 5)

	seen := map[string]bool{}
	for _, c := range out {
		if seen[c.PairKey()] {
			t.Errorf("Duplicate pair %q after validation", c.PairKey())
		}
		seen[c.PairKey()] = true
	}
}
