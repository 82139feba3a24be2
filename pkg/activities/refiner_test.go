package activities

import (
	"testing"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

func element(label string, space types.Space, motor ...types.TherapeuticFocus) *types.EnvironmentElement {
	return &types.EnvironmentElement{
		ObjectLabel: label,
		Space:       space,
		Motor:       motor,
	}
}

func candidate(el *types.EnvironmentElement, focus types.TherapeuticFocus) types.ActivityCandidate {
	return types.ActivityCandidate{ObjectLabel: el.ObjectLabel, Focus: focus, Element: el}
}

func TestRefineActivitiesSpaceSubstitution(t *testing.T) {
	ball := element("ball", types.SpaceConstrained,
		types.FocusGrossMotor, types.FocusBilateralCoordination)

	out := RefineActivities([]types.ActivityCandidate{candidate(ball, types.FocusGrossMotor)}, 6)

	if len(out) != 1 {
		t.Fatalf("Expected 1 refined activity, got %d", len(out))
	}
	if out[0].Focus != types.FocusBilateralCoordination {
		t.Errorf("Expected gross motor substituted in a constrained slot, got %s", out[0].Focus)
	}
}

func TestRefineActivitiesNoSpaceSubstitutionWhenRoomy(t *testing.T) {
	ball := element("ball", types.SpaceSpacious,
		types.FocusGrossMotor, types.FocusBilateralCoordination)

	out := RefineActivities([]types.ActivityCandidate{candidate(ball, types.FocusGrossMotor)}, 6)

	if out[0].Focus != types.FocusGrossMotor {
		t.Errorf("Expected no substitution in spacious slots, got %s", out[0].Focus)
	}
}

func TestRefineActivitiesAgeSubstitution(t *testing.T) {
	puzzle := element("puzzle", types.SpaceModerate,
		types.FocusFineMotor, types.FocusExecutiveFunction)

	out := RefineActivities([]types.ActivityCandidate{candidate(puzzle, types.FocusExecutiveFunction)}, 3)

	if out[0].Focus != types.FocusFineMotor {
		t.Errorf("Expected executive function substituted for age 3, got %s", out[0].Focus)
	}
}

func TestRefineActivitiesNoAgeSubstitutionForOlder(t *testing.T) {
	puzzle := element("puzzle", types.SpaceModerate,
		types.FocusFineMotor, types.FocusExecutiveFunction)

	out := RefineActivities([]types.ActivityCandidate{candidate(puzzle, types.FocusExecutiveFunction)}, 5)

	if out[0].Focus != types.FocusExecutiveFunction {
		t.Errorf("Expected executive function kept for age 5, got %s", out[0].Focus)
	}
}

func TestRefineActivitiesSeeds(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusFineMotor)

	out := RefineActivities([]types.ActivityCandidate{candidate(ball, types.FocusFineMotor)}, 5)

	// i + age + len("ball")%5 = 0 + 5 + 4
	if out[0].SpecificSkillSeed != 9 {
		t.Errorf("Expected skill seed 9, got %d", out[0].SpecificSkillSeed)
	}
	// (0*7 + len("fine_motor")) % 3 = 10 % 3
	if out[0].HumanizeOffset != 1 {
		t.Errorf("Expected humanize offset 1, got %d", out[0].HumanizeOffset)
	}
}

func TestRefineActivitiesAgeSubstitutionSkipsUnsafeFocus(t *testing.T) {
	// Stairs support gross motor, but climbing is forbidden; the age
	// substitution must not swap motor planning for a focus the safety
	// validator rejects on this element
	stairs := element("stairs", types.SpaceSpacious,
		types.FocusGrossMotor, types.FocusMotorPlanning)
	stairs.Height = types.HeightElevated
	stairs.Safety = &types.SafetyMetadata{
		Classes: []types.ObjectSafetyClass{types.SafetyElevatedUnstable},
		ForbiddenActions: []types.ForbiddenAction{
			types.ForbidClimbUnstable, types.ForbidJumpFromHigh,
		},
	}

	out := RefineActivities([]types.ActivityCandidate{candidate(stairs, types.FocusMotorPlanning)}, 2)

	if len(out) != 1 {
		t.Fatalf("Expected 1 refined activity, got %d", len(out))
	}
	if out[0].Focus == types.FocusGrossMotor {
		t.Error("Age substitution reintroduced the unsafe gross-motor pairing")
	}
	if out[0].Focus != types.FocusMotorPlanning {
		t.Errorf("Expected the original pairing kept when no safe substitute exists, got %s", out[0].Focus)
	}
}

func TestRefineActivitiesSpaceSubstitutionSkipsUnsafeFocus(t *testing.T) {
	// A heavy element in a constrained slot: the space substitution must
	// not land on a force-implying focus the safety gate forbids
	sofa := element("sofa", types.SpaceConstrained,
		types.FocusGrossMotor, types.FocusFineMotor, types.FocusSensoryRegulation)
	sofa.Safety = &types.SafetyMetadata{
		Classes:                 []types.ObjectSafetyClass{types.SafetyFixedHeavyFurniture},
		UseSafeAlternativesOnly: true,
	}

	out := RefineActivities([]types.ActivityCandidate{candidate(sofa, types.FocusGrossMotor)}, 6)

	if out[0].Focus != types.FocusSensoryRegulation {
		t.Errorf("Expected the safe sensory substitute, got %s", out[0].Focus)
	}
}

func TestRefineActivitiesLengthPreserved(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusGrossMotor, types.FocusFineMotor)
	rug := element("rug", types.SpaceSpacious, types.FocusSensoryRegulation)

	cands := []types.ActivityCandidate{
		candidate(ball, types.FocusGrossMotor),
		candidate(rug, types.FocusSensoryRegulation),
		candidate(ball, types.FocusFineMotor),
	}
	out := RefineActivities(cands, 5)

	if len(out) != len(cands) {
		t.Errorf("Expected length %d preserved, got %d", len(cands), len(out))
	}
}

func TestRefineActivitiesDiversityOrder(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusFineMotor)
	cup := element("cup", types.SpaceSpacious, types.FocusFineMotor)
	rug := element("rug", types.SpaceSpacious, types.FocusGrossMotor, types.FocusSensoryRegulation)

	// Two identical static fine-motor activities back to back must be
	// broken up by the dynamic one
	cands := []types.ActivityCandidate{
		candidate(ball, types.FocusFineMotor),
		candidate(cup, types.FocusFineMotor),
		candidate(rug, types.FocusGrossMotor),
	}
	out := RefineActivities(cands, 6)

	for i := 1; i < len(out); i++ {
		sameCategory := CategoryOf(out[i].Focus) == CategoryOf(out[i-1].Focus)
		sameDemand := DemandOf(out[i].Focus) == DemandOf(out[i-1].Focus)
		if sameCategory && sameDemand {
			t.Errorf("Activities %d and %d share category and demand: %s, %s",
				i-1, i, out[i-1].Focus, out[i].Focus)
		}
	}
}

func TestCategoryAndDemandOf(t *testing.T) {
	if CategoryOf(types.FocusFineMotor) != CategoryMotor {
		t.Error("Expected fine motor in the motor category")
	}
	if CategoryOf(types.FocusSensoryRegulation) != CategorySensory {
		t.Error("Expected sensory regulation in the sensory category")
	}
	if DemandOf(types.FocusGrossMotor) != DemandDynamic {
		t.Error("Expected gross motor tagged dynamic")
	}
	if DemandOf(types.FocusMotorPlanning) != DemandSequencing {
		t.Error("Expected motor planning tagged sequencing")
	}
}
