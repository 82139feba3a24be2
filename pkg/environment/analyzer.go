// Package environment synthesizes validated labels into environment
// elements with spatial attributes and therapeutic affordances, and builds
// the diversified activity candidate set on top of them.
package environment

import (
	"strings"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// MaxEnvironmentElements caps the element count per request
const MaxEnvironmentElements = 5

// attribute tables keyed by label substring; first match wins, so specific
// keywords precede general ones

var heightTable = []struct {
	Keyword string
	Value   types.Height
}{
	{"stairs", types.HeightElevated},
	{"staircase", types.HeightElevated},
	{"ladder", types.HeightElevated},
	{"bookshelf", types.HeightElevated},
	{"shelf", types.HeightElevated},
	{"wardrobe", types.HeightElevated},
	{"cabinet", types.HeightElevated},
	{"window", types.HeightElevated},
	{"counter", types.HeightTable},
	{"table", types.HeightTable},
	{"desk", types.HeightTable},
	{"sink", types.HeightTable},
	{"sofa", types.HeightLow},
	{"couch", types.HeightLow},
	{"armchair", types.HeightLow},
	{"chair", types.HeightLow},
	{"bench", types.HeightLow},
	{"stool", types.HeightLow},
	{"ottoman", types.HeightLow},
	{"bed", types.HeightLow},
	{"step", types.HeightLow},
	{"carpet", types.HeightFloor},
	{"rug", types.HeightFloor},
	{"mat", types.HeightFloor},
	{"floor", types.HeightFloor},
	{"mattress", types.HeightFloor},
	{"cushion", types.HeightFloor},
	{"ball", types.HeightFloor},
}

var stabilityTable = []struct {
	Keyword string
	Value   types.Stability
}{
	{"stairs", types.StabilityFixed},
	{"staircase", types.StabilityFixed},
	{"wall", types.StabilityFixed},
	{"door", types.StabilityFixed},
	{"window", types.StabilityFixed},
	{"railing", types.StabilityFixed},
	{"wardrobe", types.StabilityFixed},
	{"cabinet", types.StabilityFixed},
	{"refrigerator", types.StabilityFixed},
	{"fridge", types.StabilityFixed},
	{"oven", types.StabilityFixed},
	{"stove", types.StabilityFixed},
	{"sink", types.StabilityFixed},
	{"washing machine", types.StabilityFixed},
	{"ball", types.StabilityMobile},
	{"balloon", types.StabilityMobile},
	{"toy", types.StabilityMobile},
	{"doll", types.StabilityMobile},
	{"block", types.StabilityMobile},
	{"cup", types.StabilityMobile},
	{"bottle", types.StabilityMobile},
	{"book", types.StabilityMobile},
	{"pillow", types.StabilityMobile},
	{"cushion", types.StabilityMobile},
	{"blanket", types.StabilityMobile},
	{"basket", types.StabilityMobile},
	{"box", types.StabilityMobile},
	{"stool", types.StabilityMobile},
	{"tricycle", types.StabilityMobile},
	{"bicycle", types.StabilityMobile},
	{"scooter", types.StabilityMobile},
}

var textureTable = []struct {
	Keyword string
	Value   string
}{
	{"sofa", "soft"},
	{"couch", "soft"},
	{"armchair", "soft"},
	{"pillow", "soft"},
	{"cushion", "soft"},
	{"blanket", "soft"},
	{"teddy", "soft"},
	{"stuffed", "soft"},
	{"beanbag", "soft"},
	{"mattress", "soft"},
	{"carpet", "textured"},
	{"rug", "textured"},
	{"mat", "textured"},
	{"towel", "textured"},
	{"table", "hard"},
	{"desk", "hard"},
	{"chair", "hard"},
	{"stairs", "hard"},
	{"floor", "hard"},
	{"block", "hard"},
	{"ball", "smooth"},
	{"balloon", "smooth"},
	{"mirror", "smooth"},
	{"window", "smooth"},
	{"cup", "smooth"},
	{"bottle", "smooth"},
}

type focuses = []types.TherapeuticFocus

var motorTable = []struct {
	Keyword string
	Value   []types.TherapeuticFocus
}{
	{"ball", focuses{types.FocusGrossMotor, types.FocusBilateralCoordination, types.FocusMotorPlanning}},
	{"balloon", focuses{types.FocusGrossMotor, types.FocusBilateralCoordination, types.FocusSensoryRegulation}},
	{"block", focuses{types.FocusFineMotor, types.FocusExecutiveFunction, types.FocusBilateralCoordination}},
	{"lego", focuses{types.FocusFineMotor, types.FocusExecutiveFunction, types.FocusBilateralCoordination}},
	{"puzzle", focuses{types.FocusFineMotor, types.FocusExecutiveFunction}},
	{"bead", focuses{types.FocusFineMotor, types.FocusBilateralCoordination}},
	{"scissors", focuses{types.FocusFineMotor, types.FocusBilateralCoordination}},
	{"crayon", focuses{types.FocusFineMotor, types.FocusExecutiveFunction}},
	{"pencil", focuses{types.FocusFineMotor, types.FocusExecutiveFunction}},
	{"paper", focuses{types.FocusFineMotor, types.FocusBilateralCoordination}},
	{"book", focuses{types.FocusFineMotor, types.FocusExecutiveFunction}},
	{"stairs", focuses{types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"staircase", focuses{types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"step", focuses{types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"ladder", focuses{types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"carpet", focuses{types.FocusSensoryRegulation, types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"rug", focuses{types.FocusSensoryRegulation, types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"mat", focuses{types.FocusSensoryRegulation, types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"mattress", focuses{types.FocusGrossMotor, types.FocusSensoryRegulation, types.FocusMotorPlanning}},
	{"pillow", focuses{types.FocusBilateralCoordination, types.FocusSensoryRegulation, types.FocusGrossMotor}},
	{"cushion", focuses{types.FocusBilateralCoordination, types.FocusSensoryRegulation, types.FocusGrossMotor}},
	{"blanket", focuses{types.FocusBilateralCoordination, types.FocusSensoryRegulation}},
	{"sofa", focuses{types.FocusGrossMotor, types.FocusSensoryRegulation, types.FocusMotorPlanning}},
	{"couch", focuses{types.FocusGrossMotor, types.FocusSensoryRegulation, types.FocusMotorPlanning}},
	{"armchair", focuses{types.FocusGrossMotor, types.FocusSensoryRegulation}},
	{"table", focuses{types.FocusFineMotor, types.FocusExecutiveFunction, types.FocusMotorPlanning}},
	{"desk", focuses{types.FocusFineMotor, types.FocusExecutiveFunction}},
	{"chair", focuses{types.FocusGrossMotor, types.FocusMotorPlanning, types.FocusSensoryRegulation}},
	{"basket", focuses{types.FocusBilateralCoordination, types.FocusExecutiveFunction, types.FocusGrossMotor}},
	{"box", focuses{types.FocusBilateralCoordination, types.FocusExecutiveFunction, types.FocusGrossMotor}},
	{"cup", focuses{types.FocusFineMotor, types.FocusBilateralCoordination}},
	{"bottle", focuses{types.FocusFineMotor, types.FocusBilateralCoordination}},
	{"spoon", focuses{types.FocusFineMotor, types.FocusBilateralCoordination}},
	{"towel", focuses{types.FocusBilateralCoordination, types.FocusFineMotor, types.FocusSensoryRegulation}},
	{"swing", focuses{types.FocusSensoryRegulation, types.FocusGrossMotor}},
	{"slide", focuses{types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"trampoline", focuses{types.FocusGrossMotor, types.FocusSensoryRegulation}},
	{"rope", focuses{types.FocusBilateralCoordination, types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"hoop", focuses{types.FocusGrossMotor, types.FocusMotorPlanning}},
	{"mirror", focuses{types.FocusSensoryRegulation, types.FocusExecutiveFunction}},
	{"doll", focuses{types.FocusFineMotor, types.FocusExecutiveFunction, types.FocusSensoryRegulation}},
	{"teddy", focuses{types.FocusSensoryRegulation, types.FocusFineMotor}},
}

var riskTable = []struct {
	Keyword string
	Value   []string
}{
	{"stairs", []string{"fall risk"}},
	{"staircase", []string{"fall risk"}},
	{"ladder", []string{"fall risk"}},
	{"step", []string{"trip risk"}},
	{"window", []string{"fall risk", "glass"}},
	{"mirror", []string{"glass"}},
	{"vase", []string{"breakable"}},
	{"scissors", []string{"sharp edge"}},
	{"bead", []string{"choking hazard"}},
	{"button", []string{"choking hazard"}},
	{"balloon", []string{"choking hazard when burst"}},
	{"table", []string{"hard corners"}},
	{"desk", []string{"hard corners"}},
	{"counter", []string{"hard corners"}},
	{"rope", []string{"entanglement"}},
	{"string", []string{"entanglement"}},
	{"blanket", []string{"entanglement for infants"}},
}

// smallPlayKeywords shift the default height to floor when no height table
// entry matches: small play objects live where the child plays
var smallPlayKeywords = []string{"toy", "doll", "teddy", "stuffed", "bead", "crayon", "marker", "spoon", "block"}

func lookupHeight(label string) types.Height {
	for _, e := range heightTable {
		if strings.Contains(label, e.Keyword) {
			return e.Value
		}
	}
	for _, kw := range smallPlayKeywords {
		if strings.Contains(label, kw) {
			return types.HeightFloor
		}
	}
	return types.HeightMid
}

func lookupStability(label string) types.Stability {
	for _, e := range stabilityTable {
		if strings.Contains(label, e.Keyword) {
			return e.Value
		}
	}
	return types.StabilityStable
}

func lookupTexture(label string) string {
	for _, e := range textureTable {
		if strings.Contains(label, e.Keyword) {
			return e.Value
		}
	}
	return "unknown"
}

// defaultMotorTriad guarantees every element supports at least one activity
var defaultMotorTriad = []types.TherapeuticFocus{
	types.FocusFineMotor,
	types.FocusGrossMotor,
	types.FocusBilateralCoordination,
}

func lookupMotor(label string) []types.TherapeuticFocus {
	for _, e := range motorTable {
		if strings.Contains(label, e.Keyword) {
			return append([]types.TherapeuticFocus(nil), e.Value...)
		}
	}
	return append([]types.TherapeuticFocus(nil), defaultMotorTriad...)
}

func lookupRisks(label string) []string {
	for _, e := range riskTable {
		if strings.Contains(label, e.Keyword) {
			return append([]string(nil), e.Value...)
		}
	}
	return nil
}

// positionRotation cycles deterministically by processing index
var positionRotation = []types.Position{
	types.PositionCentral,
	types.PositionAgainstWall,
	types.PositionCorner,
	types.PositionEdge,
	types.PositionOpen,
}

// spaceForSlot rates free space by scene slot, not by the object itself:
// the first two elements get the open part of the scene, the next two a
// moderate share, the rest whatever is left. Identical objects can rate
// differently depending on input order.
func spaceForSlot(slot int) types.Space {
	switch {
	case slot < 2:
		return types.SpaceSpacious
	case slot < 4:
		return types.SpaceModerate
	default:
		return types.SpaceConstrained
	}
}

// AnalyzeEnvironment synthesizes one EnvironmentElement per validated
// label, at most MaxEnvironmentElements, duplicates collapsed first-wins.
func AnalyzeEnvironment(validated []types.ReasonedElement) []*types.EnvironmentElement {
	seen := make(map[string]bool, len(validated))
	out := make([]*types.EnvironmentElement, 0, MaxEnvironmentElements)

	for _, r := range validated {
		if len(out) >= MaxEnvironmentElements {
			break
		}
		label := r.RawLabel
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true

		slot := len(out)
		height := lookupHeight(label)

		sensory := []types.SensoryChannel{types.SensoryTactile, types.SensoryVisual}
		if height == types.HeightElevated || strings.Contains(label, "stair") || strings.Contains(label, "step") {
			sensory = append(sensory, types.SensoryVestibular, types.SensoryProprioceptive)
		}

		out = append(out, &types.EnvironmentElement{
			ObjectLabel: label,
			Position:    positionRotation[slot%len(positionRotation)],
			Height:      height,
			Stability:   lookupStability(label),
			Space:       spaceForSlot(slot),
			Texture:     lookupTexture(label),
			Motor:       lookupMotor(label),
			Sensory:     sensory,
			Risks:       lookupRisks(label),
		})
	}

	return out
}
