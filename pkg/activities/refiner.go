// Package activities finalizes safety-validated candidates: focus
// substitution for space and age, deterministic seed assignment, diversity
// ordering, and Arabic text rendering.
package activities

import (
	"github.com/menta2k/activity-analyzer/pkg/safety"
	"github.com/menta2k/activity-analyzer/pkg/types"
)

// FocusCategory is the coarse grouping used for diversity ordering.
type FocusCategory string

const (
	CategoryMotor     FocusCategory = "motor"
	CategorySensory   FocusCategory = "sensory"
	CategoryExecutive FocusCategory = "executive"
	CategoryADL       FocusCategory = "adl"
)

// DemandTag is the performance-demand grouping used for diversity ordering.
type DemandTag string

const (
	DemandStatic     DemandTag = "static"
	DemandDynamic    DemandTag = "dynamic"
	DemandBilateral  DemandTag = "bilateral"
	DemandSequencing DemandTag = "sequencing"
)

var focusCategories = map[types.TherapeuticFocus]FocusCategory{
	types.FocusFineMotor:             CategoryMotor,
	types.FocusGrossMotor:            CategoryMotor,
	types.FocusBilateralCoordination: CategoryMotor,
	types.FocusSensoryRegulation:     CategorySensory,
	types.FocusMotorPlanning:         CategoryExecutive,
	types.FocusExecutiveFunction:     CategoryExecutive,
}

var focusDemands = map[types.TherapeuticFocus]DemandTag{
	types.FocusFineMotor:             DemandStatic,
	types.FocusSensoryRegulation:     DemandStatic,
	types.FocusGrossMotor:            DemandDynamic,
	types.FocusBilateralCoordination: DemandBilateral,
	types.FocusMotorPlanning:         DemandSequencing,
	types.FocusExecutiveFunction:     DemandSequencing,
}

// CategoryOf returns the coarse category for a focus.
func CategoryOf(focus types.TherapeuticFocus) FocusCategory {
	if c, ok := focusCategories[focus]; ok {
		return c
	}
	return CategoryADL
}

// DemandOf returns the performance-demand tag for a focus.
func DemandOf(focus types.TherapeuticFocus) DemandTag {
	if d, ok := focusDemands[focus]; ok {
		return d
	}
	return DemandStatic
}

// spaceHungryFocuses inherently need open space around the element
var spaceHungryFocuses = map[types.TherapeuticFocus]bool{
	types.FocusGrossMotor:    true,
	types.FocusMotorPlanning: true,
}

// cognitivelyDemandingFocuses exceed what children under four can sequence
var cognitivelyDemandingFocuses = map[types.TherapeuticFocus]bool{
	types.FocusExecutiveFunction: true,
	types.FocusMotorPlanning:     true,
}

// developmentallyPreferred is the substitution order for young children
var developmentallyPreferred = []types.TherapeuticFocus{
	types.FocusSensoryRegulation,
	types.FocusFineMotor,
	types.FocusGrossMotor,
	types.FocusBilateralCoordination,
}

// RefineActivities applies the two substitution rules, assigns the
// deterministic text-variant seeds, and reorders for diversity. The output
// length always equals the input length.
func RefineActivities(cands []types.ActivityCandidate, age int) []types.RefinedActivity {
	refined := make([]types.RefinedActivity, 0, len(cands))

	for i, c := range cands {
		if c.Element != nil && c.Element.Space == types.SpaceConstrained && spaceHungryFocuses[c.Focus] {
			if f, ok := substituteForSpace(c.Element, age); ok {
				c.Focus = f
			}
		}

		if age < 4 && cognitivelyDemandingFocuses[c.Focus] {
			if f, ok := substituteForAge(c.Element, age); ok {
				c.Focus = f
			}
		}

		refined = append(refined, types.RefinedActivity{
			ActivityCandidate: c,
			SpecificSkillSeed: i + age + len(c.ObjectLabel)%5,
			HumanizeOffset:    (i*7 + len(string(c.Focus))) % 3,
		})
	}

	return enforceDiversityOrder(refined)
}

// substituteForSpace picks the first affordance that works in a
// constrained slot. A substitution must not reintroduce a pairing the
// safety validator rejects for this element.
func substituteForSpace(el *types.EnvironmentElement, age int) (types.TherapeuticFocus, bool) {
	for _, f := range el.Motor {
		if spaceHungryFocuses[f] || !safety.IsActivitySafe(f, el, age) {
			continue
		}
		return f, true
	}
	return "", false
}

// substituteForAge picks a developmentally preferred affordance, falling
// back to the first non-demanding one the element supports. Unsafe
// substitutes are skipped; when none qualifies the original pairing stays
// and phrasing carries the safety.
func substituteForAge(el *types.EnvironmentElement, age int) (types.TherapeuticFocus, bool) {
	if el == nil {
		return "", false
	}
	for _, f := range developmentallyPreferred {
		if el.Supports(f) && safety.IsActivitySafe(f, el, age) {
			return f, true
		}
	}
	for _, f := range el.Motor {
		if cognitivelyDemandingFocuses[f] || !safety.IsActivitySafe(f, el, age) {
			continue
		}
		return f, true
	}
	return "", false
}

// enforceDiversityOrder reorders once so no two consecutive activities
// share both category and demand tag. Takes the next item that breaks
// similarity with the last placed one, else the first remaining.
func enforceDiversityOrder(acts []types.RefinedActivity) []types.RefinedActivity {
	if len(acts) < 3 {
		return acts
	}

	remaining := append([]types.RefinedActivity(nil), acts...)
	out := make([]types.RefinedActivity, 0, len(acts))
	out = append(out, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		last := out[len(out)-1]
		pick := 0
		for i, a := range remaining {
			if CategoryOf(a.Focus) != CategoryOf(last.Focus) || DemandOf(a.Focus) != DemandOf(last.Focus) {
				pick = i
				break
			}
		}
		out = append(out, remaining[pick])
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}

	return out
}
