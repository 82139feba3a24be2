package safety

import (
	"github.com/menta2k/activity-analyzer/pkg/types"
)

// forceImplyingFocuses structurally imply moving or manipulating the
// element. Gross motor and sensory regulation are exempt: both can be
// phrased as walking toward, looking at, or touching without moving it.
var forceImplyingFocuses = map[types.TherapeuticFocus]bool{
	types.FocusMotorPlanning:         true,
	types.FocusFineMotor:             true,
	types.FocusBilateralCoordination: true,
	types.FocusExecutiveFunction:     true,
}

// safeAlternativeFocuses are the focuses allowed on an element that
// requires safe alternatives only.
var safeAlternativeFocuses = []types.TherapeuticFocus{
	types.FocusSensoryRegulation,
	types.FocusGrossMotor,
}

// IsActivitySafe checks one (focus, element) pairing against the element's
// safety metadata and the child's age band.
func IsActivitySafe(focus types.TherapeuticFocus, el *types.EnvironmentElement, age int) bool {
	meta := el.Safety
	if meta == nil {
		return true
	}

	if meta.UseSafeAlternativesOnly && forceImplyingFocuses[focus] {
		return false
	}

	if meta.HasClass(types.SafetyElevatedUnstable) {
		feas := GetAgeFeasibility(age)
		if !feas.AllowElevatedSurfaces &&
			(focus == types.FocusGrossMotor || focus == types.FocusMotorPlanning) {
			return false
		}
		if meta.Forbids(types.ForbidClimbUnstable) && focus == types.FocusGrossMotor {
			return false
		}
	}

	return true
}

// ValidateActivities re-checks every candidate and replaces unsafe ones:
// first the same element with a safe-alternative focus, then a different
// unrestricted element with the original focus, and as a last resort the
// original pairing is kept unchanged and the formatter must fall back to
// safe-alternative phrasing. The output always has the input's length.
func ValidateActivities(cands []types.ActivityCandidate, elements []*types.EnvironmentElement, age int) []types.ActivityCandidate {
	usedPairs := make(map[string]bool, len(cands))
	for _, c := range cands {
		usedPairs[c.PairKey()] = true
	}

	out := make([]types.ActivityCandidate, 0, len(cands))
	for _, c := range cands {
		if IsActivitySafe(c.Focus, c.Element, age) {
			out = append(out, c)
			continue
		}

		if repl, ok := replaceFocus(c, age, usedPairs); ok {
			usedPairs[repl.PairKey()] = true
			out = append(out, repl)
			continue
		}

		if repl, ok := replaceElement(c, elements, age, usedPairs); ok {
			usedPairs[repl.PairKey()] = true
			out = append(out, repl)
			continue
		}

		// No safe replacement exists; the pairing passes through and the
		// safety contract shifts to phrasing
		out = append(out, c)
	}

	return out
}

// replaceFocus tries a safe-alternative focus on the same element.
func replaceFocus(c types.ActivityCandidate, age int, usedPairs map[string]bool) (types.ActivityCandidate, bool) {
	for _, f := range safeAlternativeFocuses {
		if forceImplyingFocuses[f] {
			continue
		}
		repl := types.ActivityCandidate{ObjectLabel: c.ObjectLabel, Focus: f, Element: c.Element}
		if usedPairs[repl.PairKey()] {
			continue
		}
		if !IsActivitySafe(f, c.Element, age) {
			continue
		}
		return repl, true
	}
	return types.ActivityCandidate{}, false
}

// replaceElement tries the original focus on a different, unrestricted
// element. The focus need not be in the element's affordance list here;
// this is the documented exception to the affordance invariant.
func replaceElement(c types.ActivityCandidate, elements []*types.EnvironmentElement, age int, usedPairs map[string]bool) (types.ActivityCandidate, bool) {
	for _, el := range elements {
		if el.ObjectLabel == c.ObjectLabel {
			continue
		}
		if el.Safety != nil && el.Safety.UseSafeAlternativesOnly {
			continue
		}
		repl := types.ActivityCandidate{ObjectLabel: el.ObjectLabel, Focus: c.Focus, Element: el}
		if usedPairs[repl.PairKey()] {
			continue
		}
		if !IsActivitySafe(c.Focus, el, age) {
			continue
		}
		return repl, true
	}
	return types.ActivityCandidate{}, false
}
