package environment

import (
	"math/rand"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// Activity count bounds
const (
	DefaultTargetActivities = 5
	MinTargetActivities     = 3
)

// diversityPriority is the preferred focus order before shuffling: the
// categories that generalize across the most object types come first.
var diversityPriority = []types.TherapeuticFocus{
	types.FocusGrossMotor,
	types.FocusFineMotor,
	types.FocusSensoryRegulation,
	types.FocusBilateralCoordination,
	types.FocusMotorPlanning,
	types.FocusExecutiveFunction,
}

// Builder constructs diversified activity candidates from environment
// elements. The shuffle source is injected so tests can seed it; this is
// the only randomness in the pipeline and it affects variety, not safety.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder with the given random source.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// BuildActivities greedily pairs elements with focuses: first one unused
// focus per element in the shuffled preferred order, then any unused
// (label, focus) pair once every focus has been used. Guarantees no
// duplicate pairs and at least min(target, len(elements)) candidates when
// every element supports at least one focus.
func (b *Builder) BuildActivities(elements []*types.EnvironmentElement, target int) []types.ActivityCandidate {
	if len(elements) == 0 {
		return nil
	}
	target = clampTarget(target, len(elements))

	focusOrder := b.shuffledFocuses()
	elems := b.shuffledElements(elements)

	usedPairs := make(map[string]bool)
	usedFocus := make(map[types.TherapeuticFocus]bool)
	out := make([]types.ActivityCandidate, 0, target)
	next := 0

	for len(out) < target {
		cand, ok := pickCandidate(elems, &next, focusOrder, usedPairs, usedFocus)
		if !ok {
			break
		}
		usedPairs[cand.PairKey()] = true
		usedFocus[cand.Focus] = true
		out = append(out, cand)
	}

	return out
}

func clampTarget(target, elementCount int) int {
	if target <= 0 {
		target = DefaultTargetActivities
	}
	if target < MinTargetActivities {
		target = MinTargetActivities
	}
	ceiling := DefaultTargetActivities
	if c := elementCount * 2; c < ceiling {
		ceiling = c
	}
	if c := len(types.AllFocuses); c < ceiling {
		ceiling = c
	}
	if target > ceiling {
		target = ceiling
	}
	if target < 1 {
		target = 1
	}
	return target
}

// pickCandidate walks the element rotation starting after the last pick.
// Tier one requires a globally unused focus; tier two relaxes to focus
// reuse on a new pair.
func pickCandidate(elems []*types.EnvironmentElement, next *int, focusOrder []types.TherapeuticFocus, usedPairs map[string]bool, usedFocus map[types.TherapeuticFocus]bool) (types.ActivityCandidate, bool) {
	for n := 0; n < len(elems); n++ {
		e := elems[(*next+n)%len(elems)]
		for _, f := range focusOrder {
			if usedFocus[f] || !e.Supports(f) {
				continue
			}
			if usedPairs[e.ObjectLabel+"|"+string(f)] {
				continue
			}
			*next = (*next + n + 1) % len(elems)
			return types.ActivityCandidate{ObjectLabel: e.ObjectLabel, Focus: f, Element: e}, true
		}
	}

	for n := 0; n < len(elems); n++ {
		e := elems[(*next+n)%len(elems)]
		for _, f := range focusOrder {
			if !e.Supports(f) || usedPairs[e.ObjectLabel+"|"+string(f)] {
				continue
			}
			*next = (*next + n + 1) % len(elems)
			return types.ActivityCandidate{ObjectLabel: e.ObjectLabel, Focus: f, Element: e}, true
		}
	}

	return types.ActivityCandidate{}, false
}

func (b *Builder) shuffledFocuses() []types.TherapeuticFocus {
	order := append([]types.TherapeuticFocus(nil), diversityPriority...)
	if b.rng != nil {
		b.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}

func (b *Builder) shuffledElements(elements []*types.EnvironmentElement) []*types.EnvironmentElement {
	elems := append([]*types.EnvironmentElement(nil), elements...)
	if b.rng != nil {
		b.rng.Shuffle(len(elems), func(i, j int) {
			elems[i], elems[j] = elems[j], elems[i]
		})
	}
	return elems
}
