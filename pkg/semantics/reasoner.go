// Package semantics turns raw detector labels into real-world
// interpretations of a child's environment and validates them against
// allow/block vocabularies before any activity is built on top.
package semantics

import (
	"math"
	"sort"
	"strings"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// MinReasonedConfidence drops interpretations the formula scores too low
const MinReasonedConfidence = 0.35

// NormalizeLabel lowercases a label, keeps the first comma segment, and
// collapses internal whitespace. "Sofa, three-seat" and "sofa" normalize
// to the same key.
func NormalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if i := strings.Index(label, ","); i >= 0 {
		label = label[:i]
	}
	return strings.Join(strings.Fields(label), " ")
}

// Interpret resolves one normalized label to an interpretation. The lookup
// order is: curated table, environment-term synthesis, hedge heuristic.
// The second return is false when the label is excluded or implausible.
func Interpret(label string) (Interpretation, bool) {
	if label == "" || isExcluded(label) {
		return Interpretation{}, false
	}

	for _, e := range interpretationTable {
		if strings.Contains(label, e.Keyword) {
			return e.Interp, true
		}
	}

	// Environment-like labels get a specific best-guess element rather
	// than a generic placeholder
	for _, e := range envSynthesis {
		if strings.Contains(label, e.Keyword) {
			return e.Interp, true
		}
	}

	return hedgeInterpretation(label)
}

// hedgeInterpretation admits short unknown labels as plausible household
// objects at reduced relevance. Long phrases are almost always scene
// descriptions the detector should not have emitted.
func hedgeInterpretation(label string) (Interpretation, bool) {
	if len(strings.Fields(label)) > 2 || len(label) > 24 {
		return Interpretation{}, false
	}
	return Interpretation{
		NameAr:    "غرض منزلي مألوف",
		Category:  CategoryHousehold,
		Context:   "غرض منزلي يمكن استكشافه بإشراف",
		Relevance: 0.45,
	}, true
}

func isExcluded(label string) bool {
	for _, kw := range exclusionKeywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// PriorityForCategory returns the interaction priority used for ordering:
// 2 for tangible manipulable objects, 0 for structural background, 1
// otherwise. Concrete therapy-usable objects must surface before passive
// background.
func PriorityForCategory(category string) int {
	if manipulableCategories[category] {
		return 2
	}
	if structuralCategories[category] {
		return 0
	}
	return 1
}

// ReasonDetections maps filtered detections to reasoned elements:
// interpretation lookup, confidence adjustment, dedup by normalized label
// (first occurrence wins), and the two-level interaction-priority sort.
func ReasonDetections(dets []types.RawDetection) []types.ReasonedElement {
	seen := make(map[string]bool, len(dets))
	out := make([]types.ReasonedElement, 0, len(dets))

	for _, d := range dets {
		label := NormalizeLabel(d.ClassName)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true

		interp, ok := Interpret(label)
		if !ok {
			continue
		}

		conf := adjustedConfidence(d.Probability, interp.Relevance)
		if conf < MinReasonedConfidence {
			continue
		}

		out = append(out, types.ReasonedElement{
			RawLabel:                  label,
			ElementNameAr:             interp.NameAr,
			FunctionalCategory:        interp.Category,
			ContextualInterpretation:  interp.Context,
			ConfidenceAfterProcessing: conf,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi := PriorityForCategory(out[i].FunctionalCategory)
		pj := PriorityForCategory(out[j].FunctionalCategory)
		if pi != pj {
			return pi > pj
		}
		return out[i].ConfidenceAfterProcessing > out[j].ConfidenceAfterProcessing
	})

	return out
}

// adjustedConfidence blends detector probability with the static relevance
// weight. The result never implies more evidence than the input carried.
func adjustedConfidence(probability, relevance float64) float64 {
	conf := math.Round((probability*0.6+relevance*0.4)*100) / 100
	if conf > 1 {
		conf = 1
	}
	return conf
}

// DisplayNames builds the label to Arabic display-name map the text
// formatter consumes.
func DisplayNames(elems []types.ReasonedElement) map[string]string {
	names := make(map[string]string, len(elems))
	for _, e := range elems {
		names[e.RawLabel] = e.ElementNameAr
	}
	return names
}
