package detection

import (
	"sort"
	"strings"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// FilterConfig holds configuration for the detection filter
type FilterConfig struct {
	ConfidenceThreshold float64
	MinDetections       int
	MaxDetections       int
}

// DefaultFilterConfig returns the filter configuration used in production
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		ConfidenceThreshold: 0.25,
		MinDetections:       3,
		MaxDetections:       50,
	}
}

// personKeywords match labels that describe people or body parts. Detections
// of the child or caregiver are never treated as environment objects.
var personKeywords = []string{
	"person", "people", "human", "man", "woman", "boy", "girl",
	"child", "baby", "infant", "toddler", "kid", "adult",
	"face", "head", "hand", "arm", "leg", "foot", "finger", "body",
}

// genericLabels are too vague to interpret as a concrete object
var genericLabels = []string{
	"object", "entity", "thing", "item", "stuff", "structure",
	"material", "surface", "area", "scene", "background",
}

// FilterDetections removes person and generic labels, applies the confidence
// threshold with below-threshold backfill to reach the minimum count, and
// caps the result. The output is sorted by descending confidence. The
// function is total: worst case it returns an empty slice.
func FilterDetections(dets []types.RawDetection, cfg FilterConfig) []types.RawDetection {
	candidates := make([]types.RawDetection, 0, len(dets))
	for _, d := range dets {
		label := strings.ToLower(strings.TrimSpace(d.ClassName))
		if label == "" {
			continue
		}
		if isPersonLabel(label) {
			continue
		}
		if isGenericLabel(label) {
			continue
		}
		d.ClassName = label
		candidates = append(candidates, d)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Probability > candidates[j].Probability
	})

	kept := make([]types.RawDetection, 0, len(candidates))
	var below []types.RawDetection
	for _, d := range candidates {
		if d.Probability >= cfg.ConfidenceThreshold {
			kept = append(kept, d)
		} else {
			below = append(below, d)
		}
	}

	// Backfill with the best below-threshold detections until the minimum
	// is met or the pool is exhausted
	for _, d := range below {
		if len(kept) >= cfg.MinDetections {
			break
		}
		kept = append(kept, d)
	}

	if cfg.MaxDetections > 0 && len(kept) > cfg.MaxDetections {
		kept = kept[:cfg.MaxDetections]
	}

	return kept
}

// isPersonLabel matches person keywords against whole words, not raw
// substrings: "ottoman" contains "man" and "armchair" contains "arm", and
// both are legitimate furniture detections
func isPersonLabel(label string) bool {
	for _, word := range strings.FieldsFunc(label, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}) {
		for _, kw := range personKeywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}

// isGenericLabel matches whole labels only
func isGenericLabel(label string) bool {
	for _, g := range genericLabels {
		if label == g {
			return true
		}
	}
	return false
}
