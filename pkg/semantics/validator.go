package semantics

import (
	"sort"
	"strings"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// MinValidatedConfidence is the re-check threshold applied after reasoning
const MinValidatedConfidence = 0.4

// Element count bounds after validation
const (
	MinTargetElements = 3
	MaxTargetElements = 5
)

// blockPatterns exclude a label outright, overriding the reasoner. They
// cover common misdetections and scenes that are never usable elements.
var blockPatterns = []string{
	"menu", "restaurant", "billboard", "poster", "logo", "website", "screenshot",
	"text", "document", "receipt",
	"landscape", "mountain", "beach", "ocean", "sea", "desert", "forest", "sky", "cloud",
	"weapon", "gun", "knife", "sword", "rifle",
	"animal", "dog", "cat", "bird", "horse",
	"food", "meal", "dish", "cake", "fruit",
}

// vehicleBlockPatterns block real vehicles only. A toy qualifier exempts
// the label so curated play entries like "toy car" stay reachable.
var vehicleBlockPatterns = []string{
	"car", "truck", "bus", "motorcycle", "airplane", "boat", "train",
}

// allowPatterns is the plausible child-environment vocabulary. A validated
// label must match at least one pattern; this is defense in depth beyond
// the reasoner's curated table.
var allowPatterns = []string{
	// play
	"ball", "balloon", "block", "lego", "puzzle", "doll", "teddy", "stuffed",
	"toy", "swing", "slide", "trampoline", "tricycle", "bicycle", "scooter",
	"hoop", "rope", "bead", "drum", "xylophone", "kite",
	// school and art
	"book", "notebook", "crayon", "pencil", "marker", "pen", "paper",
	"scissors", "paint", "brush", "chalk", "sticker",
	// household manipulables
	"basket", "box", "container", "bucket", "bag", "bottle", "cup", "mug",
	"plate", "bowl", "spoon", "tray", "towel", "button", "string", "jar",
	// soft
	"pillow", "cushion", "blanket", "beanbag",
	// furniture
	"sofa", "couch", "armchair", "chair", "stool", "bench", "ottoman",
	"table", "desk", "counter", "nightstand", "shelf", "bookshelf",
	"cabinet", "dresser", "wardrobe", "drawer",
	// sleep
	"bed", "crib", "mattress",
	// floor and structure
	"carpet", "rug", "mat", "floor", "stair", "step", "ladder", "railing",
	"door", "window", "wall", "curtain",
	// environment terms the reasoner synthesizes
	"room", "playroom", "nursery", "hallway", "hall", "kitchen", "furniture",
	"interior", "house", "home",
	// decor and fixtures
	"mirror", "plant", "picture", "frame", "clock", "lamp", "vase",
	"television", "tv", "sink",
}

// ageGatedExclusion blocks a pattern below a minimum age. Mostly choking
// and sharp-edge hazards.
type ageGatedExclusion struct {
	Pattern string
	MinAge  int
}

var ageGatedExclusions = []ageGatedExclusion{
	{"scissors", 3},
	{"bead", 3},
	{"button", 3},
	{"balloon", 3},
	{"marble", 3},
	{"coin", 4},
	{"ladder", 5},
}

// ValidateElements applies the block and allow lists, age gating, and the
// confidence re-check, then re-sorts by interaction priority and truncates
// to the target count. maxElements outside [3,5] is clamped.
func ValidateElements(elems []types.ReasonedElement, age, maxElements int) []types.ReasonedElement {
	if maxElements < MinTargetElements {
		maxElements = MinTargetElements
	}
	if maxElements > MaxTargetElements {
		maxElements = MaxTargetElements
	}

	out := make([]types.ReasonedElement, 0, len(elems))
	for _, e := range elems {
		label := e.RawLabel
		if matchesBlockPattern(label) {
			continue
		}
		if !matchesPattern(label, allowPatterns) {
			continue
		}
		if excludedForAge(label, age) {
			continue
		}
		if e.ConfidenceAfterProcessing < MinValidatedConfidence {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi := PriorityForCategory(out[i].FunctionalCategory)
		pj := PriorityForCategory(out[j].FunctionalCategory)
		if pi != pj {
			return pi > pj
		}
		return out[i].ConfidenceAfterProcessing > out[j].ConfidenceAfterProcessing
	})

	if len(out) > maxElements {
		out = out[:maxElements]
	}

	return out
}

// ValidatedLabels extracts the label list in validated order.
func ValidatedLabels(elems []types.ReasonedElement) []string {
	labels := make([]string, len(elems))
	for i, e := range elems {
		labels[i] = e.RawLabel
	}
	return labels
}

func matchesPattern(label string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(label, p) {
			return true
		}
	}
	return false
}

// matchesBlockPattern matches block terms against whole words so that
// "carpet" is not blocked by "car" nor "seat" by "sea"
func matchesBlockPattern(label string) bool {
	words := strings.Fields(label)
	for _, p := range blockPatterns {
		for _, w := range words {
			if w == p {
				return true
			}
		}
	}
	if !strings.Contains(label, "toy") {
		for _, p := range vehicleBlockPatterns {
			for _, w := range words {
				if w == p {
					return true
				}
			}
		}
	}
	return false
}

func excludedForAge(label string, age int) bool {
	for _, g := range ageGatedExclusions {
		if age < g.MinAge && strings.Contains(label, g.Pattern) {
			return true
		}
	}
	return false
}
