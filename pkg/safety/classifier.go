// Package safety classifies environment elements by physical-safety class,
// derives age feasibility, and replaces unsafe activity pairings.
package safety

import (
	"strings"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// heavyFurnitureTerms mark elements a child must never be told to move.
// The set includes the fixed appliances so a fixed-stability element with a
// matching label classifies the same way.
var heavyFurnitureTerms = []string{
	"sofa", "couch", "armchair", "bed", "crib",
	"wardrobe", "cabinet", "dresser", "bookshelf", "bookcase",
	"dining table", "desk", "piano", "television", "tv stand",
	"refrigerator", "fridge", "oven", "stove", "washing machine", "sink",
}

// fixedFurnitureHints widen the heavy check for fixed-stability elements
// whose label is a broader furniture term rather than a specific piece.
var fixedFurnitureHints = []string{
	"table", "shelf", "counter", "furniture", "cupboard", "unit",
}

// largeMovableTerms are movable in principle but far beyond a child's safe
// strength; they get the same forbidden actions as heavy furniture.
var largeMovableTerms = []string{
	"bench", "ottoman", "mattress", "coffee table", "beanbag", "laundry basket",
}

var smallManipulableTerms = []string{
	"ball", "balloon", "toy", "block", "lego", "puzzle", "doll", "teddy", "stuffed",
	"cup", "mug", "bottle", "plate", "bowl", "spoon", "tray",
	"book", "notebook", "crayon", "pencil", "marker", "pen", "paper", "brush",
	"pillow", "cushion", "blanket", "towel", "basket", "box", "bucket", "bag",
	"bead", "button", "string", "rope",
}

var elevatedUnstableTerms = []string{
	"stairs", "staircase", "ladder", "stool", "railing", "bunk", "windowsill", "window sill",
}

var floorSafeTerms = []string{
	"carpet", "rug", "mat", "floor", "ball",
}

var heavyForbidden = []types.ForbiddenAction{
	types.ForbidLift,
	types.ForbidDrag,
	types.ForbidPush,
	types.ForbidHighForce,
}

var heavySafeHints = []types.SafeActionHint{
	types.HintCrawlAround,
	types.HintNavigateBetween,
	types.HintReachOver,
	types.HintUseCushionsOrFloor,
	types.HintSupportedWeightBearing,
}

// ClassifyElementForSafety computes the safety metadata for one element.
// Pure function of label, height, and stability: the same element always
// classifies the same way. An element may hold several classes at once.
func ClassifyElementForSafety(el *types.EnvironmentElement) *types.SafetyMetadata {
	label := strings.ToLower(el.ObjectLabel)
	meta := &types.SafetyMetadata{}

	heavy := containsAny(label, heavyFurnitureTerms)
	if !heavy && el.Stability == types.StabilityFixed && containsAny(label, fixedFurnitureHints) {
		heavy = true
	}
	if heavy {
		meta.Classes = append(meta.Classes, types.SafetyFixedHeavyFurniture)
		meta.ForbiddenActions = append(meta.ForbiddenActions, heavyForbidden...)
		meta.SafeActionHints = append(meta.SafeActionHints, heavySafeHints...)
	}

	if !heavy && containsAny(label, largeMovableTerms) {
		meta.Classes = append(meta.Classes, types.SafetyLargeMovable)
		meta.ForbiddenActions = append(meta.ForbiddenActions, heavyForbidden...)
		meta.SafeActionHints = append(meta.SafeActionHints, heavySafeHints...)
	}

	if containsAny(label, smallManipulableTerms) {
		meta.Classes = append(meta.Classes, types.SafetySmallManipulable)
	}

	if el.Height == types.HeightElevated || containsAny(label, elevatedUnstableTerms) {
		meta.Classes = append(meta.Classes, types.SafetyElevatedUnstable)
		meta.ForbiddenActions = append(meta.ForbiddenActions,
			types.ForbidClimbUnstable, types.ForbidJumpFromHigh)
	}

	if el.Height == types.HeightFloor || containsAny(label, floorSafeTerms) {
		meta.Classes = append(meta.Classes, types.SafetyFloorSafe)
	}

	if len(meta.Classes) == 0 {
		meta.Classes = append(meta.Classes, types.SafetySmallManipulable)
	}

	// The single gate the rest of the pipeline checks before describing any
	// action on this element
	meta.UseSafeAlternativesOnly = meta.HasClass(types.SafetyFixedHeavyFurniture) ||
		meta.HasClass(types.SafetyLargeMovable)

	return meta
}

// AttachSafety classifies every element and attaches the metadata in place.
// Safety is computed once per request and never recomputed.
func AttachSafety(elements []*types.EnvironmentElement) {
	for _, el := range elements {
		el.Safety = ClassifyElementForSafety(el)
	}
}

func containsAny(label string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(label, t) {
			return true
		}
	}
	return false
}
