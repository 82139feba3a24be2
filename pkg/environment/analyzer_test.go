package environment

import (
	"testing"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

func validated(labels ...string) []types.ReasonedElement {
	out := make([]types.ReasonedElement, len(labels))
	for i, l := range labels {
		out[i] = types.ReasonedElement{RawLabel: l, ConfidenceAfterProcessing: 0.8}
	}
	return out
}

func TestAnalyzeEnvironmentSofa(t *testing.T) {
	out := AnalyzeEnvironment(validated("sofa"))

	if len(out) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(out))
	}
	el := out[0]
	if el.Height != types.HeightLow {
		t.Errorf("Expected low height for sofa, got %s", el.Height)
	}
	if el.Texture != "soft" {
		t.Errorf("Expected soft texture for sofa, got %s", el.Texture)
	}
	if el.Stability != types.StabilityStable {
		t.Errorf("Expected stable sofa, got %s", el.Stability)
	}
	if len(el.Motor) == 0 {
		t.Error("Expected motor affordances for sofa")
	}
}

func TestAnalyzeEnvironmentStairs(t *testing.T) {
	out := AnalyzeEnvironment(validated("stairs"))

	if len(out) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(out))
	}
	el := out[0]
	if el.Height != types.HeightElevated {
		t.Errorf("Expected elevated height for stairs, got %s", el.Height)
	}
	if el.Stability != types.StabilityFixed {
		t.Errorf("Expected fixed stability for stairs, got %s", el.Stability)
	}
	if len(el.Risks) == 0 {
		t.Error("Expected fall risk noted for stairs")
	}

	// Elevated elements engage the vestibular and proprioceptive channels
	hasVestibular := false
	for _, s := range el.Sensory {
		if s == types.SensoryVestibular {
			hasVestibular = true
		}
	}
	if !hasVestibular {
		t.Error("Expected vestibular channel for stairs")
	}
}

func TestAnalyzeEnvironmentDefaults(t *testing.T) {
	out := AnalyzeEnvironment(validated("mirror"))

	if len(out) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(out))
	}
	el := out[0]
	if el.Height != types.HeightMid {
		t.Errorf("Expected default mid height, got %s", el.Height)
	}
	if el.Stability != types.StabilityStable {
		t.Errorf("Expected default stable, got %s", el.Stability)
	}
	if len(el.Motor) == 0 {
		t.Error("Expected non-empty motor affordances for unknown labels")
	}
}

func TestAnalyzeEnvironmentSmallPlayDefaultsToFloor(t *testing.T) {
	out := AnalyzeEnvironment(validated("toy"))

	if len(out) != 1 || out[0].Height != types.HeightFloor {
		t.Errorf("Expected floor height for small play objects, got %v", out)
	}
}

func TestAnalyzeEnvironmentSpaceBySlot(t *testing.T) {
	out := AnalyzeEnvironment(validated("ball", "cup", "book", "pillow", "basket"))

	if len(out) != 5 {
		t.Fatalf("Expected 5 elements, got %d", len(out))
	}
	wantSpace := []types.Space{
		types.SpaceSpacious, types.SpaceSpacious,
		types.SpaceModerate, types.SpaceModerate,
		types.SpaceConstrained,
	}
	for i, el := range out {
		if el.Space != wantSpace[i] {
			t.Errorf("Slot %d: expected space %s, got %s", i, wantSpace[i], el.Space)
		}
	}
}

func TestAnalyzeEnvironmentDedupesAndCaps(t *testing.T) {
	out := AnalyzeEnvironment(validated("ball", "ball", "cup", "book", "pillow", "basket", "box", "tray"))

	if len(out) != MaxEnvironmentElements {
		t.Errorf("Expected cap at %d elements, got %d", MaxEnvironmentElements, len(out))
	}
	seen := map[string]bool{}
	for _, el := range out {
		if seen[el.ObjectLabel] {
			t.Errorf("Duplicate element %q", el.ObjectLabel)
		}
		seen[el.ObjectLabel] = true
	}
}

func TestAnalyzeEnvironmentEmptyInput(t *testing.T) {
	if out := AnalyzeEnvironment(nil); len(out) != 0 {
		t.Errorf("Expected no elements for empty input, got %v", out)
	}
}
