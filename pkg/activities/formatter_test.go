package activities

import (
	"strings"
	"testing"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

func refined(el *types.EnvironmentElement, focus types.TherapeuticFocus, seed, offset int) types.RefinedActivity {
	return types.RefinedActivity{
		ActivityCandidate: types.ActivityCandidate{
			ObjectLabel: el.ObjectLabel,
			Focus:       focus,
			Element:     el,
		},
		SpecificSkillSeed: seed,
		HumanizeOffset:    offset,
	}
}

func TestFormatActivityParentRegister(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusGrossMotor)
	f := NewFormatter(map[string]string{"ball": "كرة"})

	out := f.FormatActivity(refined(ball, types.FocusGrossMotor, 0, 0), types.AudienceParent)

	if !strings.HasPrefix(out, "جرب مع طفلك:") {
		t.Errorf("Expected parent register prefix, got %q", out)
	}
	if !strings.Contains(out, "كرة") {
		t.Errorf("Expected Arabic display name in output, got %q", out)
	}
}

func TestFormatActivityTherapistRegister(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusGrossMotor)
	f := NewFormatter(map[string]string{"ball": "كرة"})

	out := f.FormatActivity(refined(ball, types.FocusGrossMotor, 0, 0), types.AudienceTherapist)

	if !strings.HasPrefix(out, "هدف علاجي") {
		t.Errorf("Expected therapist register prefix, got %q", out)
	}
	if !strings.Contains(out, "المهارات الحركية الكبيرة") {
		t.Errorf("Expected clinical focus name in output, got %q", out)
	}
}

func TestFormatActivityDeterministic(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusGrossMotor)
	f := NewFormatter(map[string]string{"ball": "كرة"})
	a := refined(ball, types.FocusGrossMotor, 3, 1)

	first := f.FormatActivity(a, types.AudienceParent)
	second := f.FormatActivity(a, types.AudienceParent)

	if first != second {
		t.Errorf("Same activity rendered differently: %q vs %q", first, second)
	}
}

func TestFormatActivitySeedsSelectVariants(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusGrossMotor)
	f := NewFormatter(map[string]string{"ball": "كرة"})

	variants := map[string]bool{}
	for seed := 0; seed < 3; seed++ {
		variants[f.FormatActivity(refined(ball, types.FocusGrossMotor, seed, 0), types.AudienceParent)] = true
	}

	if len(variants) != 3 {
		t.Errorf("Expected 3 distinct phrasing variants, got %d", len(variants))
	}
}

func TestFormatActivitySafeAlternativePhrasing(t *testing.T) {
	sofa := element("sofa", types.SpaceSpacious, types.FocusGrossMotor)
	sofa.Safety = &types.SafetyMetadata{
		Classes:                 []types.ObjectSafetyClass{types.SafetyFixedHeavyFurniture},
		UseSafeAlternativesOnly: true,
	}
	free := element("sofa", types.SpaceSpacious, types.FocusGrossMotor)
	f := NewFormatter(map[string]string{"sofa": "أريكة"})

	gated := f.FormatActivity(refined(sofa, types.FocusGrossMotor, 0, 0), types.AudienceParent)
	normal := f.FormatActivity(refined(free, types.FocusGrossMotor, 0, 0), types.AudienceParent)

	if gated == normal {
		t.Error("Expected safe-alternative phrasing to differ from the normal template")
	}
	// Variant 0 of the safe gross-motor set phrases crawling around the
	// element instead of acting on it
	if !strings.Contains(gated, "الزحف") {
		t.Errorf("Expected crawling-around phrasing, got %q", gated)
	}
}

func TestFormatActivityFallsBackToRawLabel(t *testing.T) {
	widget := element("widget", types.SpaceSpacious, types.FocusFineMotor)
	f := NewFormatter(nil)

	out := f.FormatActivity(refined(widget, types.FocusFineMotor, 0, 0), types.AudienceParent)

	if !strings.Contains(out, "widget") {
		t.Errorf("Expected raw label fallback, got %q", out)
	}
}

func TestFormatAll(t *testing.T) {
	ball := element("ball", types.SpaceSpacious, types.FocusGrossMotor)
	rug := element("rug", types.SpaceSpacious, types.FocusSensoryRegulation)
	f := NewFormatter(map[string]string{"ball": "كرة", "rug": "سجادة"})

	acts := []types.RefinedActivity{
		refined(ball, types.FocusGrossMotor, 0, 0),
		refined(rug, types.FocusSensoryRegulation, 1, 0),
	}
	out := f.FormatAll(acts, types.AudienceParent)

	if len(out) != 2 {
		t.Fatalf("Expected 2 suggestions, got %d", len(out))
	}
	for i, s := range out {
		if s == "" {
			t.Errorf("Suggestion %d is empty", i)
		}
	}
}
