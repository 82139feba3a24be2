package types

// TherapeuticFocus is one of the six fixed skill categories an activity targets.
type TherapeuticFocus string

const (
	FocusSensoryRegulation     TherapeuticFocus = "sensory_regulation"
	FocusMotorPlanning         TherapeuticFocus = "motor_planning"
	FocusExecutiveFunction     TherapeuticFocus = "executive_function"
	FocusFineMotor             TherapeuticFocus = "fine_motor"
	FocusGrossMotor            TherapeuticFocus = "gross_motor"
	FocusBilateralCoordination TherapeuticFocus = "bilateral_coordination"
)

// AllFocuses lists every therapeutic focus in a stable order.
var AllFocuses = []TherapeuticFocus{
	FocusSensoryRegulation,
	FocusMotorPlanning,
	FocusExecutiveFunction,
	FocusFineMotor,
	FocusGrossMotor,
	FocusBilateralCoordination,
}

// ObjectSafetyClass describes the physical-safety category of an element.
type ObjectSafetyClass string

const (
	SafetyFixedHeavyFurniture ObjectSafetyClass = "fixed_heavy_furniture"
	SafetyLargeMovable        ObjectSafetyClass = "large_movable"
	SafetySmallManipulable    ObjectSafetyClass = "small_manipulable"
	SafetyElevatedUnstable    ObjectSafetyClass = "elevated_unstable"
	SafetyFloorSafe           ObjectSafetyClass = "floor_safe"
)

// ForbiddenAction is an action that must never be suggested for an element.
type ForbiddenAction string

const (
	ForbidLift          ForbiddenAction = "lift"
	ForbidDrag          ForbiddenAction = "drag"
	ForbidPush          ForbiddenAction = "push"
	ForbidHighForce     ForbiddenAction = "high_force"
	ForbidClimbUnstable ForbiddenAction = "climb_unstable"
	ForbidJumpFromHigh  ForbiddenAction = "jump_from_height"
)

// SafeActionHint is a non-contact interaction pattern that stays safe
// around heavy or fixed elements.
type SafeActionHint string

const (
	HintCrawlAround            SafeActionHint = "crawl_around"
	HintNavigateBetween        SafeActionHint = "navigate_between"
	HintReachOver              SafeActionHint = "reach_over"
	HintUseCushionsOrFloor     SafeActionHint = "use_cushions_or_floor"
	HintSupportedWeightBearing SafeActionHint = "supported_weight_bearing"
)

// Position is the approximate placement of an element in the scene.
type Position string

const (
	PositionCentral     Position = "central"
	PositionAgainstWall Position = "against_wall"
	PositionCorner      Position = "corner"
	PositionEdge        Position = "edge"
	PositionOpen        Position = "open"
)

// Height is the working height band of an element.
type Height string

const (
	HeightFloor    Height = "floor"
	HeightLow      Height = "low"
	HeightMid      Height = "mid"
	HeightTable    Height = "table"
	HeightElevated Height = "elevated"
)

// Stability describes whether an element moves when a child interacts with it.
type Stability string

const (
	StabilityStable Stability = "stable"
	StabilityMobile Stability = "mobile"
	StabilityFixed  Stability = "fixed"
)

// Space is the free-space rating of the scene slot an element occupies.
type Space string

const (
	SpaceSpacious    Space = "spacious"
	SpaceModerate    Space = "moderate"
	SpaceConstrained Space = "constrained"
)

// SensoryChannel is a sensory system an element can engage.
type SensoryChannel string

const (
	SensoryTactile        SensoryChannel = "tactile"
	SensoryVisual         SensoryChannel = "visual"
	SensoryVestibular     SensoryChannel = "vestibular"
	SensoryProprioceptive SensoryChannel = "proprioceptive"
)

// Audience selects the register of the generated Arabic text.
type Audience string

const (
	AudienceParent    Audience = "parent"
	AudienceTherapist Audience = "therapist"
)

// RawDetection is one raw label/confidence pair from the vision model.
type RawDetection struct {
	ClassName   string  `json:"class_name"`
	Probability float64 `json:"probability"`
}

// ReasonedElement is the real-world interpretation of one detected label.
type ReasonedElement struct {
	RawLabel                  string  `json:"raw_label"`
	ElementNameAr             string  `json:"element_name_ar"`
	FunctionalCategory        string  `json:"functional_category"`
	ContextualInterpretation  string  `json:"contextual_interpretation"`
	ConfidenceAfterProcessing float64 `json:"confidence_after_processing"`
}

// SafetyMetadata holds the safety classification computed once per element.
type SafetyMetadata struct {
	Classes                 []ObjectSafetyClass `json:"classes"`
	ForbiddenActions        []ForbiddenAction   `json:"forbidden_actions"`
	SafeActionHints         []SafeActionHint    `json:"safe_action_hints"`
	UseSafeAlternativesOnly bool                `json:"use_safe_alternatives_only"`
}

// HasClass reports whether the metadata carries the given safety class.
func (m *SafetyMetadata) HasClass(class ObjectSafetyClass) bool {
	if m == nil {
		return false
	}
	for _, c := range m.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Forbids reports whether the metadata forbids the given action.
func (m *SafetyMetadata) Forbids(action ForbiddenAction) bool {
	if m == nil {
		return false
	}
	for _, a := range m.ForbiddenActions {
		if a == action {
			return true
		}
	}
	return false
}

// EnvironmentElement is a single physical object inferred from one detected
// label, enriched with spatial and safety attributes. Elements are created
// once per request, mutated once to attach Safety, then read-only.
type EnvironmentElement struct {
	ObjectLabel string             `json:"object_label"`
	Position    Position           `json:"position"`
	Height      Height             `json:"height"`
	Stability   Stability          `json:"stability"`
	Space       Space              `json:"space"`
	Texture     string             `json:"texture"`
	Motor       []TherapeuticFocus `json:"motor"`
	Sensory     []SensoryChannel   `json:"sensory"`
	Risks       []string           `json:"risks"`
	Safety      *SafetyMetadata    `json:"safety,omitempty"`
}

// Supports reports whether the element's affordances include the focus.
func (e *EnvironmentElement) Supports(focus TherapeuticFocus) bool {
	for _, f := range e.Motor {
		if f == focus {
			return true
		}
	}
	return false
}

// ActivityCandidate pairs an element with one therapeutic focus.
type ActivityCandidate struct {
	ObjectLabel string              `json:"object_label"`
	Focus       TherapeuticFocus    `json:"therapeutic_focus"`
	Element     *EnvironmentElement `json:"element"`
}

// PairKey identifies the (label, focus) pairing for duplicate tracking.
func (c ActivityCandidate) PairKey() string {
	return c.ObjectLabel + "|" + string(c.Focus)
}

// RefinedActivity is a finalized candidate plus the deterministic seeds the
// text formatter uses to pick stable phrasing variants.
type RefinedActivity struct {
	ActivityCandidate
	SpecificSkillSeed int `json:"specific_skill_seed"`
	HumanizeOffset    int `json:"humanize_offset"`
}
