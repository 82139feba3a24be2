package safety

// AgeFeasibility bounds the physical demands an activity may place on a
// child of a given age. Tiers are ordinal: 1 is the lowest demand the
// youngest band can handle, 4 the highest.
type AgeFeasibility struct {
	MaxStrengthDemand     int
	MaxBalanceComplexity  int
	MaxMotorPlanningLoad  int
	AllowElevatedSurfaces bool
	AllowUnstableSurfaces bool
}

// GetAgeFeasibility maps age to its feasibility band. Capability is
// monotonically non-decreasing with age. AllowUnstableSurfaces stays false
// in every band: no current activity should ever direct a child onto an
// unstable surface.
func GetAgeFeasibility(age int) AgeFeasibility {
	switch {
	case age < 3:
		return AgeFeasibility{
			MaxStrengthDemand:     1,
			MaxBalanceComplexity:  1,
			MaxMotorPlanningLoad:  1,
			AllowElevatedSurfaces: false,
			AllowUnstableSurfaces: false,
		}
	case age <= 4:
		return AgeFeasibility{
			MaxStrengthDemand:     2,
			MaxBalanceComplexity:  2,
			MaxMotorPlanningLoad:  2,
			AllowElevatedSurfaces: false,
			AllowUnstableSurfaces: false,
		}
	case age <= 7:
		return AgeFeasibility{
			MaxStrengthDemand:     3,
			MaxBalanceComplexity:  3,
			MaxMotorPlanningLoad:  3,
			AllowElevatedSurfaces: true,
			AllowUnstableSurfaces: false,
		}
	default:
		return AgeFeasibility{
			MaxStrengthDemand:     4,
			MaxBalanceComplexity:  4,
			MaxMotorPlanningLoad:  4,
			AllowElevatedSurfaces: true,
			AllowUnstableSurfaces: false,
		}
	}
}
