package session

// Grade is the qualitative tier attached to a final percentage score.
type Grade string

const (
	GradePerfect       Grade = "perfect"
	GradeGreat         Grade = "great"
	GradeGood          Grade = "good"
	GradeFair          Grade = "fair"
	GradeNeedsPractice Grade = "needs practice"
)

// GradeFor returns the grade for a percentage score.
func GradeFor(percent int) Grade {
	switch {
	case percent >= 100:
		return GradePerfect
	case percent >= 80:
		return GradeGreat
	case percent >= 60:
		return GradeGood
	case percent >= 40:
		return GradeFair
	default:
		return GradeNeedsPractice
	}
}

// DisplayName returns a human-readable label for the grade.
func (g Grade) DisplayName() string {
	switch g {
	case GradePerfect:
		return "Perfect"
	case GradeGreat:
		return "Great"
	case GradeGood:
		return "Good"
	case GradeFair:
		return "Fair"
	case GradeNeedsPractice:
		return "Needs practice"
	default:
		return string(g)
	}
}
