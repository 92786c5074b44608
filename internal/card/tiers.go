package card

// Tier is the three-level visibility classification shared by the report cards.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// MatrixTier is the finer five-level classification used by the matrix grid.
type MatrixTier string

const (
	MatrixGreenStrong MatrixTier = "green-500"
	MatrixGreen       MatrixTier = "green-400"
	MatrixYellow      MatrixTier = "yellow"
	MatrixOrange      MatrixTier = "orange"
	MatrixRed         MatrixTier = "red"
)

// VisibilityTier classifies a 0-100 visibility percentage.
// Thresholds are fixed presentation policy: >=50 high, >=30 medium, else low.
func VisibilityTier(v float64) Tier {
	switch {
	case v >= 50:
		return TierHigh
	case v >= 30:
		return TierMedium
	default:
		return TierLow
	}
}

// ScoreTier classifies a matrix cell score into its five-tier bucket.
func ScoreTier(score float64) MatrixTier {
	switch {
	case score >= 80:
		return MatrixGreenStrong
	case score >= 60:
		return MatrixGreen
	case score >= 40:
		return MatrixYellow
	case score >= 20:
		return MatrixOrange
	default:
		return MatrixRed
	}
}
