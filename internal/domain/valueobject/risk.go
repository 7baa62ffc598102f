package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskLevel – immutable value object
// ---------------------------------------------------------------------------

// RiskLevel is the three-tier categorisation of a risk score.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow    = "LOW"
	riskLevelMedium = "MEDIUM"
	riskLevelHigh   = "HIGH"
)

var (
	RiskLevelLow    = RiskLevel{value: riskLevelLow}
	RiskLevelMedium = RiskLevel{value: riskLevelMedium}
	RiskLevelHigh   = RiskLevel{value: riskLevelHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLevelLow:    RiskLevelLow,
	riskLevelMedium: RiskLevelMedium,
	riskLevelHigh:   RiskLevelHigh,
}

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("%w: unknown risk level %q", ErrInvalidArgument, s)
	}
	return v, nil
}

// String returns the string representation of the level.
func (l RiskLevel) String() string { return l.value }

// IsZero returns true if the level has not been initialised.
func (l RiskLevel) IsZero() bool { return l.value == "" }

// Equal returns true when both levels carry the same value.
func (l RiskLevel) Equal(other RiskLevel) bool { return l.value == other.value }

// ---------------------------------------------------------------------------
// Recommendation – immutable value object
// ---------------------------------------------------------------------------

// Recommendation is the decision suggested by the risk assessor.
type Recommendation struct {
	value string
}

const (
	recommendationApprove = "APPROVE"
	recommendationReview  = "REVIEW"
	recommendationReject  = "REJECT"
)

var (
	RecommendationApprove = Recommendation{value: recommendationApprove}
	RecommendationReview  = Recommendation{value: recommendationReview}
	RecommendationReject  = Recommendation{value: recommendationReject}
)

var validRecommendations = map[string]Recommendation{
	recommendationApprove: RecommendationApprove,
	recommendationReview:  RecommendationReview,
	recommendationReject:  RecommendationReject,
}

// NewRecommendation creates a Recommendation from a raw string.
func NewRecommendation(s string) (Recommendation, error) {
	v, ok := validRecommendations[s]
	if !ok {
		return Recommendation{}, fmt.Errorf("%w: unknown recommendation %q", ErrInvalidArgument, s)
	}
	return v, nil
}

// String returns the string representation of the recommendation.
func (r Recommendation) String() string { return r.value }

// IsZero returns true if the recommendation has not been initialised.
func (r Recommendation) IsZero() bool { return r.value == "" }

// Equal returns true when both recommendations carry the same value.
func (r Recommendation) Equal(other Recommendation) bool { return r.value == other.value }
