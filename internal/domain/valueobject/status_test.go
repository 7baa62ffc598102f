package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationStatus(t *testing.T) {
	for _, want := range []ApplicationStatus{
		ApplicationStatusSubmitted,
		ApplicationStatusUnderReview,
		ApplicationStatusApproved,
		ApplicationStatusRejected,
		ApplicationStatusDisbursed,
	} {
		got, err := NewApplicationStatus(want.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	}

	_, err := NewApplicationStatus("PENDING")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewApplicationStatus("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewLoanStatus(t *testing.T) {
	for _, want := range []LoanStatus{
		LoanStatusActive,
		LoanStatusDelinquent,
		LoanStatusDefault,
		LoanStatusPaidOff,
	} {
		got, err := NewLoanStatus(want.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	}

	_, err := NewLoanStatus("CLOSED")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewRiskLevel(t *testing.T) {
	for _, want := range []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh} {
		got, err := NewRiskLevel(want.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	}

	_, err := NewRiskLevel("EXTREME")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewRecommendation(t *testing.T) {
	for _, want := range []Recommendation{
		RecommendationApprove,
		RecommendationReview,
		RecommendationReject,
	} {
		got, err := NewRecommendation(want.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	}

	_, err := NewRecommendation("DENY")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestZeroValuesAreZero(t *testing.T) {
	assert.True(t, ApplicationStatus{}.IsZero())
	assert.True(t, LoanStatus{}.IsZero())
	assert.True(t, RiskLevel{}.IsZero())
	assert.True(t, Recommendation{}.IsZero())

	assert.False(t, ApplicationStatusSubmitted.IsZero())
	assert.False(t, RiskLevelLow.IsZero())
}
