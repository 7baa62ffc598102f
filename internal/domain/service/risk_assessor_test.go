package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

func input(amount string, months int, score int, income string) RiskInput {
	return RiskInput{
		Amount:       decimal.RequireFromString(amount),
		TermMonths:   months,
		CreditScore:  score,
		AnnualIncome: decimal.RequireFromString(income),
	}
}

func TestAssess_CleanProfileScoresZero(t *testing.T) {
	a := NewRiskAssessor()

	// 20_000 over 24 months, strong credit, comfortable income: no factor fires.
	result, err := a.Assess(input("20000", 24, 720, "80000"))
	require.NoError(t, err)

	assert.Equal(t, 0, result.RiskScore)
	assert.Equal(t, valueobject.RiskLevelLow, result.RiskLevel)
	assert.Equal(t, valueobject.RecommendationApprove, result.Recommendation)
	assert.Empty(t, result.Factors)
}

func TestAssess_AllFactorsFire(t *testing.T) {
	a := NewRiskAssessor()

	// 150_000 over 72 months, weak credit, low income: every group at maximum.
	result, err := a.Assess(input("150000", 72, 550, "30000"))
	require.NoError(t, err)

	assert.Equal(t, 115, result.RiskScore)
	assert.Equal(t, valueobject.RiskLevelHigh, result.RiskLevel)
	assert.Equal(t, valueobject.RecommendationReject, result.Recommendation)
	assert.Equal(t, []string{
		"High loan amount",
		"Long repayment term",
		"Low credit score",
		"High debt-to-income ratio",
	}, result.Factors)
}

func TestAssess_MediumTiers(t *testing.T) {
	a := NewRiskAssessor()

	// 55_000 (+15), 48 months (+10), 650 credit (+20), negligible DTI.
	result, err := a.Assess(input("55000", 48, 650, "200000"))
	require.NoError(t, err)

	assert.Equal(t, 45, result.RiskScore)
	assert.Equal(t, valueobject.RiskLevelMedium, result.RiskLevel)
	assert.Equal(t, valueobject.RecommendationReview, result.Recommendation)
	assert.Equal(t, []string{
		"Medium loan amount",
		"Medium repayment term",
		"Fair credit score",
	}, result.Factors)
}

func TestAssess_ThresholdsAreExclusive(t *testing.T) {
	a := NewRiskAssessor()

	// Values sitting exactly on a threshold do not trip it.
	cases := []struct {
		name string
		in   RiskInput
		want int
	}{
		{"amount exactly 100000 scores medium not high", input("100000", 12, 750, "1000000"), 15},
		{"amount exactly 50000 scores nothing", input("50000", 12, 750, "1000000"), 0},
		{"term exactly 60 scores medium not long", input("1000", 60, 750, "1000000"), 10},
		{"term exactly 36 scores nothing", input("1000", 36, 750, "1000000"), 0},
		{"credit exactly 600 scores fair not low", input("1000", 12, 600, "1000000"), 20},
		{"credit exactly 700 scores nothing", input("1000", 12, 700, "1000000"), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := a.Assess(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.RiskScore)
		})
	}
}

func TestAssess_DebtToIncomeRatio(t *testing.T) {
	a := NewRiskAssessor()

	// DTI = (amount * 12) / (termMonths * annualIncome).

	// 10_000 * 12 / (12 * 100_000) = 0.01: no factor.
	result, err := a.Assess(input("10000", 12, 750, "100000"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.RiskScore)

	// 35_000 * 12 / (12 * 100_000) = 0.35: moderate.
	result, err = a.Assess(input("35000", 12, 750, "100000"))
	require.NoError(t, err)
	assert.Equal(t, 15, result.RiskScore)
	assert.Equal(t, []string{"Moderate debt-to-income ratio"}, result.Factors)

	// 45_000 * 12 / (12 * 100_000) = 0.45: high.
	result, err = a.Assess(input("45000", 12, 750, "100000"))
	require.NoError(t, err)
	assert.Equal(t, 25, result.RiskScore)
	assert.Equal(t, []string{"High debt-to-income ratio"}, result.Factors)

	// Exactly 0.40 does not trip the high band.
	result, err = a.Assess(input("40000", 12, 750, "100000"))
	require.NoError(t, err)
	assert.Equal(t, 15, result.RiskScore)
}

func TestAssess_ScoreMonotonicInAmount(t *testing.T) {
	a := NewRiskAssessor()

	// With term, credit, and income fixed, a larger amount never lowers the
	// score (both the amount bands and the DTI bands move with it).
	amounts := []string{"10000", "40000", "50001", "75000", "100001", "150000"}
	prev := -1
	for _, amount := range amounts {
		result, err := a.Assess(input(amount, 12, 750, "100000"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.RiskScore, prev, "amount %s", amount)
		prev = result.RiskScore
	}
}

func TestAssess_ScoreMonotonicInCreditScore(t *testing.T) {
	a := NewRiskAssessor()

	// A better credit score never raises the risk score.
	scores := []int{300, 550, 600, 650, 700, 750, 850}
	prev := 1 << 30
	for _, credit := range scores {
		result, err := a.Assess(input("20000", 24, credit, "80000"))
		require.NoError(t, err)
		assert.LessOrEqual(t, result.RiskScore, prev, "credit score %d", credit)
		prev = result.RiskScore
	}
}

func TestAssess_Idempotent(t *testing.T) {
	a := NewRiskAssessor()
	in := input("55000", 48, 650, "200000")

	first, err := a.Assess(in)
	require.NoError(t, err)
	second, err := a.Assess(in)
	require.NoError(t, err)

	assert.Equal(t, first.RiskScore, second.RiskScore)
	assert.Equal(t, first.RiskLevel, second.RiskLevel)
	assert.Equal(t, first.Recommendation, second.Recommendation)
	assert.Equal(t, first.Factors, second.Factors)
}

func TestClassify_TierBoundaries(t *testing.T) {
	cases := []struct {
		score int
		level valueobject.RiskLevel
		rec   valueobject.Recommendation
	}{
		{0, valueobject.RiskLevelLow, valueobject.RecommendationApprove},
		{30, valueobject.RiskLevelLow, valueobject.RecommendationApprove},
		{31, valueobject.RiskLevelMedium, valueobject.RecommendationReview},
		{60, valueobject.RiskLevelMedium, valueobject.RecommendationReview},
		{61, valueobject.RiskLevelHigh, valueobject.RecommendationReject},
		{115, valueobject.RiskLevelHigh, valueobject.RecommendationReject},
	}

	for _, tc := range cases {
		level, rec := classify(tc.score)
		assert.Equal(t, tc.level, level, "score %d", tc.score)
		assert.Equal(t, tc.rec, rec, "score %d", tc.score)
	}
}

func TestAssess_InvalidInput(t *testing.T) {
	a := NewRiskAssessor()

	cases := []struct {
		name string
		in   RiskInput
	}{
		{"zero amount", input("0", 12, 700, "50000")},
		{"zero term", input("1000", 0, 700, "50000")},
		{"credit score below range", input("1000", 12, 299, "50000")},
		{"credit score above range", input("1000", 12, 851, "50000")},
		{"zero income", input("1000", 12, 700, "0")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.Assess(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, valueobject.ErrInvalidArgument)
		})
	}
}

func TestDegradedResult(t *testing.T) {
	result := DegradedResult()

	assert.Equal(t, 75, result.RiskScore)
	assert.Equal(t, valueobject.RiskLevelHigh, result.RiskLevel)
	assert.Equal(t, valueobject.RecommendationReview, result.Recommendation)
	assert.Equal(t, []string{"Assessment service unavailable"}, result.Factors)
}
