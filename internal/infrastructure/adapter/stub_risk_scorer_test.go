package adapter

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/service"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

var _ port.RiskScorer = (*StubRiskScorer)(nil)

func TestStubRiskScorer_MatchesLocalEngine(t *testing.T) {
	stub := NewStubRiskScorer()
	engine := service.NewRiskAssessor()

	in := service.RiskInput{
		Amount:       decimal.NewFromInt(150_000),
		TermMonths:   72,
		CreditScore:  550,
		AnnualIncome: decimal.NewFromInt(30_000),
	}

	got, err := stub.Score(context.Background(), in)
	require.NoError(t, err)
	want, err := engine.Assess(in)
	require.NoError(t, err)

	assert.Equal(t, want.RiskScore, got.RiskScore)
	assert.Equal(t, want.RiskLevel, got.RiskLevel)
	assert.Equal(t, want.Recommendation, got.Recommendation)
	assert.Equal(t, want.Factors, got.Factors)
}

func TestStubRiskScorer_PropagatesValidation(t *testing.T) {
	stub := NewStubRiskScorer()

	_, err := stub.Score(context.Background(), service.RiskInput{
		Amount:       decimal.Zero,
		TermMonths:   12,
		CreditScore:  700,
		AnnualIncome: decimal.NewFromInt(50_000),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrInvalidArgument)
}
