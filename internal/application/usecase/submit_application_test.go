package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/service"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

func submitRequest() dto.SubmitApplicationRequest {
	return dto.SubmitApplicationRequest{
		ApplicantID:  "applicant-1",
		Amount:       decimal.NewFromInt(20_000),
		TermMonths:   24,
		Purpose:      "home improvement",
		CreditScore:  720,
		AnnualIncome: decimal.NewFromInt(80_000),
	}
}

func TestSubmitApplication_LowRiskAutoApproves(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	pub := &mockPublisher{}
	uc := NewSubmitApplicationUseCase(appRepo, pub, service.NewRiskAssessor(), nil)

	resp, err := uc.Execute(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.Equal(t, valueobject.ApplicationStatusApproved.String(), resp.Status)
	assert.Equal(t, 0, resp.RiskScore)
	assert.Equal(t, "LOW", resp.RiskLevel)
	assert.Equal(t, "APPROVE", resp.Recommendation)
	assert.Empty(t, resp.RiskFactors)
	assert.NotEmpty(t, resp.DecisionReason)

	require.Len(t, appRepo.saved, 1)
	assert.Equal(t, resp.ID, appRepo.saved[0].ID())
	// Submitted, risk-assessed, approved.
	assert.Len(t, pub.published, 3)
}

func TestSubmitApplication_HighRiskAutoRejects(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	pub := &mockPublisher{}
	uc := NewSubmitApplicationUseCase(appRepo, pub, service.NewRiskAssessor(), nil)

	req := submitRequest()
	req.Amount = decimal.NewFromInt(150_000)
	req.TermMonths = 72
	req.CreditScore = 550
	req.AnnualIncome = decimal.NewFromInt(30_000)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, valueobject.ApplicationStatusRejected.String(), resp.Status)
	assert.Equal(t, 115, resp.RiskScore)
	assert.Equal(t, "HIGH", resp.RiskLevel)
	assert.Equal(t, "REJECT", resp.Recommendation)
	assert.Equal(t, []string{
		"High loan amount",
		"Long repayment term",
		"Low credit score",
		"High debt-to-income ratio",
	}, resp.RiskFactors)
}

func TestSubmitApplication_MediumRiskStaysUnderReview(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	pub := &mockPublisher{}
	uc := NewSubmitApplicationUseCase(appRepo, pub, service.NewRiskAssessor(), nil)

	// 55_000 amount (+15), 48 months (+10), 650 score (+20) = 45 -> REVIEW.
	req := submitRequest()
	req.Amount = decimal.NewFromInt(55_000)
	req.TermMonths = 48
	req.CreditScore = 650
	req.AnnualIncome = decimal.NewFromInt(200_000)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, valueobject.ApplicationStatusUnderReview.String(), resp.Status)
	assert.Equal(t, 45, resp.RiskScore)
	assert.Equal(t, "REVIEW", resp.Recommendation)
	assert.Empty(t, resp.DecisionReason)
}

func TestSubmitApplication_AppliesDefaultsForMissingProfile(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	pub := &mockPublisher{}
	uc := NewSubmitApplicationUseCase(appRepo, pub, service.NewRiskAssessor(), nil)

	req := submitRequest()
	req.CreditScore = 0
	req.AnnualIncome = decimal.Decimal{}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Defaults 650 / 50_000: fair credit score (+20) is the only factor for
	// a 20_000/24mo request.
	assert.Equal(t, 20, resp.RiskScore)
	assert.Equal(t, []string{"Fair credit score"}, resp.RiskFactors)

	require.Len(t, appRepo.saved, 1)
	assert.Equal(t, service.DefaultCreditScore, appRepo.saved[0].CreditScore())
	assert.True(t, service.DefaultAnnualIncome.Equal(appRepo.saved[0].AnnualIncome()))
}

func TestSubmitApplication_ExternalScorerResultWins(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	pub := &mockPublisher{}
	scorer := &mockScorer{
		scoreFn: func(_ context.Context, _ service.RiskInput) (service.RiskResult, error) {
			return service.RiskResult{
				RiskScore:      10,
				RiskLevel:      valueobject.RiskLevelLow,
				Recommendation: valueobject.RecommendationApprove,
				Factors:        []string{},
			}, nil
		},
	}
	uc := NewSubmitApplicationUseCase(appRepo, pub, service.NewRiskAssessor(), scorer)

	// Inputs that would score 115 locally.
	req := submitRequest()
	req.Amount = decimal.NewFromInt(150_000)
	req.TermMonths = 72
	req.CreditScore = 550
	req.AnnualIncome = decimal.NewFromInt(30_000)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 10, resp.RiskScore)
	assert.Equal(t, valueobject.ApplicationStatusApproved.String(), resp.Status)
}

func TestSubmitApplication_ScorerFailureDegradesToReview(t *testing.T) {
	appRepo := &mockApplicationRepo{}
	pub := &mockPublisher{}
	scorer := &mockScorer{
		scoreFn: func(_ context.Context, _ service.RiskInput) (service.RiskResult, error) {
			return service.RiskResult{}, errors.New("connection refused")
		},
	}
	uc := NewSubmitApplicationUseCase(appRepo, pub, service.NewRiskAssessor(), scorer)

	resp, err := uc.Execute(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.Equal(t, 75, resp.RiskScore)
	assert.Equal(t, "HIGH", resp.RiskLevel)
	assert.Equal(t, "REVIEW", resp.Recommendation)
	assert.Equal(t, []string{"Assessment service unavailable"}, resp.RiskFactors)
	assert.Equal(t, valueobject.ApplicationStatusUnderReview.String(), resp.Status)
}

func TestSubmitApplication_InvalidInputRejected(t *testing.T) {
	uc := NewSubmitApplicationUseCase(&mockApplicationRepo{}, &mockPublisher{}, service.NewRiskAssessor(), nil)

	req := submitRequest()
	req.Amount = decimal.NewFromInt(-5)

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrInvalidArgument)
}

func TestSubmitApplication_SaveFailurePropagates(t *testing.T) {
	saveErr := errors.New("database down")
	appRepo := &mockApplicationRepo{
		saveFn: func(context.Context, model.LoanApplication) error { return saveErr },
	}
	uc := NewSubmitApplicationUseCase(appRepo, &mockPublisher{}, service.NewRiskAssessor(), nil)

	_, err := uc.Execute(context.Background(), submitRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)
}
