package usecase

import (
	"context"
	"fmt"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/service"
)

// AssessRiskUseCase runs a standalone risk assessment without creating an
// application. Used by the quote surface so borrowers can pre-check terms.
type AssessRiskUseCase struct {
	assessor *service.RiskAssessor
	scorer   port.RiskScorer
}

// NewAssessRiskUseCase wires dependencies. scorer may be nil.
func NewAssessRiskUseCase(assessor *service.RiskAssessor, scorer port.RiskScorer) *AssessRiskUseCase {
	return &AssessRiskUseCase{assessor: assessor, scorer: scorer}
}

// Execute scores the supplied inputs. Missing credit score and income fall
// back to the documented defaults before validation.
func (uc *AssessRiskUseCase) Execute(ctx context.Context, req dto.AssessRiskRequest) (dto.RiskAssessmentResponse, error) {
	in := service.RiskInput{
		Amount:       req.Amount,
		TermMonths:   req.TermMonths,
		Purpose:      req.Purpose,
		CreditScore:  req.CreditScore,
		AnnualIncome: req.AnnualIncome,
	}
	if in.CreditScore == 0 {
		in.CreditScore = service.DefaultCreditScore
	}
	if in.AnnualIncome.IsZero() {
		in.AnnualIncome = service.DefaultAnnualIncome
	}

	var (
		result service.RiskResult
		err    error
	)
	if uc.scorer != nil {
		result, err = uc.scorer.Score(ctx, in)
		if err != nil {
			result = service.DegradedResult()
			err = nil
		}
	} else {
		result, err = uc.assessor.Assess(in)
	}
	if err != nil {
		return dto.RiskAssessmentResponse{}, fmt.Errorf("assess risk: %w", err)
	}

	return dto.RiskAssessmentResponse{
		RiskScore:      result.RiskScore,
		RiskLevel:      result.RiskLevel.String(),
		Recommendation: result.Recommendation.String(),
		Factors:        result.Factors,
	}, nil
}
