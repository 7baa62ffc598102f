package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/loanbridge/origination-service/internal/application/dto"
	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/service"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// SubmitApplicationUseCase orchestrates new application submission, risk
// assessment, and the resulting decision.
type SubmitApplicationUseCase struct {
	appRepo   port.LoanApplicationRepository
	publisher port.EventPublisher
	assessor  *service.RiskAssessor
	// scorer is the optional external model. Nil means the local assessor is
	// authoritative; non-nil means its failure triggers the fail-closed path.
	scorer port.RiskScorer
}

// NewSubmitApplicationUseCase wires dependencies. scorer may be nil.
func NewSubmitApplicationUseCase(
	appRepo port.LoanApplicationRepository,
	publisher port.EventPublisher,
	assessor *service.RiskAssessor,
	scorer port.RiskScorer,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		appRepo:   appRepo,
		publisher: publisher,
		assessor:  assessor,
		scorer:    scorer,
	}
}

// Execute creates, risk-assesses, and persists a loan application.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// Default substitution happens here, at the call boundary, never inside
	// the scoring engine.
	creditScore := req.CreditScore
	if creditScore == 0 {
		creditScore = service.DefaultCreditScore
	}
	income := req.AnnualIncome
	if income.IsZero() {
		income = service.DefaultAnnualIncome
	}

	app, err := model.NewLoanApplication(
		req.ApplicantID, req.Amount, req.TermMonths, req.Purpose,
		creditScore, income, now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	app, err = app.SubmitForReview(now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("submit for review: %w", err)
	}

	result, err := uc.assess(ctx, app.RiskInput())
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("assess risk: %w", err)
	}

	app, err = app.RecordAssessment(result, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("record assessment: %w", err)
	}

	app, err = uc.decide(app, result, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return ToApplicationResponse(app), nil
}

// assess runs the local scoring engine, or the external scorer when one is
// configured. An external scorer failure degrades to the conservative
// fail-closed result rather than surfacing an error: a review-leaning decision
// keeps the pipeline moving, a silent approve does not.
func (uc *SubmitApplicationUseCase) assess(ctx context.Context, in service.RiskInput) (service.RiskResult, error) {
	if uc.scorer == nil {
		return uc.assessor.Assess(in)
	}
	result, err := uc.scorer.Score(ctx, in)
	if err != nil {
		return service.DegradedResult(), nil
	}
	return result, nil
}

// decide applies the assessment's recommendation to the aggregate. REVIEW
// leaves the application under review for a loan officer.
func (uc *SubmitApplicationUseCase) decide(
	app model.LoanApplication,
	result service.RiskResult,
	now time.Time,
) (model.LoanApplication, error) {
	switch {
	case result.Recommendation.Equal(valueobject.RecommendationApprove):
		return app.Approve(fmt.Sprintf("risk score %d within approval threshold", result.RiskScore), now)
	case result.Recommendation.Equal(valueobject.RecommendationReject):
		return app.Reject(fmt.Sprintf("risk score %d above rejection threshold", result.RiskScore), now)
	default:
		// Manual review: the application stays UNDER_REVIEW.
		return app, nil
	}
}

// ToApplicationResponse converts an aggregate into its transport shape.
func ToApplicationResponse(app model.LoanApplication) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:             app.ID(),
		ApplicantID:    app.ApplicantID(),
		Amount:         app.Amount(),
		TermMonths:     app.TermMonths(),
		Purpose:        app.Purpose(),
		Status:         app.Status().String(),
		RiskScore:      app.RiskScore(),
		RiskLevel:      app.RiskLevel().String(),
		Recommendation: app.Recommendation().String(),
		RiskFactors:    app.RiskFactors(),
		DecisionReason: app.DecisionReason(),
		CreatedAt:      app.CreatedAt(),
		UpdatedAt:      app.UpdatedAt(),
	}
}
