package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/internal/domain/event"
	"github.com/loanbridge/origination-service/internal/domain/service"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanApplication aggregate root
// ---------------------------------------------------------------------------

// LoanApplication is an immutable aggregate. Every mutation returns a new copy.
type LoanApplication struct {
	id             string
	applicantID    string
	amount         decimal.Decimal
	termMonths     int
	purpose        string
	creditScore    int
	annualIncome   decimal.Decimal
	status         valueobject.ApplicationStatus
	riskScore      int
	riskLevel      valueobject.RiskLevel
	recommendation valueobject.Recommendation
	riskFactors    []string
	decisionReason string
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// NewLoanApplication creates a brand-new application in SUBMITTED status.
// Credit score and income must already carry their caller-side defaults; the
// aggregate rejects implausible values instead of fixing them up.
func NewLoanApplication(
	applicantID string,
	amount decimal.Decimal,
	termMonths int,
	purpose string,
	creditScore int,
	annualIncome decimal.Decimal,
	now time.Time,
) (LoanApplication, error) {
	if applicantID == "" {
		return LoanApplication{}, fmt.Errorf("%w: applicant ID is required", valueobject.ErrInvalidArgument)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return LoanApplication{}, fmt.Errorf("%w: amount must be positive", valueobject.ErrInvalidArgument)
	}
	if termMonths < 1 {
		return LoanApplication{}, fmt.Errorf("%w: term months must be at least 1", valueobject.ErrInvalidArgument)
	}
	if creditScore < 300 || creditScore > 850 {
		return LoanApplication{}, fmt.Errorf("%w: credit score %d outside plausible range", valueobject.ErrInvalidArgument, creditScore)
	}
	if annualIncome.LessThanOrEqual(decimal.Zero) {
		return LoanApplication{}, fmt.Errorf("%w: annual income must be positive", valueobject.ErrInvalidArgument)
	}

	id := uuid.New().String()
	app := LoanApplication{
		id:           id,
		applicantID:  applicantID,
		amount:       amount,
		termMonths:   termMonths,
		purpose:      purpose,
		creditScore:  creditScore,
		annualIncome: annualIncome,
		status:       valueobject.ApplicationStatusSubmitted,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}

	app.domainEvents = append(app.domainEvents,
		event.NewApplicationSubmitted(id, applicantID, amount, termMonths, purpose))
	return app, nil
}

// ReconstructLoanApplication rebuilds an aggregate from persistence without
// side-effects.
func ReconstructLoanApplication(
	id, applicantID string,
	amount decimal.Decimal,
	termMonths int,
	purpose string,
	creditScore int,
	annualIncome decimal.Decimal,
	status valueobject.ApplicationStatus,
	riskScore int,
	riskLevel valueobject.RiskLevel,
	recommendation valueobject.Recommendation,
	riskFactors []string,
	decisionReason string,
	version int,
	createdAt, updatedAt time.Time,
) LoanApplication {
	return LoanApplication{
		id:             id,
		applicantID:    applicantID,
		amount:         amount,
		termMonths:     termMonths,
		purpose:        purpose,
		creditScore:    creditScore,
		annualIncome:   annualIncome,
		status:         status,
		riskScore:      riskScore,
		riskLevel:      riskLevel,
		recommendation: recommendation,
		riskFactors:    riskFactors,
		decisionReason: decisionReason,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// SubmitForReview transitions SUBMITTED -> UNDER_REVIEW.
func (a LoanApplication) SubmitForReview(now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusSubmitted) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusUnderReview
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// RecordAssessment attaches a risk result to an application under review and
// emits ApplicationRiskAssessed.
func (a LoanApplication) RecordAssessment(result service.RiskResult, now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.riskScore = result.RiskScore
	next.riskLevel = result.RiskLevel
	next.recommendation = result.Recommendation
	next.riskFactors = append([]string(nil), result.Factors...)
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationRiskAssessed(
		a.id, result.RiskScore, result.RiskLevel.String(), result.Recommendation.String(), result.Factors,
	))
	return next, nil
}

// Approve transitions UNDER_REVIEW -> APPROVED and emits ApplicationApproved.
func (a LoanApplication) Approve(reason string, now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusApproved
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(a.id, a.applicantID, reason))
	return next, nil
}

// Reject transitions UNDER_REVIEW -> REJECTED and emits ApplicationRejected.
func (a LoanApplication) Reject(reason string, now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusRejected
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationRejected(a.id, a.applicantID, reason))
	return next, nil
}

// MarkDisbursed transitions APPROVED -> DISBURSED.
func (a LoanApplication) MarkDisbursed(now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusApproved) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusDisbursed
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a LoanApplication) ID() string                                   { return a.id }
func (a LoanApplication) ApplicantID() string                          { return a.applicantID }
func (a LoanApplication) Amount() decimal.Decimal                      { return a.amount }
func (a LoanApplication) TermMonths() int                              { return a.termMonths }
func (a LoanApplication) Purpose() string                              { return a.purpose }
func (a LoanApplication) CreditScore() int                             { return a.creditScore }
func (a LoanApplication) AnnualIncome() decimal.Decimal                { return a.annualIncome }
func (a LoanApplication) Status() valueobject.ApplicationStatus        { return a.status }
func (a LoanApplication) RiskScore() int                               { return a.riskScore }
func (a LoanApplication) RiskLevel() valueobject.RiskLevel             { return a.riskLevel }
func (a LoanApplication) Recommendation() valueobject.Recommendation   { return a.recommendation }
func (a LoanApplication) DecisionReason() string                       { return a.decisionReason }
func (a LoanApplication) Version() int                                 { return a.version }
func (a LoanApplication) CreatedAt() time.Time                         { return a.createdAt }
func (a LoanApplication) UpdatedAt() time.Time                         { return a.updatedAt }
func (a LoanApplication) DomainEvents() []event.DomainEvent            { return a.domainEvents }

// RiskFactors returns a defensive copy of the contributing factor list.
func (a LoanApplication) RiskFactors() []string {
	if a.riskFactors == nil {
		return nil
	}
	return append([]string(nil), a.riskFactors...)
}

// RiskInput projects the application's attributes into the scoring engine's
// input shape.
func (a LoanApplication) RiskInput() service.RiskInput {
	return service.RiskInput{
		Amount:       a.amount,
		TermMonths:   a.termMonths,
		Purpose:      a.purpose,
		CreditScore:  a.creditScore,
		AnnualIncome: a.annualIncome,
	}
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a LoanApplication) ClearEvents() LoanApplication {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
