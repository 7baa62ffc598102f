package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/internal/domain/event"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate created from an approved application.
// The amortization schedule is a pure function of the loan terms and is
// re-derived on demand rather than stored.
type Loan struct {
	id                 string
	applicationID      string
	borrowerID         string
	terms              LoanTerms
	status             valueobject.LoanStatus
	monthlyPayment     decimal.Decimal
	outstandingBalance decimal.Decimal
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// NewLoan creates an ACTIVE loan from an approved application and validates
// the amortization terms up front.
func NewLoan(
	applicationID, borrowerID string,
	terms LoanTerms,
	now time.Time,
) (Loan, error) {
	if applicationID == "" {
		return Loan{}, fmt.Errorf("%w: application ID is required", valueobject.ErrInvalidArgument)
	}
	if borrowerID == "" {
		return Loan{}, fmt.Errorf("%w: borrower ID is required", valueobject.ErrInvalidArgument)
	}

	result, err := ComputeAmortization(terms)
	if err != nil {
		return Loan{}, err
	}

	id := uuid.New().String()
	loan := Loan{
		id:                 id,
		applicationID:      applicationID,
		borrowerID:         borrowerID,
		terms:              terms,
		status:             valueobject.LoanStatusActive,
		monthlyPayment:     result.MonthlyPayment,
		outstandingBalance: terms.Principal,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanDisbursed(
		id, applicationID, borrowerID,
		terms.Principal, terms.AnnualRatePercent, terms.TermMonths,
		result.MonthlyPayment,
	))
	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, applicationID, borrowerID string,
	terms LoanTerms,
	status valueobject.LoanStatus,
	monthlyPayment, outstandingBalance decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                 id,
		applicationID:      applicationID,
		borrowerID:         borrowerID,
		terms:              terms,
		status:             status,
		monthlyPayment:     monthlyPayment,
		outstandingBalance: outstandingBalance,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// MakePayment reduces the outstanding balance and emits PaymentReceived.
func (l Loan) MakePayment(amount decimal.Decimal, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) && !l.status.Equal(valueobject.LoanStatusDelinquent) {
		return l, fmt.Errorf("%w: payments can only be made on active or delinquent loans", valueobject.ErrInvalidStatusTransition)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return l, fmt.Errorf("%w: payment amount must be positive", valueobject.ErrInvalidArgument)
	}
	if amount.GreaterThan(l.outstandingBalance) {
		return l, fmt.Errorf("%w: payment exceeds outstanding balance", valueobject.ErrInvalidArgument)
	}

	next := l
	next.outstandingBalance = l.outstandingBalance.Sub(amount)
	next.status = valueobject.LoanStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentReceived(
		l.id, amount, next.outstandingBalance,
	))

	if next.outstandingBalance.Equal(decimal.Zero) {
		next.status = valueobject.LoanStatusPaidOff
		next.domainEvents = append(next.domainEvents, event.NewLoanPaidOff(l.id))
	}
	return next, nil
}

// MarkDelinquent transitions ACTIVE -> DELINQUENT.
func (l Loan) MarkDelinquent(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusDelinquent
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// MarkDefault transitions DELINQUENT -> DEFAULT.
func (l Loan) MarkDefault(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusDelinquent) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusDefault
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                             { return l.id }
func (l Loan) ApplicationID() string                  { return l.applicationID }
func (l Loan) BorrowerID() string                     { return l.borrowerID }
func (l Loan) Terms() LoanTerms                       { return l.terms }
func (l Loan) Status() valueobject.LoanStatus         { return l.status }
func (l Loan) MonthlyPayment() decimal.Decimal        { return l.monthlyPayment }
func (l Loan) OutstandingBalance() decimal.Decimal    { return l.outstandingBalance }
func (l Loan) Version() int                           { return l.version }
func (l Loan) CreatedAt() time.Time                   { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                   { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent      { return l.domainEvents }

// Schedule re-derives the full amortization schedule from the loan terms.
func (l Loan) Schedule() ([]PaymentPeriod, error) {
	result, err := ComputeAmortization(l.terms)
	if err != nil {
		return nil, err
	}
	return result.Schedule, nil
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}
