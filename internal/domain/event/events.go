package event

import (
	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Loan application events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a new application enters the system.
type ApplicationSubmitted struct {
	events.BaseEvent
	ApplicantID string          `json:"applicant_id"`
	Amount      decimal.Decimal `json:"amount"`
	TermMonths  int             `json:"term_months"`
	Purpose     string          `json:"purpose"`
}

func NewApplicationSubmitted(applicationID, applicantID string, amount decimal.Decimal, termMonths int, purpose string) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:   events.NewBaseEvent("origination.application.submitted", applicationID, "LoanApplication"),
		ApplicantID: applicantID,
		Amount:      amount,
		TermMonths:  termMonths,
		Purpose:     purpose,
	}
}

// ApplicationRiskAssessed is raised when the risk engine scores an application.
type ApplicationRiskAssessed struct {
	events.BaseEvent
	RiskScore      int      `json:"risk_score"`
	RiskLevel      string   `json:"risk_level"`
	Recommendation string   `json:"recommendation"`
	Factors        []string `json:"factors"`
}

func NewApplicationRiskAssessed(applicationID string, riskScore int, riskLevel, recommendation string, factors []string) ApplicationRiskAssessed {
	return ApplicationRiskAssessed{
		BaseEvent:      events.NewBaseEvent("origination.application.risk_assessed", applicationID, "LoanApplication"),
		RiskScore:      riskScore,
		RiskLevel:      riskLevel,
		Recommendation: recommendation,
		Factors:        factors,
	}
}

// ApplicationApproved is raised when an application is approved.
type ApplicationApproved struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	Reason      string `json:"reason"`
}

func NewApplicationApproved(applicationID, applicantID, reason string) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent:   events.NewBaseEvent("origination.application.approved", applicationID, "LoanApplication"),
		ApplicantID: applicantID,
		Reason:      reason,
	}
}

// ApplicationRejected is raised when an application is rejected.
type ApplicationRejected struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	Reason      string `json:"reason"`
}

func NewApplicationRejected(applicationID, applicantID, reason string) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent:   events.NewBaseEvent("origination.application.rejected", applicationID, "LoanApplication"),
		ApplicantID: applicantID,
		Reason:      reason,
	}
}

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanDisbursed is raised when funds are disbursed against an approved
// application.
type LoanDisbursed struct {
	events.BaseEvent
	ApplicationID     string          `json:"application_id"`
	BorrowerID        string          `json:"borrower_id"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
}

func NewLoanDisbursed(loanID, applicationID, borrowerID string, principal, annualRatePercent decimal.Decimal, termMonths int, monthlyPayment decimal.Decimal) LoanDisbursed {
	return LoanDisbursed{
		BaseEvent:         events.NewBaseEvent("origination.loan.disbursed", loanID, "Loan"),
		ApplicationID:     applicationID,
		BorrowerID:        borrowerID,
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termMonths,
		MonthlyPayment:    monthlyPayment,
	}
}

// PaymentReceived is raised when a payment is applied to a loan.
type PaymentReceived struct {
	events.BaseEvent
	Amount             decimal.Decimal `json:"amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewPaymentReceived(loanID string, amount, outstandingBalance decimal.Decimal) PaymentReceived {
	return PaymentReceived{
		BaseEvent:          events.NewBaseEvent("origination.loan.payment_received", loanID, "Loan"),
		Amount:             amount,
		OutstandingBalance: outstandingBalance,
	}
}

// LoanPaidOff is raised when a loan's balance reaches zero.
type LoanPaidOff struct {
	events.BaseEvent
}

func NewLoanPaidOff(loanID string) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent: events.NewBaseEvent("origination.loan.paid_off", loanID, "Loan"),
	}
}
