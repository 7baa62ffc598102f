package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// ApplicationStatus represents the lifecycle stage of a loan application.
type ApplicationStatus struct {
	value string
}

const (
	appStatusSubmitted   = "SUBMITTED"
	appStatusUnderReview = "UNDER_REVIEW"
	appStatusApproved    = "APPROVED"
	appStatusRejected    = "REJECTED"
	appStatusDisbursed   = "DISBURSED"
)

var (
	ApplicationStatusSubmitted   = ApplicationStatus{value: appStatusSubmitted}
	ApplicationStatusUnderReview = ApplicationStatus{value: appStatusUnderReview}
	ApplicationStatusApproved    = ApplicationStatus{value: appStatusApproved}
	ApplicationStatusRejected    = ApplicationStatus{value: appStatusRejected}
	ApplicationStatusDisbursed   = ApplicationStatus{value: appStatusDisbursed}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	appStatusSubmitted:   ApplicationStatusSubmitted,
	appStatusUnderReview: ApplicationStatusUnderReview,
	appStatusApproved:    ApplicationStatusApproved,
	appStatusRejected:    ApplicationStatusRejected,
	appStatusDisbursed:   ApplicationStatusDisbursed,
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("%w: unknown application status %q", ErrInvalidArgument, s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a disbursed loan.
type LoanStatus struct {
	value string
}

const (
	loanStatusActive     = "ACTIVE"
	loanStatusDelinquent = "DELINQUENT"
	loanStatusDefault    = "DEFAULT"
	loanStatusPaidOff    = "PAID_OFF"
)

var (
	LoanStatusActive     = LoanStatus{value: loanStatusActive}
	LoanStatusDelinquent = LoanStatus{value: loanStatusDelinquent}
	LoanStatusDefault    = LoanStatus{value: loanStatusDefault}
	LoanStatusPaidOff    = LoanStatus{value: loanStatusPaidOff}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive:     LoanStatusActive,
	loanStatusDelinquent: LoanStatusDelinquent,
	loanStatusDefault:    LoanStatusDefault,
	loanStatusPaidOff:    LoanStatusPaidOff,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("%w: unknown loan status %q", ErrInvalidArgument, s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrInvalidArgument marks input the domain rejects outright: non-positive
	// amounts, zero terms, negative rates, implausible credit scores. Callers
	// must fix the input; the domain never clamps or substitutes.
	ErrInvalidArgument = errors.New("invalid argument")
)
