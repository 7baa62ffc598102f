package port

import (
	"context"
	"errors"

	"github.com/loanbridge/origination-service/internal/domain/event"
	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/service"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanApplicationRepository persists and retrieves loan applications.
type LoanApplicationRepository interface {
	Save(ctx context.Context, app model.LoanApplication) error
	FindByID(ctx context.Context, id string) (model.LoanApplication, error)
	FindByApplicantID(ctx context.Context, applicantID string) ([]model.LoanApplication, error)
}

// LoanRepository persists and retrieves loans.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByApplicationID(ctx context.Context, applicationID string) (model.Loan, error)
}

// UnitOfWork runs a function against application and loan repositories bound
// to a single atomic transaction. If fn returns an error nothing is persisted.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(apps LoanApplicationRepository, loans LoanRepository) error) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// RiskScorer scores a risk input through an external model service. The local
// RiskAssessor is the deterministic baseline; implementations of this port are
// optional enrichment and callers must fail closed when they error.
type RiskScorer interface {
	Score(ctx context.Context, in service.RiskInput) (service.RiskResult, error)
}

// QuoteCache caches amortization results keyed by loan terms.
type QuoteCache interface {
	Get(ctx context.Context, terms model.LoanTerms) (model.AmortizationResult, bool)
	Set(ctx context.Context, terms model.LoanTerms, result model.AmortizationResult)
}
