package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/loanbridge/origination-service/internal/domain/event"
	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/service"
)

var errNotFound = errors.New("not found")

type mockApplicationRepo struct {
	saveFn              func(ctx context.Context, app model.LoanApplication) error
	findByIDFn          func(ctx context.Context, id string) (model.LoanApplication, error)
	findByApplicantIDFn func(ctx context.Context, applicantID string) ([]model.LoanApplication, error)

	saved []model.LoanApplication
}

func (m *mockApplicationRepo) Save(ctx context.Context, app model.LoanApplication) error {
	m.saved = append(m.saved, app)
	if m.saveFn != nil {
		return m.saveFn(ctx, app)
	}
	return nil
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return model.LoanApplication{}, errNotFound
}

func (m *mockApplicationRepo) FindByApplicantID(ctx context.Context, applicantID string) ([]model.LoanApplication, error) {
	if m.findByApplicantIDFn != nil {
		return m.findByApplicantIDFn(ctx, applicantID)
	}
	return nil, nil
}

type mockLoanRepo struct {
	saveFn              func(ctx context.Context, loan model.Loan) error
	findByIDFn          func(ctx context.Context, id string) (model.Loan, error)
	findByApplicationFn func(ctx context.Context, applicationID string) (model.Loan, error)

	saved []model.Loan
}

func (m *mockLoanRepo) Save(ctx context.Context, loan model.Loan) error {
	m.saved = append(m.saved, loan)
	if m.saveFn != nil {
		return m.saveFn(ctx, loan)
	}
	return nil
}

func (m *mockLoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return model.Loan{}, errNotFound
}

func (m *mockLoanRepo) FindByApplicationID(ctx context.Context, applicationID string) (model.Loan, error) {
	if m.findByApplicationFn != nil {
		return m.findByApplicationFn(ctx, applicationID)
	}
	return model.Loan{}, errNotFound
}

// mockUnitOfWork hands the wrapped mocks to fn without any transactionality.
type mockUnitOfWork struct {
	apps  *mockApplicationRepo
	loans *mockLoanRepo

	executions int
}

func (m *mockUnitOfWork) Execute(_ context.Context, fn func(apps port.LoanApplicationRepository, loans port.LoanRepository) error) error {
	m.executions++
	return fn(m.apps, m.loans)
}

type mockPublisher struct {
	publishFn func(ctx context.Context, events ...event.DomainEvent) error
	published []event.DomainEvent
}

func (m *mockPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishFn != nil {
		return m.publishFn(ctx, events...)
	}
	return nil
}

type mockScorer struct {
	scoreFn func(ctx context.Context, in service.RiskInput) (service.RiskResult, error)
}

func (m *mockScorer) Score(ctx context.Context, in service.RiskInput) (service.RiskResult, error) {
	return m.scoreFn(ctx, in)
}

type mockQuoteCache struct {
	store map[string]model.AmortizationResult
	hits  int
	sets  int
}

func newMockQuoteCache() *mockQuoteCache {
	return &mockQuoteCache{store: map[string]model.AmortizationResult{}}
}

func quoteKey(terms model.LoanTerms) string {
	return terms.Principal.String() + "|" + terms.AnnualRatePercent.String() + "|" + strconv.Itoa(terms.TermMonths)
}

func (m *mockQuoteCache) Get(_ context.Context, terms model.LoanTerms) (model.AmortizationResult, bool) {
	r, ok := m.store[quoteKey(terms)]
	if ok {
		m.hits++
	}
	return r, ok
}

func (m *mockQuoteCache) Set(_ context.Context, terms model.LoanTerms, result model.AmortizationResult) {
	m.sets++
	m.store[quoteKey(terms)] = result
}
