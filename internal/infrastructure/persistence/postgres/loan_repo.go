package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/internal/domain/model"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
	pkgpostgres "github.com/loanbridge/origination-service/pkg/postgres"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	db pkgpostgres.Querier
}

// NewLoanRepo creates a new repository backed by PostgreSQL.
func NewLoanRepo(db pkgpostgres.Querier) *LoanRepo {
	return &LoanRepo{db: db}
}

// Save persists a loan (upsert by ID with optimistic locking).
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	query := `
		INSERT INTO loans (
			id, application_id, borrower_id,
			principal, annual_rate_percent, term_months,
			status, monthly_payment, outstanding_balance,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			status              = EXCLUDED.status,
			outstanding_balance = EXCLUDED.outstanding_balance,
			version             = loans.version + 1,
			updated_at          = EXCLUDED.updated_at
		WHERE loans.version = $10
	`
	terms := loan.Terms()
	tag, err := r.db.Exec(ctx, query,
		loan.ID(), loan.ApplicationID(), loan.BorrowerID(),
		terms.Principal, terms.AnnualRatePercent, terms.TermMonths,
		loan.Status().String(), loan.MonthlyPayment(), loan.OutstandingBalance(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("loan %s: %w", loan.ID(), ErrVersionConflict)
	}
	return nil
}

// FindByID retrieves a single loan.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := loanSelect + ` WHERE id = $1`
	return scanLoan(r.db.QueryRow(ctx, query, id))
}

// FindByApplicationID retrieves the loan disbursed from an application.
func (r *LoanRepo) FindByApplicationID(ctx context.Context, applicationID string) (model.Loan, error) {
	query := loanSelect + ` WHERE application_id = $1`
	return scanLoan(r.db.QueryRow(ctx, query, applicationID))
}

const loanSelect = `
	SELECT id, application_id, borrower_id,
	       principal, annual_rate_percent, term_months,
	       status, monthly_payment, outstanding_balance,
	       version, created_at, updated_at
	FROM loans`

func scanLoan(s scannable) (model.Loan, error) {
	var (
		id, applicationID, borrowerID       string
		principal, annualRatePercent        decimal.Decimal
		termMonths                          int
		statusStr                           string
		monthlyPayment, outstandingBalance  decimal.Decimal
		version                             int
		createdAt, updatedAt                time.Time
	)

	err := s.Scan(
		&id, &applicationID, &borrowerID,
		&principal, &annualRatePercent, &termMonths,
		&statusStr, &monthlyPayment, &outstandingBalance,
		&version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, fmt.Errorf("loan: %w", port.ErrNotFound)
	}
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructLoan(
		id, applicationID, borrowerID,
		model.LoanTerms{
			Principal:         principal,
			AnnualRatePercent: annualRatePercent,
			TermMonths:        termMonths,
		},
		status, monthlyPayment, outstandingBalance,
		version, createdAt, updatedAt,
	), nil
}
