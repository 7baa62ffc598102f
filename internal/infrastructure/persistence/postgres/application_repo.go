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

// ErrVersionConflict is returned when an optimistic-locking update misses.
var ErrVersionConflict = errors.New("optimistic locking conflict")

// ApplicationRepo implements port.LoanApplicationRepository. It accepts any
// Querier so the same repository runs against the pool or a transaction.
type ApplicationRepo struct {
	db pkgpostgres.Querier
}

// NewApplicationRepo creates a new repository backed by PostgreSQL.
func NewApplicationRepo(db pkgpostgres.Querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Save persists a loan application (upsert by ID with optimistic locking).
func (r *ApplicationRepo) Save(ctx context.Context, app model.LoanApplication) error {
	query := `
		INSERT INTO loan_applications (
			id, applicant_id, amount, term_months, purpose,
			credit_score, annual_income, status,
			risk_score, risk_level, recommendation, risk_factors,
			decision_reason, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO UPDATE SET
			status          = EXCLUDED.status,
			risk_score      = EXCLUDED.risk_score,
			risk_level      = EXCLUDED.risk_level,
			recommendation  = EXCLUDED.recommendation,
			risk_factors    = EXCLUDED.risk_factors,
			decision_reason = EXCLUDED.decision_reason,
			version         = loan_applications.version + 1,
			updated_at      = EXCLUDED.updated_at
		WHERE loan_applications.version = $14
	`
	tag, err := r.db.Exec(ctx, query,
		app.ID(), app.ApplicantID(), app.Amount(), app.TermMonths(), app.Purpose(),
		app.CreditScore(), app.AnnualIncome(), app.Status().String(),
		app.RiskScore(), nullableString(app.RiskLevel().String()), nullableString(app.Recommendation().String()), app.RiskFactors(),
		app.DecisionReason(), app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("loan application %s: %w", app.ID(), ErrVersionConflict)
	}
	return nil
}

// FindByID retrieves a single loan application.
func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	query := applicationSelect + ` WHERE id = $1`
	return scanApplication(r.db.QueryRow(ctx, query, id))
}

// FindByApplicantID retrieves all applications for a given applicant, newest
// first.
func (r *ApplicationRepo) FindByApplicantID(ctx context.Context, applicantID string) ([]model.LoanApplication, error) {
	query := applicationSelect + ` WHERE applicant_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("query loan applications: %w", err)
	}
	defer rows.Close()

	var result []model.LoanApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

const applicationSelect = `
	SELECT id, applicant_id, amount, term_months, purpose,
	       credit_score, annual_income, status,
	       risk_score, risk_level, recommendation, risk_factors,
	       decision_reason, version, created_at, updated_at
	FROM loan_applications`

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanApplication(s scannable) (model.LoanApplication, error) {
	var (
		id, applicantID       string
		amount, annualIncome  decimal.Decimal
		termMonths            int
		purpose, statusStr    string
		creditScore           int
		riskScore             int
		riskLevelStr          *string
		recommendationStr     *string
		riskFactors           []string
		decisionReason        string
		version               int
		createdAt, updatedAt  time.Time
	)

	err := s.Scan(
		&id, &applicantID, &amount, &termMonths, &purpose,
		&creditScore, &annualIncome, &statusStr,
		&riskScore, &riskLevelStr, &recommendationStr, &riskFactors,
		&decisionReason, &version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanApplication{}, fmt.Errorf("loan application: %w", port.ErrNotFound)
	}
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("scan loan application: %w", err)
	}

	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse status: %w", err)
	}

	var riskLevel valueobject.RiskLevel
	if riskLevelStr != nil && *riskLevelStr != "" {
		riskLevel, err = valueobject.NewRiskLevel(*riskLevelStr)
		if err != nil {
			return model.LoanApplication{}, fmt.Errorf("parse risk level: %w", err)
		}
	}

	var recommendation valueobject.Recommendation
	if recommendationStr != nil && *recommendationStr != "" {
		recommendation, err = valueobject.NewRecommendation(*recommendationStr)
		if err != nil {
			return model.LoanApplication{}, fmt.Errorf("parse recommendation: %w", err)
		}
	}

	return model.ReconstructLoanApplication(
		id, applicantID, amount, termMonths, purpose,
		creditScore, annualIncome, status,
		riskScore, riskLevel, recommendation, riskFactors,
		decisionReason, version, createdAt, updatedAt,
	), nil
}

// nullableString maps an empty string to NULL so unscored applications do not
// carry empty enum values.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
