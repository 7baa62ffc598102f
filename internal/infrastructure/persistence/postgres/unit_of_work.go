package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loanbridge/origination-service/internal/domain/port"
	pkgpostgres "github.com/loanbridge/origination-service/pkg/postgres"
)

// UnitOfWork implements port.UnitOfWork on top of a pgx transaction. The
// repositories handed to fn are bound to the transaction, so all writes
// commit or roll back together.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(apps port.LoanApplicationRepository, loans port.LoanRepository) error) error {
	return pkgpostgres.WithTransaction(ctx, u.pool, func(tx pgx.Tx) error {
		return fn(NewApplicationRepo(tx), NewLoanRepo(tx))
	})
}
