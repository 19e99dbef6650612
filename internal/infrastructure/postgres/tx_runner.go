package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner menjalankan callback dalam transaksi PostgreSQL. Dipakai untuk
// menghapus karyawan beserta seluruh anaknya secara atomik.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner membangun runner dengan pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run memulai transaksi, menjalankan fn dengan repo yang terikat ke tx,
// lalu Commit atau Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	empRepo repository.EmployeeRepository,
	pendRepo repository.PendidikanRepository,
	pekRepo repository.PekerjaanRepository,
	kelRepo repository.KeluargaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	empRepo := NewEmployeeRepository(tx)
	pendRepo := NewPendidikanRepository(tx)
	pekRepo := NewPekerjaanRepository(tx)
	kelRepo := NewKeluargaRepository(tx)

	if err := fn(empRepo, pendRepo, pekRepo, kelRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
