package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/radicados-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool      *pgxpool.Pool
	radicados *RadicadoRepo
}

// NewTxRunner construye el runner con el pool y el repositorio de radicados a re-atar a cada tx.
func NewTxRunner(pool *pgxpool.Pool, radicados *RadicadoRepo) *TxRunner {
	return &TxRunner{pool: pool, radicados: radicados}
}

// RunRadicados inicia una transacción, ejecuta fn con el repositorio atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunRadicados(ctx context.Context, fn func(repo repository.RadicadoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(r.radicados.WithQuerier(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
