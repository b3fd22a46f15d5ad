package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/pg"
)

// Repository is append-only: entries are never updated or deleted.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// LockUser serializes ledger writers for one user until the surrounding
// transaction ends. Calling it outside a transaction has no lasting effect.
func (r *Repository) LockUser(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
		zap.L().Error("failed to lock user ledger", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM ledger_entries
		WHERE user_id = $1
	`
	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		zap.L().Error("failed to sum ledger", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) Append(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (user_id, amount, kind, description, reference_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Amount, string(entry.Kind), entry.Description, entry.ReferenceID).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append ledger entry", zap.String("kind", string(entry.Kind)), zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

// AppendUnique appends a top-up entry unless one with the same reference
// already exists. It reports whether a row was written.
func (r *Repository) AppendUnique(ctx context.Context, entry domain.LedgerEntry) (bool, error) {
	query := `
		INSERT INTO ledger_entries (user_id, amount, kind, description, reference_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (kind, reference_id) WHERE kind = 'topup' DO NOTHING
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Amount, string(entry.Kind), entry.Description, entry.ReferenceID).
		Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("failed to append unique ledger entry", zap.Error(err))
		return false, err
	}
	return true, nil
}

// Entries returns the newest entries first.
func (r *Repository) Entries(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, user_id, amount, kind, description, reference_id, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var entry domain.LedgerEntry
		var kind string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Amount, &kind, &entry.Description,
			&entry.ReferenceID, &entry.CreatedAt); err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entry.Kind = domain.EntryKind(kind)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
