package connectionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/pg"
)

//go:generate mockgen -source=connectionrepo.go -destination=mock_sealer.go -package=connectionrepo

// Sealer encrypts provider tokens before they reach the table.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

type Repository struct {
	db     pg.Database
	sealer Sealer
}

func New(db pg.Database, sealer Sealer) *Repository {
	return &Repository{
		db:     db,
		sealer: sealer,
	}
}

func (r *Repository) Upsert(ctx context.Context, conn *domain.Connection) error {
	sealed, err := r.sealer.Seal(conn.AccessToken)
	if err != nil {
		return fmt.Errorf("seal access token: %w", err)
	}

	query := `
		INSERT INTO connections (user_id, provider, access_token, resource_id, resource_name, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id, provider) DO UPDATE
		SET access_token = EXCLUDED.access_token,
			resource_id = EXCLUDED.resource_id,
			resource_name = EXCLUDED.resource_name,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query, conn.UserID, conn.Provider, sealed, conn.ResourceID, conn.ResourceName, conn.IsActive)
	if err != nil {
		zap.L().Error("failed to upsert connection", zap.String("provider", conn.Provider), zap.Error(err))
		return err
	}
	return nil
}

// Get returns the connection with its token opened, or nil when none exists.
func (r *Repository) Get(ctx context.Context, userID, provider string) (*domain.Connection, error) {
	query := `
		SELECT user_id, provider, access_token, resource_id, resource_name, is_active, created_at, updated_at
		FROM connections
		WHERE user_id = $1 AND provider = $2
	`
	var conn domain.Connection
	var sealed string
	err := r.db.QueryRow(ctx, query, userID, provider).Scan(
		&conn.UserID, &conn.Provider, &sealed, &conn.ResourceID, &conn.ResourceName,
		&conn.IsActive, &conn.CreatedAt, &conn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get connection", zap.String("provider", provider), zap.Error(err))
		return nil, err
	}

	conn.AccessToken, err = r.sealer.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("open access token: %w", err)
	}
	return &conn, nil
}

// ListByUser never loads tokens.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Connection, error) {
	query := `
		SELECT user_id, provider, resource_id, resource_name, is_active, created_at, updated_at
		FROM connections
		WHERE user_id = $1
		ORDER BY provider
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list connections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	connections := []domain.Connection{}
	for rows.Next() {
		var conn domain.Connection
		if err := rows.Scan(&conn.UserID, &conn.Provider, &conn.ResourceID, &conn.ResourceName,
			&conn.IsActive, &conn.CreatedAt, &conn.UpdatedAt); err != nil {
			zap.L().Error("failed to scan connection", zap.Error(err))
			return nil, err
		}
		connections = append(connections, conn)
	}
	return connections, rows.Err()
}

// SetResource reports false when the caller has no such connection.
func (r *Repository) SetResource(ctx context.Context, userID, provider, resourceID, resourceName string) (bool, error) {
	query := `
		UPDATE connections
		SET resource_id = $3, resource_name = $4, is_active = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND provider = $2
	`
	tag, err := r.db.Exec(ctx, query, userID, provider, resourceID, resourceName)
	if err != nil {
		zap.L().Error("failed to set connection resource", zap.String("provider", provider), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Deactivate(ctx context.Context, userID, provider string) (bool, error) {
	query := `
		UPDATE connections
		SET is_active = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND provider = $2
	`
	tag, err := r.db.Exec(ctx, query, userID, provider)
	if err != nil {
		zap.L().Error("failed to deactivate connection", zap.String("provider", provider), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
