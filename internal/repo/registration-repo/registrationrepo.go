package registrationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, reg *domain.DomainRegistration) (*domain.DomainRegistration, error) {
	query := `
		INSERT INTO domain_registrations
			(user_id, domain_name, status, purchase_price, cost_price, registrar_reference, nameservers, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	created := *reg
	err := r.db.QueryRow(ctx, query, reg.UserID, reg.DomainName, reg.Status, reg.PurchasePrice, reg.CostPrice,
		reg.RegistrarReference, reg.Nameservers, reg.ExpiryDate, reg.CreatedAt).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyExists
		}
		zap.L().Error("failed to create domain registration", zap.String("domain", reg.DomainName), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// FindByDomain returns nil when the domain has never been registered here.
func (r *Repository) FindByDomain(ctx context.Context, name string) (*domain.DomainRegistration, error) {
	query := `
		SELECT id, user_id, domain_name, status, purchase_price, cost_price, registrar_reference, nameservers, expiry_date, created_at
		FROM domain_registrations
		WHERE domain_name = $1
	`
	var reg domain.DomainRegistration
	err := r.db.QueryRow(ctx, query, name).Scan(&reg.ID, &reg.UserID, &reg.DomainName, &reg.Status, &reg.PurchasePrice,
		&reg.CostPrice, &reg.RegistrarReference, &reg.Nameservers, &reg.ExpiryDate, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find domain registration", zap.String("domain", name), zap.Error(err))
		return nil, err
	}
	return &reg, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.DomainRegistration, error) {
	query := `
		SELECT id, user_id, domain_name, status, purchase_price, cost_price, registrar_reference, nameservers, expiry_date, created_at
		FROM domain_registrations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list domain registrations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	registrations := []domain.DomainRegistration{}
	for rows.Next() {
		var reg domain.DomainRegistration
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.DomainName, &reg.Status, &reg.PurchasePrice,
			&reg.CostPrice, &reg.RegistrarReference, &reg.Nameservers, &reg.ExpiryDate, &reg.CreatedAt); err != nil {
			zap.L().Error("failed to scan domain registration", zap.Error(err))
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}
