package connectionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adhub/internal/domain"
)

const (
	upsertQuery     = `INSERT INTO connections (user_id, provider, access_token, resource_id, resource_name, is_active, updated_at)`
	getQuery        = `SELECT user_id, provider, access_token, resource_id, resource_name, is_active, created_at, updated_at FROM connections WHERE user_id = $1 AND provider = $2`
	listQuery       = `SELECT user_id, provider, resource_id, resource_name, is_active, created_at, updated_at FROM connections WHERE user_id = $1 ORDER BY provider`
	setQuery        = `UPDATE connections SET resource_id = $3, resource_name = $4, is_active = TRUE, updated_at = NOW() WHERE user_id = $1 AND provider = $2`
	deactivateQuery = `UPDATE connections SET is_active = FALSE, updated_at = NOW() WHERE user_id = $1 AND provider = $2`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *MockSealer) {
	ctrl := gomock.NewController(t)
	sealer := NewMockSealer(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, sealer), mockDB, sealer
}

func strPtr(s string) *string {
	return &s
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock, sealer := NewMock(t)
	conn := &domain.Connection{
		UserID:       "user-1",
		Provider:     domain.ProviderMeta,
		AccessToken:  "long-token",
		ResourceID:   strPtr("act_1"),
		ResourceName: "Main",
		IsActive:     true,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Stores sealed token",
			mockSetup: func() {
				sealer.EXPECT().Seal("long-token").Return("v1:sealed", nil)
				mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
					WithArgs("user-1", domain.ProviderMeta, "v1:sealed", strPtr("act_1"), "Main", true).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Sealing failure writes nothing",
			mockSetup: func() {
				sealer.EXPECT().Seal("long-token").Return("", errors.New("sealer broken"))
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				sealer.EXPECT().Seal("long-token").Return("v1:sealed", nil)
				mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
					WithArgs("user-1", domain.ProviderMeta, "v1:sealed", strPtr("act_1"), "Main", true).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Upsert(context.Background(), conn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock, sealer := NewMock(t)
	now := time.Now()
	columns := []string{"user_id", "provider", "access_token", "resource_id", "resource_name", "is_active", "created_at", "updated_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.Connection
		expectErr bool
	}{
		{
			name: "Opens token",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
					WithArgs("user-1", domain.ProviderMeta).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("user-1", domain.ProviderMeta, "v1:sealed", strPtr("act_1"), "Main", true, now, now))
				sealer.EXPECT().Open("v1:sealed").Return("long-token", nil)
			},
			expected: &domain.Connection{
				UserID:       "user-1",
				Provider:     domain.ProviderMeta,
				AccessToken:  "long-token",
				ResourceID:   strPtr("act_1"),
				ResourceName: "Main",
				IsActive:     true,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		{
			name: "Pending selection has no resource",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
					WithArgs("user-1", domain.ProviderMeta).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("user-1", domain.ProviderMeta, "v1:sealed", nil, "", true, now, now))
				sealer.EXPECT().Open("v1:sealed").Return("long-token", nil)
			},
			expected: &domain.Connection{
				UserID:      "user-1",
				Provider:    domain.ProviderMeta,
				AccessToken: "long-token",
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		{
			name: "Missing connection returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
					WithArgs("user-1", domain.ProviderMeta).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Tampered token",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
					WithArgs("user-1", domain.ProviderMeta).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("user-1", domain.ProviderMeta, "v1:bad", strPtr("act_1"), "Main", true, now, now))
				sealer.EXPECT().Open("v1:bad").Return("", errors.New("message authentication failed"))
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
					WithArgs("user-1", domain.ProviderMeta).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			conn, err := repo.Get(context.Background(), "user-1", domain.ProviderMeta)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, conn)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "provider", "resource_id", "resource_name", "is_active", "created_at", "updated_at"}).
			AddRow("user-1", domain.ProviderGoogle, nil, "", true, now, now).
			AddRow("user-1", domain.ProviderMeta, strPtr("act_1"), "Main", false, now, now))

	connections, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, connections, 2)
	assert.Equal(t, domain.ConnectionPendingSelection, connections[0].Status())
	assert.Equal(t, domain.ConnectionInactive, connections[1].Status())
	assert.Empty(t, connections[1].AccessToken)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WithArgs("user-2").WillReturnError(errors.New("database error"))
	_, err = repo.ListByUser(context.Background(), "user-2")
	assert.Error(t, err)
}

func TestRepository_SetResourceAndDeactivate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(setQuery)).
		WithArgs("user-1", domain.ProviderMeta, "act_2", "Second").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	updated, err := repo.SetResource(context.Background(), "user-1", domain.ProviderMeta, "act_2", "Second")
	require.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(regexp.QuoteMeta(setQuery)).
		WithArgs("intruder", domain.ProviderMeta, "act_2", "Second").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	updated, err = repo.SetResource(context.Background(), "intruder", domain.ProviderMeta, "act_2", "Second")
	require.NoError(t, err)
	assert.False(t, updated)

	mock.ExpectExec(regexp.QuoteMeta(deactivateQuery)).
		WithArgs("user-1", domain.ProviderGoogle).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	deactivated, err := repo.Deactivate(context.Background(), "user-1", domain.ProviderGoogle)
	require.NoError(t, err)
	assert.True(t, deactivated)

	mock.ExpectExec(regexp.QuoteMeta(deactivateQuery)).
		WithArgs("user-1", domain.ProviderGoogle).
		WillReturnError(errors.New("database error"))
	_, err = repo.Deactivate(context.Background(), "user-1", domain.ProviderGoogle)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
