package participantrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var participantColumns = []string{
	"id", "procurement_id", "user_id", "quantity", "amount", "notes", "is_active", "joined_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	participant := &domain.Participant{
		ProcurementID: 1,
		UserID:        42,
		Quantity:      2,
		Amount:        37.0,
		Notes:         "evening pickup",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "successfully creates participant",
			mockSetup: func() {
				rows := pgxmock.NewRows(participantColumns).
					AddRow(1, 1, 42, 2.0, 37.0, "evening pickup", true, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO participants (procurement_id, user_id, quantity, amount, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id, procurement_id, user_id, quantity, amount, notes, is_active, joined_at`)).
					WithArgs(1, 42, 2.0, 37.0, "evening pickup").
					WillReturnRows(rows)
			},
		},
		{
			name: "duplicate active participation violates unique index",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO participants`)).
					WithArgs(1, 42, 2.0, 37.0, "evening pickup").
					WillReturnError(errors.New(`duplicate key value violates unique constraint "uq_participants_active"`))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), participant)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.True(t, result.IsActive)
				assert.Equal(t, 37.0, result.Amount)
			}
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "active participation exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(participantColumns).
					AddRow(1, 1, 42, 1.0, 37.0, "", true, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM participants WHERE procurement_id = $1 AND user_id = $2 AND is_active = true`)).
					WithArgs(1, 42).
					WillReturnRows(rows)
			},
		},
		{
			name: "no active participation returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM participants WHERE procurement_id = $1 AND user_id = $2 AND is_active = true`)).
					WithArgs(1, 42).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM participants WHERE procurement_id = $1 AND user_id = $2 AND is_active = true`)).
					WithArgs(1, 42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActive(context.Background(), 1, 42)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, 42, result.UserID)
			}
		})
	}
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		affected  int64
	}{
		{
			name: "deactivates active participation",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE participants SET is_active = false WHERE procurement_id = $1 AND user_id = $2 AND is_active = true`)).
					WithArgs(1, 42).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			affected: 1,
		},
		{
			name: "second leave affects no rows",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE participants SET is_active = false WHERE procurement_id = $1 AND user_id = $2 AND is_active = true`)).
					WithArgs(1, 42).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			affected: 0,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE participants SET is_active = false`)).
					WithArgs(1, 42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.Deactivate(context.Background(), 1, 42)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.affected, affected)
			}
		})
	}
}

func TestRepository_CountActive(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("counts active participants", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count"}).AddRow(7)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM participants WHERE procurement_id = $1 AND is_active = true`)).
			WithArgs(1).
			WillReturnRows(rows)

		count, err := repo.CountActive(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 7, count)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM participants`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		count, err := repo.CountActive(context.Background(), 1)
		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}
