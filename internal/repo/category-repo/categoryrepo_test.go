package categoryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "returns active categories ordered by name",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "description", "is_active", "created_at"}).
					AddRow(2, "Electronics", "gadgets", true, now).
					AddRow(1, "Groceries", "bulk food", true, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, is_active, created_at FROM categories WHERE is_active = true ORDER BY name`)).
					WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name: "no active categories",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "description", "is_active", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE is_active = true`)).
					WillReturnRows(rows)
			},
			expectLen: 0,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE is_active = true`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			categories, err := repo.FindActive(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, categories)
			} else {
				assert.NoError(t, err)
				assert.Len(t, categories, tt.expectLen)
				if tt.expectLen > 0 {
					assert.Equal(t, "Electronics", categories[0].Name)
				}
			}
		})
	}
}
