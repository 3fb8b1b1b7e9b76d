package repo

import (
	"testing"

	"github.com/groupbuy/procurements/internal/pg"
	categoryrepo "github.com/groupbuy/procurements/internal/repo/category-repo"
	participantrepo "github.com/groupbuy/procurements/internal/repo/participant-repo"
	procurementrepo "github.com/groupbuy/procurements/internal/repo/procurement-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.ProcurementRepo)
	assert.NotNil(t, repo.ParticipantRepo)
	assert.NotNil(t, repo.CategoryRepo)

	assert.IsType(t, &procurementrepo.Repository{}, repo.ProcurementRepo)
	assert.IsType(t, &participantrepo.Repository{}, repo.ParticipantRepo)
	assert.IsType(t, &categoryrepo.Repository{}, repo.CategoryRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
