package categoryservice

import (
	"context"
	"errors"
	"testing"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name               string
		prepareMock        func()
		expectedCategories []domain.Category
		expectedError      error
	}{
		{
			name: "returns active categories",
			prepareMock: func() {
				repo.EXPECT().FindActive(gomock.Any()).Return([]domain.Category{
					{ID: 2, Name: "Electronics", IsActive: true},
					{ID: 1, Name: "Groceries", IsActive: true},
				}, nil)
			},
			expectedCategories: []domain.Category{
				{ID: 2, Name: "Electronics", IsActive: true},
				{ID: 1, Name: "Groceries", IsActive: true},
			},
		},
		{
			name: "repo error is passed through",
			prepareMock: func() {
				repo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			categories, err := service.List(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, categories)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCategories, categories)
			}
		})
	}
}
