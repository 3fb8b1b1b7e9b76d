package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CategoryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "returns categories",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return([]domain.Category{
					{ID: 2, Name: "Electronics", IsActive: true},
					{ID: 1, Name: "Groceries", IsActive: true},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "empty list is an empty array",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "service error",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/procurements/categories", nil)
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var body []dto.CategoryResponseDTO
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Len(t, body, tt.expectedLen)
		})
	}
}
