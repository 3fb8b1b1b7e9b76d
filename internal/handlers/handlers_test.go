package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/groupbuy/procurements/docs"
	"github.com/groupbuy/procurements/internal/handlers/categories"
	"github.com/groupbuy/procurements/internal/handlers/participation"
	"github.com/groupbuy/procurements/internal/handlers/procurements"
	"github.com/groupbuy/procurements/internal/service"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		ProcurementService:   procurements.NewMockService(ctrl),
		ParticipationService: participation.NewMockService(ctrl),
		CategoryService:      categories.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProcurementHandler := NewMockProcurementHandler(ctrl)
	mockParticipationHandler := NewMockParticipationHandler(ctrl)
	mockCategoryHandler := NewMockCategoryHandler(ctrl)

	mockProcurementHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockProcurementHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockProcurementHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockParticipationHandler.EXPECT().Join(gomock.Any(), gomock.Any()).AnyTimes()
	mockParticipationHandler.EXPECT().Leave(gomock.Any(), gomock.Any()).AnyTimes()
	mockCategoryHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		ProcurementHandler:   mockProcurementHandler,
		ParticipationHandler: mockParticipationHandler,
		CategoryHandler:      mockCategoryHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/api/procurements", http.StatusOK},
		{"POST", "/api/procurements", http.StatusOK},
		{"GET", "/api/procurements/categories", http.StatusOK},
		{"GET", "/api/procurements/1", http.StatusOK},
		{"POST", "/api/procurements/1/join", http.StatusOK},
		{"POST", "/api/procurements/1/leave", http.StatusOK},
		{"DELETE", "/api/procurements/1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
