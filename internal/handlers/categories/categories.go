package categories

import (
	"context"
	"net/http"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/dto"
	"github.com/groupbuy/procurements/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type CategoryHandler struct {
	categoryService Service
}

func New(categoryService Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List godoc
//
//	@Summary		List active categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		dto.CategoryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/procurements/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, category := range categories {
		response = append(response, dto.CategoryResponseDTO{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			IsActive:    category.IsActive,
			CreatedAt:   category.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
