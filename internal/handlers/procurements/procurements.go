package procurements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/dto"
	procurementservice "github.com/groupbuy/procurements/internal/service/procurementservice"
	"github.com/groupbuy/procurements/pkg/utils"
)

type Service interface {
	List(ctx context.Context, filters domain.ProcurementFilters) ([]domain.Procurement, error)
	Create(ctx context.Context, p *domain.Procurement) (*domain.Procurement, error)
	Get(ctx context.Context, id int) (*domain.Procurement, error)
}

type ProcurementHandler struct {
	procurementService Service
}

func New(procurementService Service) *ProcurementHandler {
	return &ProcurementHandler{
		procurementService: procurementService,
	}
}

// List godoc
//
//	@Summary		List procurements
//	@Description	List procurements, newest first, with active participant counts. All filters are optional.
//	@Tags			Procurements
//	@Produce		json
//	@Param			status			query		string	false	"Filter by status"
//	@Param			city			query		string	false	"Filter by city"
//	@Param			category_id		query		int		false	"Filter by category"
//	@Param			organizer_id	query		int		false	"Filter by organizer"
//	@Success		200	{object}	dto.ListProcurementsResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed filter value"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/procurements [get]
func (h *ProcurementHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	procurements, err := h.procurementService.List(r.Context(), filters)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	results := make([]dto.ProcurementResponseDTO, 0, len(procurements))
	for _, p := range procurements {
		results = append(results, toResponse(&p))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListProcurementsResponseDTO{Results: results})
}

// Create godoc
//
//	@Summary		Create a procurement
//	@Description	Create a new procurement. Unit defaults to "units", status to "draft".
//	@Tags			Procurements
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProcurementRequestDTO	true	"Procurement payload"
//	@Success		201		{object}	dto.ProcurementResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation or store error"
//	@Router			/api/procurements [post]
func (h *ProcurementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProcurementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.procurementService.Create(r.Context(), &domain.Procurement{
		Title:           req.Title,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		OrganizerID:     req.OrganizerID,
		City:            req.City,
		DeliveryAddress: req.DeliveryAddress,
		Unit:            req.Unit,
		PricePerUnit:    req.PricePerUnit,
		TargetAmount:    req.TargetAmount,
		StopAtAmount:    req.StopAtAmount,
		Status:          req.Status,
		Deadline:        req.Deadline,
		PaymentDeadline: req.PaymentDeadline,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, procurementservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadRequest, "failed to create procurement")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(created))
}

// Get godoc
//
//	@Summary		Get a procurement by id
//	@Tags			Procurements
//	@Produce		json
//	@Param			id	path		int	true	"Procurement id"
//	@Success		200	{object}	dto.ProcurementResponseDTO
//	@Failure		404	{object}	utils.Response	"Procurement not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/procurements/{id} [get]
func (h *ProcurementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	procurement, err := h.procurementService.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, procurementservice.ErrProcurementNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Not found.")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(procurement))
}

func parseFilters(r *http.Request) (domain.ProcurementFilters, error) {
	var filters domain.ProcurementFilters
	q := r.URL.Query()

	if status := q.Get("status"); status != "" {
		filters.Status = &status
	}
	if city := q.Get("city"); city != "" {
		filters.City = &city
	}
	if raw := q.Get("category_id"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("category_id must be an integer")
		}
		filters.CategoryID = &categoryID
	}
	if raw := q.Get("organizer_id"); raw != "" {
		organizerID, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("organizer_id must be an integer")
		}
		filters.OrganizerID = &organizerID
	}
	return filters, nil
}

func toResponse(p *domain.Procurement) dto.ProcurementResponseDTO {
	return dto.ProcurementResponseDTO{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		CategoryID:        p.CategoryID,
		OrganizerID:       p.OrganizerID,
		City:              p.City,
		DeliveryAddress:   p.DeliveryAddress,
		Unit:              p.Unit,
		PricePerUnit:      p.PricePerUnit,
		TargetAmount:      p.TargetAmount,
		StopAtAmount:      p.StopAtAmount,
		CurrentAmount:     p.CurrentAmount,
		Status:            p.Status,
		Deadline:          p.Deadline,
		PaymentDeadline:   p.PaymentDeadline,
		ImageURL:          p.ImageURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		ParticipantsCount: p.ParticipantsCount,
	}
}
