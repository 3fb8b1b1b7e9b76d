package participation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/dto"
	participationservice "github.com/groupbuy/procurements/internal/service/participationservice"
	"github.com/groupbuy/procurements/pkg/utils"
)

type Service interface {
	Join(ctx context.Context, procurementID, userID int, quantity, amount float64, notes string) (*domain.Participant, error)
	Leave(ctx context.Context, procurementID, userID int) (float64, error)
}

type ParticipationHandler struct {
	participationService Service
}

func New(participationService Service) *ParticipationHandler {
	return &ParticipationHandler{
		participationService: participationService,
	}
}

const defaultQuantity = 1

// Join godoc
//
//	@Summary		Join a procurement
//	@Description	Commit a quantity and amount to an active procurement. Quantity defaults to 1.
//	@Tags			Participation
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Procurement id"
//	@Param			request	body		dto.JoinProcurementRequestDTO	true	"Join payload"
//	@Success		201		{object}	dto.ParticipantResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing user_id, inactive procurement or duplicate join"
//	@Failure		404		{object}	utils.Response	"Procurement not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/procurements/{id}/join [post]
func (h *ParticipationHandler) Join(w http.ResponseWriter, r *http.Request) {
	procurementID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	var req dto.JoinProcurementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	quantity := float64(defaultQuantity)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	participant, err := h.participationService.Join(r.Context(), procurementID, req.UserID, quantity, req.Amount, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, participationservice.ErrProcurementNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Not found.")
		case errors.Is(err, participationservice.ErrProcurementNotActive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, participationservice.ErrAlreadyJoined):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ParticipantResponseDTO{
		ID:            participant.ID,
		ProcurementID: participant.ProcurementID,
		UserID:        participant.UserID,
		Quantity:      participant.Quantity,
		Amount:        participant.Amount,
		Notes:         participant.Notes,
		IsActive:      participant.IsActive,
		JoinedAt:      participant.JoinedAt,
	})
}

// Leave godoc
//
//	@Summary		Leave a procurement
//	@Description	Deactivate the caller's active participation and report the recomputed current amount.
//	@Tags			Participation
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Procurement id"
//	@Param			request	body		dto.LeaveProcurementRequestDTO	true	"Leave payload"
//	@Success		200		{object}	dto.LeaveProcurementResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing user_id"
//	@Failure		404		{object}	utils.Response	"No procurement or no active participation"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/procurements/{id}/leave [post]
func (h *ParticipationHandler) Leave(w http.ResponseWriter, r *http.Request) {
	procurementID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Not found.")
		return
	}

	var req dto.LeaveProcurementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	currentAmount, err := h.participationService.Leave(r.Context(), procurementID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, participationservice.ErrProcurementNotFound),
			errors.Is(err, participationservice.ErrNotJoined):
			utils.RespondWithError(w, http.StatusNotFound, "Not found.")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LeaveProcurementResponseDTO{
		Message:       "Left procurement",
		ProcurementID: procurementID,
		CurrentAmount: currentAmount,
	})
}
