package participationservice

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/pg"
	"go.uber.org/zap"
)

type ProcurementRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Procurement, error)
	RecalculateCurrentAmount(ctx context.Context, id int) (float64, error)
}

type ParticipantRepo interface {
	Create(ctx context.Context, participant *domain.Participant) (*domain.Participant, error)
	FindActive(ctx context.Context, procurementID, userID int) (*domain.Participant, error)
	Deactivate(ctx context.Context, procurementID, userID int) (int64, error)
}

type Service struct {
	procurementRepo ProcurementRepo
	participantRepo ParticipantRepo
	txManager       pg.TXManager
}

func New(procurementRepo ProcurementRepo, participantRepo ParticipantRepo, txManager pg.TXManager) *Service {
	return &Service{
		procurementRepo: procurementRepo,
		participantRepo: participantRepo,
		txManager:       txManager,
	}
}

var (
	ErrProcurementNotFound  = errors.New("procurement not found")
	ErrProcurementNotActive = errors.New("procurement is not active")
	ErrAlreadyJoined        = errors.New("already joined this procurement")
	ErrNotJoined            = errors.New("no active participation for this procurement")
)

var (
	joinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "procurements_joins_total",
		Help: "Successful procurement joins.",
	})
	joinsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "procurements_joins_rejected_total",
		Help: "Joins rejected by state or conflict checks.",
	})
	leavesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "procurements_leaves_total",
		Help: "Successful procurement leaves.",
	})
)

// Join adds the user to the procurement and recomputes its current amount.
// The row lock, the precondition checks, the insert and the recomputation all
// run inside one transaction: either the participant exists and is reflected
// in current_amount, or nothing changed.
func (s *Service) Join(ctx context.Context, procurementID, userID int, quantity, amount float64, notes string) (*domain.Participant, error) {
	var participant *domain.Participant

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		procurement, err := s.procurementRepo.FindByIDForUpdate(ctx, procurementID)
		if err != nil {
			return err
		}
		if procurement == nil {
			return ErrProcurementNotFound
		}
		if procurement.Status != domain.StatusActive {
			return ErrProcurementNotActive
		}

		existing, err := s.participantRepo.FindActive(ctx, procurementID, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyJoined
		}

		participant, err = s.participantRepo.Create(ctx, &domain.Participant{
			ProcurementID: procurementID,
			UserID:        userID,
			Quantity:      quantity,
			Amount:        amount,
			Notes:         notes,
		})
		if err != nil {
			return err
		}

		if _, err := s.procurementRepo.RecalculateCurrentAmount(ctx, procurementID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProcurementNotActive) || errors.Is(err, ErrAlreadyJoined) {
			joinsRejectedTotal.Inc()
		} else if !errors.Is(err, ErrProcurementNotFound) {
			zap.L().Error("failed to join procurement", zap.Int("procurementID", procurementID), zap.Error(err))
		}
		return nil, err
	}

	joinsTotal.Inc()
	return participant, nil
}

// Leave deactivates the user's active participation under the same
// transactional discipline as Join and returns the recomputed current amount.
func (s *Service) Leave(ctx context.Context, procurementID, userID int) (float64, error) {
	var currentAmount float64

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		procurement, err := s.procurementRepo.FindByIDForUpdate(ctx, procurementID)
		if err != nil {
			return err
		}
		if procurement == nil {
			return ErrProcurementNotFound
		}

		affected, err := s.participantRepo.Deactivate(ctx, procurementID, userID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotJoined
		}

		currentAmount, err = s.procurementRepo.RecalculateCurrentAmount(ctx, procurementID)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProcurementNotFound) && !errors.Is(err, ErrNotJoined) {
			zap.L().Error("failed to leave procurement", zap.Int("procurementID", procurementID), zap.Error(err))
		}
		return 0, err
	}

	leavesTotal.Inc()
	return currentAmount, nil
}
