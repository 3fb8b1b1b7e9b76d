package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/groupbuy/procurements/internal/config"
	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/groupbuy/procurements/pkg/clients"
)

const (
	maxNotifyRetries = 3
	retryInterval    = time.Second * 1
)

var reviewing sync.Map

type ProcurementRepo interface {
	FindDueForReview(ctx context.Context, limit uint32) ([]domain.Procurement, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Procurement, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type Notification struct {
	ProcurementID int    `json:"procurement_id"`
	Status        string `json:"status"`
}

// Service periodically reviews active procurements and transitions those
// past their deadline or over their stop threshold. The participation engine
// never transitions status itself; this is the collaborator that does.
type Service struct {
	notifyURL       string
	procurementRepo ProcurementRepo
	txManager       pg.TXManager
	client          clients.HTTPClientI
	limit           uint32
	workerPool      WorkerPoolI
	reviewInterval  time.Duration
}

func New(cfg *config.Config, procurementRepo ProcurementRepo, txManager pg.TXManager, client clients.HTTPClientI) *Service {
	return &Service{
		notifyURL:       cfg.NotifyAddress,
		procurementRepo: procurementRepo,
		txManager:       txManager,
		client:          client,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		reviewInterval:  time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Lifecycle reviewer started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.reviewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping lifecycle reviewer")
			return
		case <-ticker.C:
			s.reviewProcurements(ctx)
		}
	}
}

func (s *Service) reviewProcurements(ctx context.Context) {
	procurements, err := s.procurementRepo.FindDueForReview(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch procurements for review", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, procurement := range procurements {
		procurement := procurement

		if _, loaded := reviewing.LoadOrStore(procurement.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer reviewing.Delete(procurement.ID)
				return s.reviewProcurement(ctx, procurement.ID)
			})
			if err != nil {
				reviewing.Delete(procurement.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reviewing procurements", zap.Error(err))
	}
}

var errNoTransition = errors.New("no transition due")

// reviewProcurement re-reads the procurement under a row lock, decides the
// transition and persists it in one transaction, then notifies the external
// bot service. Notification failure never rolls back the transition.
func (s *Service) reviewProcurement(ctx context.Context, id int) error {
	var nextStatus string

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		procurement, err := s.procurementRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if procurement == nil || procurement.Status != domain.StatusActive {
			return errNoTransition
		}

		nextStatus = decideTransition(procurement, time.Now())
		if nextStatus == "" {
			return errNoTransition
		}
		return s.procurementRepo.UpdateStatus(ctx, id, nextStatus)
	})
	if errors.Is(err, errNoTransition) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to transition procurement %d: %w", id, err)
	}

	zap.L().Info("Procurement transitioned",
		zap.Int("procurementID", id),
		zap.String("status", nextStatus),
	)
	s.notify(ctx, id, nextStatus)
	return nil
}

// decideTransition applies the closure policy: completed once the stop
// threshold is reached, or once the deadline passed with the target met;
// cancelled when the deadline passed short of target.
func decideTransition(p *domain.Procurement, now time.Time) string {
	if p.StopAtAmount != nil && p.CurrentAmount >= *p.StopAtAmount {
		return domain.StatusCompleted
	}
	if p.Deadline != nil && p.Deadline.Before(now) {
		if p.CurrentAmount >= p.TargetAmount {
			return domain.StatusCompleted
		}
		return domain.StatusCancelled
	}
	return ""
}

func (s *Service) notify(ctx context.Context, id int, status string) {
	body, err := json.Marshal(Notification{ProcurementID: id, Status: status})
	if err != nil {
		zap.L().Error("Failed to marshal notification", zap.Error(err))
		return
	}

	url := s.notifyURL + "/api/notifications/procurements"
	for attempt := 1; attempt <= maxNotifyRetries; attempt++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		statusCode, _, err := s.client.Post(url, body, nil)
		if err == nil && statusCode < 500 {
			return
		}
		zap.L().Warn("Notification attempt failed",
			zap.Int("procurementID", id),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < maxNotifyRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	zap.L().Error("Giving up on notification", zap.Int("procurementID", id))
}
