package procurementservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/groupbuy/procurements/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindAll(ctx context.Context, filters domain.ProcurementFilters) ([]domain.Procurement, error)
	Create(ctx context.Context, p *domain.Procurement) (*domain.Procurement, error)
	FindByID(ctx context.Context, id int) (*domain.Procurement, error)
}

type ParticipantRepo interface {
	CountActive(ctx context.Context, procurementID int) (int, error)
}

type Service struct {
	repo            Repo
	participantRepo ParticipantRepo
}

func New(repo Repo, participantRepo ParticipantRepo) *Service {
	return &Service{
		repo:            repo,
		participantRepo: participantRepo,
	}
}

const defaultUnit = "units"

var (
	ErrValidation          = errors.New("validation failed")
	ErrProcurementNotFound = errors.New("procurement not found")
)

var knownStatuses = map[string]struct{}{
	domain.StatusDraft:     {},
	domain.StatusActive:    {},
	domain.StatusCompleted: {},
	domain.StatusCancelled: {},
}

func (s *Service) List(ctx context.Context, filters domain.ProcurementFilters) ([]domain.Procurement, error) {
	procurements, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		zap.L().Error("failed to list procurements", zap.Error(err))
		return nil, err
	}
	return procurements, nil
}

func (s *Service) Create(ctx context.Context, p *domain.Procurement) (*domain.Procurement, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	if p.Unit == "" {
		p.Unit = defaultUnit
	}
	if p.Status == "" {
		p.Status = domain.StatusDraft
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		zap.L().Error("failed to create procurement", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Procurement, error) {
	procurement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get procurement", zap.Error(err))
		return nil, err
	}
	if procurement == nil {
		return nil, ErrProcurementNotFound
	}

	count, err := s.participantRepo.CountActive(ctx, id)
	if err != nil {
		zap.L().Error("failed to count participants", zap.Error(err))
		return nil, err
	}
	procurement.ParticipantsCount = count

	return procurement, nil
}

func validate(p *domain.Procurement) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if p.TargetAmount <= 0 {
		return fmt.Errorf("%w: target_amount must be positive", ErrValidation)
	}
	if p.PricePerUnit <= 0 {
		return fmt.Errorf("%w: price_per_unit must be positive", ErrValidation)
	}
	if p.OrganizerID == 0 {
		return fmt.Errorf("%w: organizer_id is required", ErrValidation)
	}
	if p.CategoryID == 0 {
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	}
	if p.Status != "" {
		if _, ok := knownStatuses[p.Status]; !ok {
			return fmt.Errorf("%w: unknown status %q", ErrValidation, p.Status)
		}
	}
	return nil
}
