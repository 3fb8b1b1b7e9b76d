package categoryservice

import (
	"context"

	"github.com/groupbuy/procurements/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindActive(ctx context.Context) ([]domain.Category, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
