package service

import (
	"github.com/groupbuy/procurements/internal/handlers/categories"
	"github.com/groupbuy/procurements/internal/handlers/participation"
	"github.com/groupbuy/procurements/internal/handlers/procurements"

	"github.com/groupbuy/procurements/internal/pg"
	"github.com/groupbuy/procurements/internal/repo"
	categoryservice "github.com/groupbuy/procurements/internal/service/categoryservice"
	participationservice "github.com/groupbuy/procurements/internal/service/participationservice"
	procurementservice "github.com/groupbuy/procurements/internal/service/procurementservice"
)

type Services struct {
	ProcurementService   procurements.Service
	ParticipationService participation.Service
	CategoryService      categories.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	procurementService := procurementservice.New(repo.ProcurementRepo, repo.ParticipantRepo)
	participationService := participationservice.New(repo.ProcurementRepo, repo.ParticipantRepo, txManager)
	categoryService := categoryservice.New(repo.CategoryRepo)

	return &Services{
		ProcurementService:   procurementService,
		ParticipationService: participationService,
		CategoryService:      categoryService,
	}
}
