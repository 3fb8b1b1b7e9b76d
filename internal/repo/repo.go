package repo

import (
	"github.com/groupbuy/procurements/internal/pg"
	categoryrepo "github.com/groupbuy/procurements/internal/repo/category-repo"
	participantrepo "github.com/groupbuy/procurements/internal/repo/participant-repo"
	procurementrepo "github.com/groupbuy/procurements/internal/repo/procurement-repo"
)

type Repositories struct {
	ProcurementRepo *procurementrepo.Repository
	ParticipantRepo *participantrepo.Repository
	CategoryRepo    *categoryrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	procurementRepo := procurementrepo.New(conn, txManager)
	participantRepo := participantrepo.New(conn)
	categoryRepo := categoryrepo.New(conn)

	return &Repositories{
		ProcurementRepo: procurementRepo,
		ParticipantRepo: participantRepo,
		CategoryRepo:    categoryRepo,
	}
}
