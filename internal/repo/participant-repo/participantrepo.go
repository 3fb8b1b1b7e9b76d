package participantrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, participant *domain.Participant) (*domain.Participant, error) {
	query := `
        INSERT INTO participants (procurement_id, user_id, quantity, amount, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, procurement_id, user_id, quantity, amount, notes, is_active, joined_at
    `
	row := r.db.QueryRow(ctx, query,
		participant.ProcurementID, participant.UserID, participant.Quantity,
		participant.Amount, participant.Notes,
	)
	var created domain.Participant
	err := row.Scan(
		&created.ID, &created.ProcurementID, &created.UserID, &created.Quantity,
		&created.Amount, &created.Notes, &created.IsActive, &created.JoinedAt,
	)
	if err != nil {
		zap.L().Error("can't create participant", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindActive(ctx context.Context, procurementID, userID int) (*domain.Participant, error) {
	query := `
        SELECT id, procurement_id, user_id, quantity, amount, notes, is_active, joined_at
        FROM participants
        WHERE procurement_id = $1 AND user_id = $2 AND is_active = true
    `
	row := r.db.QueryRow(ctx, query, procurementID, userID)
	var participant domain.Participant
	err := row.Scan(
		&participant.ID, &participant.ProcurementID, &participant.UserID, &participant.Quantity,
		&participant.Amount, &participant.Notes, &participant.IsActive, &participant.JoinedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active participant", zap.Error(err))
		return nil, err
	}
	return &participant, nil
}

// Deactivate soft-deletes the user's active participation and reports how
// many rows were affected (0 means no active participation existed).
func (r *Repository) Deactivate(ctx context.Context, procurementID, userID int) (int64, error) {
	query := `
        UPDATE participants
        SET is_active = false
        WHERE procurement_id = $1 AND user_id = $2 AND is_active = true
    `
	tag, err := r.db.Exec(ctx, query, procurementID, userID)
	if err != nil {
		zap.L().Error("can't deactivate participant", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) CountActive(ctx context.Context, procurementID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM participants
        WHERE procurement_id = $1 AND is_active = true
    `
	var count int
	if err := r.db.QueryRow(ctx, query, procurementID).Scan(&count); err != nil {
		zap.L().Error("can't count active participants", zap.Error(err))
		return 0, err
	}
	return count, nil
}
