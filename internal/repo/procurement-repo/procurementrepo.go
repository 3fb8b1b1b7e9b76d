package procurementrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/groupbuy/procurements/internal/domain"
	"github.com/groupbuy/procurements/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanProcurement(row pgx.Row, p *domain.Procurement) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Description, &p.CategoryID, &p.OrganizerID,
		&p.City, &p.DeliveryAddress, &p.Unit, &p.PricePerUnit,
		&p.TargetAmount, &p.StopAtAmount, &p.CurrentAmount, &p.Status,
		&p.Deadline, &p.PaymentDeadline, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *Repository) FindAll(ctx context.Context, filters domain.ProcurementFilters) ([]domain.Procurement, error) {
	where, args := BuildWhereClause(filters)
	query := `
        SELECT id, title, description, category_id, organizer_id, city, delivery_address,
               unit, price_per_unit, target_amount, stop_at_amount, current_amount, status,
               deadline, payment_deadline, image_url, created_at, updated_at,
               (SELECT COUNT(*) FROM participants pt
                WHERE pt.procurement_id = procurements.id AND pt.is_active = true) AS participants_count
        FROM procurements` + where + `
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get procurements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var procurements []domain.Procurement
	for rows.Next() {
		var p domain.Procurement
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.CategoryID, &p.OrganizerID,
			&p.City, &p.DeliveryAddress, &p.Unit, &p.PricePerUnit,
			&p.TargetAmount, &p.StopAtAmount, &p.CurrentAmount, &p.Status,
			&p.Deadline, &p.PaymentDeadline, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
			&p.ParticipantsCount,
		)
		if err != nil {
			zap.L().Error("can't scan procurement row", zap.Error(err))
			return nil, err
		}
		procurements = append(procurements, p)
	}
	return procurements, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Procurement) (*domain.Procurement, error) {
	query := `
        INSERT INTO procurements (title, description, category_id, organizer_id, city, delivery_address,
                                  unit, price_per_unit, target_amount, stop_at_amount, status, deadline,
                                  payment_deadline, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, title, description, category_id, organizer_id, city, delivery_address,
                  unit, price_per_unit, target_amount, stop_at_amount, current_amount, status,
                  deadline, payment_deadline, image_url, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		p.Title, p.Description, p.CategoryID, p.OrganizerID, p.City, p.DeliveryAddress,
		p.Unit, p.PricePerUnit, p.TargetAmount, p.StopAtAmount, p.Status, p.Deadline,
		p.PaymentDeadline, p.ImageURL,
	)
	var created domain.Procurement
	if err := scanProcurement(row, &created); err != nil {
		zap.L().Error("can't create procurement", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Procurement, error) {
	query := `
        SELECT id, title, description, category_id, organizer_id, city, delivery_address,
               unit, price_per_unit, target_amount, stop_at_amount, current_amount, status,
               deadline, payment_deadline, image_url, created_at, updated_at
        FROM procurements
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var p domain.Procurement
	err := scanProcurement(row, &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find procurement", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// FindByIDForUpdate locks the procurement row for the duration of the
// surrounding transaction. Must be called inside TXManager.Begin.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Procurement, error) {
	query := `
        SELECT id, title, description, category_id, organizer_id, city, delivery_address,
               unit, price_per_unit, target_amount, stop_at_amount, current_amount, status,
               deadline, payment_deadline, image_url, created_at, updated_at
        FROM procurements
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, id)
	var p domain.Procurement
	err := scanProcurement(row, &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock procurement", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// RecalculateCurrentAmount derives the aggregate from the authoritative
// active-participant set and returns the new value.
func (r *Repository) RecalculateCurrentAmount(ctx context.Context, id int) (float64, error) {
	query := `
        UPDATE procurements
        SET current_amount = (SELECT COALESCE(SUM(amount), 0) FROM participants
                              WHERE procurement_id = $1 AND is_active = true),
            updated_at = NOW()
        WHERE id = $1
        RETURNING current_amount
    `
	var currentAmount float64
	if err := r.db.QueryRow(ctx, query, id).Scan(&currentAmount); err != nil {
		zap.L().Error("can't recalculate current amount", zap.Error(err))
		return 0, err
	}
	return currentAmount, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE procurements
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("can't update procurement status", zap.Error(err))
		return err
	}
	return nil
}

// FindDueForReview returns active procurements whose deadline has passed or
// whose aggregate reached the stop threshold.
func (r *Repository) FindDueForReview(ctx context.Context, limit uint32) ([]domain.Procurement, error) {
	query := `
        SELECT id, title, description, category_id, organizer_id, city, delivery_address,
               unit, price_per_unit, target_amount, stop_at_amount, current_amount, status,
               deadline, payment_deadline, image_url, created_at, updated_at
        FROM procurements
        WHERE status = 'active'
          AND (deadline < NOW() OR (stop_at_amount IS NOT NULL AND current_amount >= stop_at_amount))
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get procurements for review", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var procurements []domain.Procurement
	for rows.Next() {
		var p domain.Procurement
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.CategoryID, &p.OrganizerID,
			&p.City, &p.DeliveryAddress, &p.Unit, &p.PricePerUnit,
			&p.TargetAmount, &p.StopAtAmount, &p.CurrentAmount, &p.Status,
			&p.Deadline, &p.PaymentDeadline, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan procurement row for review", zap.Error(err))
			return nil, err
		}
		procurements = append(procurements, p)
	}
	return procurements, nil
}
