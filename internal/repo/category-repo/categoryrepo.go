package categoryrepo

import (
	"context"

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

func (r *Repository) FindActive(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT id, name, description, is_active, created_at
        FROM categories
        WHERE is_active = true
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.IsActive, &category.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}
