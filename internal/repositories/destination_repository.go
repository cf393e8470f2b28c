package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"roamio/internal/models/db_models"
)

type DestinationRepository interface {
	ListByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
	Create(ctx context.Context, destination *db_models.Destination) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (d *destinationRepository) ListByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []db_models.Destination
	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM destinations
        WHERE (1 - (embedding <=> $1)) > 0.5
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	err := d.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (d *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) error {
	return d.db.WithContext(ctx).Create(destination).Error
}
