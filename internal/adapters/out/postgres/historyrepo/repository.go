package historyrepo

import (
	"context"
	"time"

	"partner/internal/core/domain/model/order"
	"partner/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHistoryRepository implements OrderArchiver using GORM.
type GormHistoryRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{
		db:  db,
		now: time.Now,
	}
}

// Archive saves a delivered order into the history table. Archiving the same
// assignment id again overwrites the existing row, so a delivery that is
// re-reported by the service never produces duplicate history.
func (r *GormHistoryRepository) Archive(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, r.now().UTC())
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetHistory retrieves archived deliveries, most recently archived first.
func (r *GormHistoryRepository) GetHistory(ctx context.Context) ([]*order.Order, error) {
	var dtos []DeliveredOrderDTO
	if err := r.db.WithContext(ctx).Order("archived_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

var _ ports.OrderArchiver = (*GormHistoryRepository)(nil)
