// Package historyrepo persists delivered orders as an append-only history.
// This package implements the archiver port on PostgreSQL, handling the
// conversion between domain orders and their database representation.
package historyrepo

import (
	"time"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// DeliveredOrderDTO represents the database structure for archived deliveries.
// One row per assignment id; re-archiving the same delivery overwrites the row
// so the history stays deduplicated across refresh cycles.
type DeliveredOrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EarningsCents    int64
	EarningsCurrency string
	PickupAddress    string
	DropoffAddress   string
	CustomerName     string
	AssignedAt       time.Time
	ArchivedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for archived deliveries.
func (DeliveredOrderDTO) TableName() string {
	return "delivered_orders"
}

// fromDomain converts a delivered order to its database representation.
func fromDomain(o *order.Order, archivedAt time.Time) DeliveredOrderDTO {
	return DeliveredOrderDTO{
		ID:               o.ID().Bytes(),
		EarningsCents:    o.Earnings().Cents(),
		EarningsCurrency: o.Earnings().Currency(),
		PickupAddress:    o.PickupAddress(),
		DropoffAddress:   o.DropoffAddress(),
		CustomerName:     o.CustomerName(),
		AssignedAt:       o.AssignedAt(),
		ArchivedAt:       archivedAt,
	}
}

// toDomain reconstructs a delivered order from its database row.
func toDomain(dto DeliveredOrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	earnings, err := kernel.NewMoney(dto.EarningsCents, dto.EarningsCurrency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Delivered,
		earnings,
		dto.PickupAddress,
		dto.DropoffAddress,
		dto.CustomerName,
		dto.AssignedAt,
	)
}
