package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
)

// IAvailabilityRepository defines the interface for availability slot operations
type IAvailabilityRepository interface {
	Create(ctx context.Context, slot *model.AvailabilitySlot) error
	ListByUser(ctx context.Context, userID string) ([]*model.AvailabilitySlot, error)
	Delete(ctx context.Context, id string) error
}

// AvailabilityRepository implements IAvailabilityRepository interface
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new IAvailabilityRepository instance
func NewAvailabilityRepository(db *gorm.DB) IAvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Create creates a new availability slot in the database
func (r *AvailabilityRepository) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

// ListByUser retrieves all availability slots for a user, earliest first
func (r *AvailabilityRepository) ListByUser(ctx context.Context, userID string) ([]*model.AvailabilitySlot, error) {
	var slots []*model.AvailabilitySlot
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// Delete removes an availability slot. Slots are user-managed calendar rows,
// the one entity with a hard delete.
func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AvailabilitySlot{}).Error
}
