package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/repository"
)

var ErrSlotTimesMissing = errors.New("availability slot requires a start and end time")

type AvailabilityService struct {
	SlotRepo repository.IAvailabilityRepository
	UserRepo repository.IUserRepository
}

func NewAvailabilityService(slotRepo repository.IAvailabilityRepository, userRepo repository.IUserRepository) *AvailabilityService {
	return &AvailabilityService{
		SlotRepo: slotRepo,
		UserRepo: userRepo,
	}
}

// AddSlot records a window of time a user expects to be online. Both
// timestamps must be present, but start < end is deliberately not checked:
// the schema does not promise it, and overlap math lives elsewhere.
func (s *AvailabilityService) AddSlot(ctx context.Context, userID string, start, end time.Time, recurring bool) (*model.AvailabilitySlot, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrSlotTimesMissing
	}
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	slot := &model.AvailabilitySlot{
		UserID:      userID,
		StartTime:   start,
		EndTime:     end,
		IsRecurring: recurring,
	}
	if err := s.SlotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// Schedule lists a user's availability slots, earliest first.
func (s *AvailabilityService) Schedule(ctx context.Context, userID string) ([]*model.AvailabilitySlot, error) {
	return s.SlotRepo.ListByUser(ctx, userID)
}

// RemoveSlot hard-deletes a slot. Availability is the one entity with a
// hard delete: it is user-managed calendar data with no audit value.
func (s *AvailabilityService) RemoveSlot(ctx context.Context, id string) error {
	return s.SlotRepo.Delete(ctx, id)
}
