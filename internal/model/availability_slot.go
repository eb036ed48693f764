package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySlot is a window of time a user expects to be online.
// Nothing here enforces StartTime < EndTime; the source schema does not
// either, and overlap math lives outside this service.
type AvailabilitySlot struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"column:user_id;not null;type:uuid" json:"userId"`
	StartTime   time.Time `gorm:"column:start_time;not null" json:"startTime"`
	EndTime     time.Time `gorm:"column:end_time;not null" json:"endTime"`
	IsRecurring bool      `gorm:"column:is_recurring;not null;default:false" json:"isRecurring"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

func (s *AvailabilitySlot) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
