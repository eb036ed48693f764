package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Character 角色模型
type Character struct {
	ID       string   `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string   `gorm:"column:user_id;not null;type:uuid" json:"userId"`
	Name     string   `gorm:"not null" json:"name"`
	Class    Class    `gorm:"column:class;not null" json:"class"`
	GearTier GearTier `gorm:"column:gear_tier;not null;default:mid" json:"gearTier"`

	// ClearingScore is a cached ranking value recomputed outside this service.
	ClearingScore int `gorm:"column:clearing_score;not null;default:0" json:"clearingScore"`
}

func (Character) TableName() string {
	return "characters"
}

func (c *Character) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
