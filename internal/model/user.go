package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 用户模型
// Identity comes from Discord OAuth; DiscordID is the external identity key.
type User struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	DiscordID  string     `gorm:"column:discord_id;uniqueIndex;not null" json:"discordId"`
	Username   string     `gorm:"not null" json:"username"`
	AvatarURL  *string    `gorm:"column:avatar_url" json:"avatarUrl"`
	Visibility Visibility `gorm:"not null;default:legion" json:"visibility"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
