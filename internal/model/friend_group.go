package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendGroup is a named circle of friends owned by a single user.
type FriendGroup struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID string `gorm:"column:owner_id;not null;type:uuid" json:"ownerId"`
	Name    string `gorm:"not null" json:"name"`
}

func (FriendGroup) TableName() string {
	return "friend_groups"
}

func (g *FriendGroup) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// FriendGroupMember joins users into friend groups.
// The composite primary key keeps a (group, user) pair unique.
type FriendGroupMember struct {
	GroupID string `gorm:"column:group_id;primaryKey;type:uuid" json:"groupId"`
	UserID  string `gorm:"column:user_id;primaryKey;type:uuid" json:"userId"`
}

func (FriendGroupMember) TableName() string {
	return "friend_group_members"
}
