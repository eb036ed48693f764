package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DailyQuestLog records which quests a character attempted on one calendar
// day. Date is a literal YYYY-MM-DD string so that day identity never
// depends on a timezone.
type DailyQuestLog struct {
	ID          string        `gorm:"primaryKey;type:uuid" json:"id"`
	CharacterID string        `gorm:"column:character_id;not null;type:uuid" json:"characterId"`
	Date        string        `gorm:"not null" json:"date"`
	QuestIDs    pq.Int64Array `gorm:"column:quest_ids;type:integer[];not null" json:"questIds"`
	IsCompleted bool          `gorm:"column:is_completed;not null;default:false" json:"isCompleted"`
	Notes       *string       `json:"notes"`
}

func (DailyQuestLog) TableName() string {
	return "daily_quest_logs"
}

func (l *DailyQuestLog) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
