package model

// QuestDefinition is static reference data seeded at startup, never
// user-created. The ID matches the in-game quest identifier.
type QuestDefinition struct {
	ID      int          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name    string       `gorm:"not null" json:"name"`
	Zone    string       `gorm:"not null;default:Tiamaranta" json:"zone"`
	Tier    QuestTier    `gorm:"not null" json:"tier"`
	Faction QuestFaction `gorm:"not null;default:both" json:"faction"`
}

func (QuestDefinition) TableName() string {
	return "quest_definitions"
}
