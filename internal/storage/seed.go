package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/daevanion/legionboard/internal/model"
)

// tiamarantaDailies is the static quest catalogue. Ids match the in-game
// quest identifiers, which is why they are assigned by hand rather than by
// the database.
var tiamarantaDailies = []model.QuestDefinition{
	{ID: 41701, Name: "Suppressing the Wildlife", Zone: "Tiamaranta", Tier: model.QuestTierLesser, Faction: model.FactionBoth},
	{ID: 41702, Name: "Gathering Aether Crystals", Zone: "Tiamaranta", Tier: model.QuestTierLesser, Faction: model.FactionBoth},
	{ID: 41703, Name: "Scouting the Eye", Zone: "Tiamaranta", Tier: model.QuestTierLesser, Faction: model.FactionBoth},
	{ID: 41711, Name: "Dispatching the Raiders", Zone: "Tiamaranta", Tier: model.QuestTierMedium, Faction: model.FactionBoth},
	{ID: 41712, Name: "Securing the Siel Gate", Zone: "Tiamaranta", Tier: model.QuestTierMedium, Faction: model.FactionElyos},
	{ID: 41713, Name: "Holding the Marchutan Line", Zone: "Tiamaranta", Tier: model.QuestTierMedium, Faction: model.FactionAsmodian},
	{ID: 41721, Name: "Breaking the Fortress Siege", Zone: "Tiamaranta", Tier: model.QuestTierGreater, Faction: model.FactionBoth},
	{ID: 41722, Name: "Hunting the Guardian General", Zone: "Tiamaranta", Tier: model.QuestTierGreater, Faction: model.FactionElyos},
	{ID: 41723, Name: "Silencing the Shulack Smugglers", Zone: "Tiamaranta", Tier: model.QuestTierGreater, Faction: model.FactionAsmodian},
	{ID: 41731, Name: "Slaying the Dragon Lord's Herald", Zone: "Tiamaranta", Tier: model.QuestTierMajor, Faction: model.FactionBoth},
	{ID: 41732, Name: "Raiding Tiamat's Stronghold", Zone: "Tiamaranta", Tier: model.QuestTierMajor, Faction: model.FactionBoth},
}

// QuestDefinitions returns the seed catalogue.
func QuestDefinitions() []model.QuestDefinition {
	out := make([]model.QuestDefinition, len(tiamarantaDailies))
	copy(out, tiamarantaDailies)
	return out
}

// SeedQuestDefinitions inserts the static quest catalogue, skipping rows
// that already exist. Idempotent: safe to run on every startup.
func SeedQuestDefinitions(ctx context.Context, db *gorm.DB) error {
	defs := QuestDefinitions()
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defs).Error
}
