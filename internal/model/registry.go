package model

// The registry is built once at package load and is read-only afterwards.
// Referenced tables come before referencing ones so migration can create
// foreign keys in a single pass.
var allModels = []any{
	&User{},
	&FriendGroup{},
	&FriendGroupMember{},
	&Character{},
	&QuestDefinition{},
	&DailyQuestLog{},
	&AvailabilitySlot{},
	&Party{},
	&PartyMember{},
	&PartyInvite{},
}

// AllModels returns every entity in migration-safe order.
func AllModels() []any {
	out := make([]any, len(allModels))
	copy(out, allModels)
	return out
}

// Enums returns the closed value set of every enumeration, keyed by the
// enum's storage name.
func Enums() map[string][]string {
	return map[string][]string{
		"visibility":    VisibilityValues(),
		"class":         ClassValues(),
		"gear_tier":     GearTierValues(),
		"quest_tier":    QuestTierValues(),
		"quest_faction": QuestFactionValues(),
		"invite_status": InviteStatusValues(),
	}
}
