package model

// Visibility controls who can see a user's profile and schedule.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityLegion  Visibility = "legion"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

// Class is one of the fixed playable game classes.
type Class string

const (
	ClassGladiator    Class = "gladiator"
	ClassTemplar      Class = "templar"
	ClassRanger       Class = "ranger"
	ClassAssassin     Class = "assassin"
	ClassSpiritmaster Class = "spiritmaster"
	ClassSorcerer     Class = "sorcerer"
	ClassCleric       Class = "cleric"
	ClassChanter      Class = "chanter"
	ClassGunner       Class = "gunner"
	ClassAethertech   Class = "aethertech"
	ClassSongweaver   Class = "songweaver"
)

// GearTier is a coarse bucket of a character's equipment progression.
type GearTier string

const (
	GearTierEarly GearTier = "early"
	GearTierMid   GearTier = "mid"
	GearTierEnd   GearTier = "end"
)

// QuestTier ranks a daily quest by difficulty and reward.
type QuestTier string

const (
	QuestTierLesser  QuestTier = "lesser"
	QuestTierMedium  QuestTier = "medium"
	QuestTierGreater QuestTier = "greater"
	QuestTierMajor   QuestTier = "major"
)

// QuestFaction restricts a quest to one faction, or opens it to both.
type QuestFaction string

const (
	FactionElyos    QuestFaction = "elyos"
	FactionAsmodian QuestFaction = "asmodian"
	FactionBoth     QuestFaction = "both"
)

// InviteStatus is the lifecycle state of a party invite.
// An invite starts pending and moves exactly once to accepted or declined.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

func VisibilityValues() []string {
	return []string{"public", "legion", "friends", "private"}
}

func ClassValues() []string {
	return []string{
		"gladiator", "templar", "ranger", "assassin", "spiritmaster",
		"sorcerer", "cleric", "chanter", "gunner", "aethertech", "songweaver",
	}
}

func GearTierValues() []string {
	return []string{"early", "mid", "end"}
}

func QuestTierValues() []string {
	return []string{"lesser", "medium", "greater", "major"}
}

func QuestFactionValues() []string {
	return []string{"elyos", "asmodian", "both"}
}

func InviteStatusValues() []string {
	return []string{"pending", "accepted", "declined"}
}

func (v Visibility) Valid() bool   { return contains(VisibilityValues(), string(v)) }
func (c Class) Valid() bool        { return contains(ClassValues(), string(c)) }
func (g GearTier) Valid() bool     { return contains(GearTierValues(), string(g)) }
func (q QuestTier) Valid() bool    { return contains(QuestTierValues(), string(q)) }
func (f QuestFaction) Valid() bool { return contains(QuestFactionValues(), string(f)) }
func (s InviteStatus) Valid() bool { return contains(InviteStatusValues(), string(s)) }

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
