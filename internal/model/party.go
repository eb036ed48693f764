package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Party is a scheduled group session built around a shared set of quests.
// CreatedBy is an audit reference only; it confers no special privileges.
// DisbandedAt is a one-way soft-delete marker: null means active.
type Party struct {
	ID             string        `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedBy      string        `gorm:"column:created_by;not null;type:uuid" json:"createdBy"`
	SharedQuestIDs pq.Int64Array `gorm:"column:shared_quest_ids;type:integer[];not null" json:"sharedQuestIds"`
	ScheduledStart time.Time     `gorm:"column:scheduled_start;not null" json:"scheduledStart"`
	ScheduledEnd   time.Time     `gorm:"column:scheduled_end;not null" json:"scheduledEnd"`

	// EstimatedClearTime is in minutes.
	EstimatedClearTime *int `gorm:"column:estimated_clear_time" json:"estimatedClearTime"`

	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	DisbandedAt *time.Time `gorm:"column:disbanded_at" json:"disbandedAt"`
}

func (Party) TableName() string {
	return "parties"
}

func (p *Party) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Active reports whether the party has not been disbanded.
func (p *Party) Active() bool {
	return p.DisbandedAt == nil
}

// PartyMember joins a user (playing one specific character) into a party.
// The composite primary key keeps a (party, user) pair unique. There is no
// role column: all members have equal standing.
type PartyMember struct {
	PartyID     string `gorm:"column:party_id;primaryKey;type:uuid" json:"partyId"`
	UserID      string `gorm:"column:user_id;primaryKey;type:uuid" json:"userId"`
	CharacterID string `gorm:"column:character_id;not null;type:uuid" json:"characterId"`

	JoinedAt time.Time `gorm:"column:joined_at;not null;default:CURRENT_TIMESTAMP" json:"joinedAt"`
}

func (PartyMember) TableName() string {
	return "party_members"
}

// PartyInvite is an invitation from one user to another for a specific
// party. Status moves pending -> accepted|declined exactly once, and
// RespondedAt is set on that transition.
type PartyInvite struct {
	ID          string       `gorm:"primaryKey;type:uuid" json:"id"`
	PartyID     string       `gorm:"column:party_id;not null;type:uuid" json:"partyId"`
	SenderID    string       `gorm:"column:sender_id;not null;type:uuid" json:"senderId"`
	RecipientID string       `gorm:"column:recipient_id;not null;type:uuid" json:"recipientId"`
	Status      InviteStatus `gorm:"not null;default:pending" json:"status"`

	SentAt      time.Time  `gorm:"column:sent_at;not null;default:CURRENT_TIMESTAMP" json:"sentAt"`
	ExpiresAt   time.Time  `gorm:"column:expires_at;not null" json:"expiresAt"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"respondedAt"`
}

func (PartyInvite) TableName() string {
	return "party_invites"
}

func (i *PartyInvite) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Expired reports whether the invite's expiry has passed at the given time.
func (i *PartyInvite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
