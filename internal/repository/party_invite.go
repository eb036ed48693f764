package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
)

// IPartyInviteRepository defines the interface for party invite operations
type IPartyInviteRepository interface {
	Create(ctx context.Context, invite *model.PartyInvite) error
	FindByID(ctx context.Context, id string) (*model.PartyInvite, error)
	ListPendingForUser(ctx context.Context, recipientID string) ([]*model.PartyInvite, error)
	Respond(ctx context.Context, id string, status model.InviteStatus, at time.Time) (bool, error)
}

// PartyInviteRepository implements IPartyInviteRepository interface
type PartyInviteRepository struct {
	db *gorm.DB
}

// NewPartyInviteRepository creates a new IPartyInviteRepository instance
func NewPartyInviteRepository(db *gorm.DB) IPartyInviteRepository {
	return &PartyInviteRepository{db: db}
}

// Create creates a new party invite in the database
func (r *PartyInviteRepository) Create(ctx context.Context, invite *model.PartyInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// FindByID finds a party invite by ID
func (r *PartyInviteRepository) FindByID(ctx context.Context, id string) (*model.PartyInvite, error) {
	var invite model.PartyInvite
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&invite).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListPendingForUser retrieves all pending invites addressed to a user
func (r *PartyInviteRepository) ListPendingForUser(ctx context.Context, recipientID string) ([]*model.PartyInvite, error) {
	var invites []*model.PartyInvite
	err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", recipientID, model.InviteStatusPending).
		Order("sent_at").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// Respond moves an invite out of pending, stamping responded_at in the same
// update. The WHERE guard only matches pending rows, so the transition runs
// at most once even under concurrent responses; the returned bool reports
// whether this call won.
func (r *PartyInviteRepository) Respond(ctx context.Context, id string, status model.InviteStatus, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.PartyInvite{}).
		Where("id = ? AND status = ?", id, model.InviteStatusPending).
		Updates(map[string]any{
			"status":       status,
			"responded_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
