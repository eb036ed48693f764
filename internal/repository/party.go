package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
)

// IPartyRepository defines the interface for party data operations
type IPartyRepository interface {
	Create(ctx context.Context, party *model.Party) error
	FindByID(ctx context.Context, id string) (*model.Party, error)
	ListActive(ctx context.Context) ([]*model.Party, error)
	Disband(ctx context.Context, id string, at time.Time) (bool, error)
	AddMember(ctx context.Context, member *model.PartyMember) error
	GetMembers(ctx context.Context, partyID string) ([]*model.PartyMember, error)
	IsMember(ctx context.Context, partyID, userID string) (bool, error)
}

// PartyRepository implements IPartyRepository interface
type PartyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new IPartyRepository instance
func NewPartyRepository(db *gorm.DB) IPartyRepository {
	return &PartyRepository{db: db}
}

// Create creates a new party in the database
func (r *PartyRepository) Create(ctx context.Context, party *model.Party) error {
	return r.db.WithContext(ctx).Create(party).Error
}

// FindByID finds a party by ID
func (r *PartyRepository) FindByID(ctx context.Context, id string) (*model.Party, error) {
	var party model.Party
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&party).Error
	if err != nil {
		return nil, err
	}
	return &party, nil
}

// ListActive retrieves all parties that have not been disbanded
func (r *PartyRepository) ListActive(ctx context.Context) ([]*model.Party, error) {
	var parties []*model.Party
	err := r.db.WithContext(ctx).
		Where("disbanded_at IS NULL").
		Order("scheduled_start").
		Find(&parties).Error
	if err != nil {
		return nil, err
	}
	return parties, nil
}

// Disband stamps disbanded_at on an active party. The WHERE guard makes the
// soft delete one-way: a party that is already disbanded is never touched,
// and the returned bool reports whether this call did the disband.
func (r *PartyRepository) Disband(ctx context.Context, id string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Party{}).
		Where("id = ? AND disbanded_at IS NULL", id).
		Update("disbanded_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddMember adds a user with their chosen character to a party. A duplicate
// (party, user) pair fails on the composite primary key.
func (r *PartyRepository) AddMember(ctx context.Context, member *model.PartyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetMembers retrieves all members of a party
func (r *PartyRepository) GetMembers(ctx context.Context, partyID string) ([]*model.PartyMember, error) {
	var members []*model.PartyMember
	err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// IsMember checks if a user already joined a party
func (r *PartyRepository) IsMember(ctx context.Context, partyID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PartyMember{}).
		Where("party_id = ? AND user_id = ?", partyID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
