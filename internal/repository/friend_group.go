package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
)

// IFriendGroupRepository defines the interface for friend group operations
type IFriendGroupRepository interface {
	Create(ctx context.Context, group *model.FriendGroup) error
	FindByID(ctx context.Context, id string) (*model.FriendGroup, error)
	AddMember(ctx context.Context, groupID, userID string) error
	GetMembers(ctx context.Context, groupID string) ([]*model.User, error)
	GetOwnedGroups(ctx context.Context, ownerID string) ([]*model.FriendGroup, error)
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
}

// FriendGroupRepository implements IFriendGroupRepository interface
type FriendGroupRepository struct {
	db *gorm.DB
}

// NewFriendGroupRepository creates a new IFriendGroupRepository instance
func NewFriendGroupRepository(db *gorm.DB) IFriendGroupRepository {
	return &FriendGroupRepository{db: db}
}

// Create creates a new friend group in the database
func (r *FriendGroupRepository) Create(ctx context.Context, group *model.FriendGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// FindByID finds a friend group by ID
func (r *FriendGroupRepository) FindByID(ctx context.Context, id string) (*model.FriendGroup, error) {
	var group model.FriendGroup
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// AddMember adds a user to a friend group. A duplicate (group, user) pair
// fails on the composite primary key.
func (r *FriendGroupRepository) AddMember(ctx context.Context, groupID, userID string) error {
	member := &model.FriendGroupMember{
		GroupID: groupID,
		UserID:  userID,
	}
	return r.db.WithContext(ctx).Create(member).Error
}

// GetMembers retrieves all users that belong to a friend group
func (r *FriendGroupRepository) GetMembers(ctx context.Context, groupID string) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friend_group_members ON users.id = friend_group_members.user_id").
		Where("friend_group_members.group_id = ?", groupID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetOwnedGroups retrieves all friend groups owned by a user
func (r *FriendGroupRepository) GetOwnedGroups(ctx context.Context, ownerID string) ([]*model.FriendGroup, error) {
	var groups []*model.FriendGroup
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// IsMember checks if a user belongs to a friend group
func (r *FriendGroupRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FriendGroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
