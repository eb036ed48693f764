package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/repository"
)

var (
	ErrGroupNotFound    = errors.New("friend group not found")
	ErrAlreadyGroupUser = errors.New("user already belongs to this friend group")
	ErrGroupNameEmpty   = errors.New("friend group name must not be empty")
)

type FriendGroupService struct {
	GroupRepo repository.IFriendGroupRepository
	UserRepo  repository.IUserRepository
}

func NewFriendGroupService(groupRepo repository.IFriendGroupRepository, userRepo repository.IUserRepository) *FriendGroupService {
	return &FriendGroupService{
		GroupRepo: groupRepo,
		UserRepo:  userRepo,
	}
}

// CreateGroup creates a named friend circle owned by one user. The owner is
// also enrolled as the first member.
func (s *FriendGroupService) CreateGroup(ctx context.Context, ownerID, name string) (*model.FriendGroup, error) {
	if name == "" {
		return nil, ErrGroupNameEmpty
	}
	if _, err := s.UserRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	group := &model.FriendGroup{
		OwnerID: ownerID,
		Name:    name,
	}
	if err := s.GroupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	if err := s.GroupRepo.AddMember(ctx, group.ID, ownerID); err != nil {
		return nil, err
	}
	return group, nil
}

// AddFriend enrolls a user into a friend group. A user can belong to a
// group at most once.
func (s *FriendGroupService) AddFriend(ctx context.Context, groupID, userID string) error {
	if _, err := s.GroupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return err
	}
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	isMember, err := s.GroupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return ErrAlreadyGroupUser
	}
	return s.GroupRepo.AddMember(ctx, groupID, userID)
}

// Members lists the users enrolled in a group.
func (s *FriendGroupService) Members(ctx context.Context, groupID string) ([]*model.User, error) {
	if _, err := s.GroupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return s.GroupRepo.GetMembers(ctx, groupID)
}

// OwnedGroups lists the friend groups a user owns.
func (s *FriendGroupService) OwnedGroups(ctx context.Context, ownerID string) ([]*model.FriendGroup, error) {
	return s.GroupRepo.GetOwnedGroups(ctx, ownerID)
}
