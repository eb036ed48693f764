package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/repository"
	"github.com/daevanion/legionboard/internal/validation"
)

var (
	ErrUserAlreadyExists = errors.New("a user with this discord id already exists")
	ErrUserNotFound      = errors.New("user not found")
)

type UserService struct {
	UserRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// Register validates a raw user payload and creates the user. The Discord
// id is the external identity key and must not already be taken.
func (s *UserService) Register(ctx context.Context, raw []byte) (*model.User, error) {
	in, err := validation.ValidateUserInsert(raw)
	if err != nil {
		return nil, err
	}

	existing, err := s.UserRepo.FindByDiscordID(ctx, in.DiscordID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	user := &model.User{
		DiscordID: in.DiscordID,
		Username:  in.Username,
		AvatarURL: in.AvatarURL,
	}
	if in.Visibility != "" {
		user.Visibility = model.Visibility(in.Visibility)
	} else {
		user.Visibility = model.VisibilityLegion
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile loads a user by id.
func (s *UserService) GetProfile(ctx context.Context, id string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
