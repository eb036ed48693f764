package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/repository"
	"github.com/daevanion/legionboard/internal/validation"
)

var ErrOwnerNotFound = errors.New("owning user does not exist")

type CharacterService struct {
	CharacterRepo repository.ICharacterRepository
	UserRepo      repository.IUserRepository
}

func NewCharacterService(characterRepo repository.ICharacterRepository, userRepo repository.IUserRepository) *CharacterService {
	return &CharacterService{
		CharacterRepo: characterRepo,
		UserRepo:      userRepo,
	}
}

// CreateCharacter validates a raw character payload and adds the character
// to the owner's roster. GearTier falls back to the storage default (mid)
// when omitted; the clearing score starts at whatever the payload carries
// (usually 0) and is recomputed later by the ranking job.
func (s *CharacterService) CreateCharacter(ctx context.Context, raw []byte) (*model.Character, error) {
	in, err := validation.ValidateCharacterInsert(raw)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	character := &model.Character{
		UserID:        in.UserID,
		Name:          in.Name,
		Class:         model.Class(in.Class),
		ClearingScore: in.ClearingScore,
	}
	if in.GearTier != "" {
		character.GearTier = model.GearTier(in.GearTier)
	} else {
		character.GearTier = model.GearTierMid
	}

	if err := s.CharacterRepo.Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

// Roster lists all characters belonging to a user.
func (s *CharacterService) Roster(ctx context.Context, userID string) ([]*model.Character, error) {
	return s.CharacterRepo.FindByUser(ctx, userID)
}
