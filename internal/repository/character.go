package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
)

// ICharacterRepository defines the interface for character data operations
type ICharacterRepository interface {
	Create(ctx context.Context, character *model.Character) error
	FindByID(ctx context.Context, id string) (*model.Character, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Character, error)
	UpdateClearingScore(ctx context.Context, id string, score int) error
}

// CharacterRepository implements ICharacterRepository interface
type CharacterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository creates a new ICharacterRepository instance
func NewCharacterRepository(db *gorm.DB) ICharacterRepository {
	return &CharacterRepository{db: db}
}

// Create creates a new character in the database
func (r *CharacterRepository) Create(ctx context.Context, character *model.Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

// FindByID finds a character by ID
func (r *CharacterRepository) FindByID(ctx context.Context, id string) (*model.Character, error) {
	var character model.Character
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&character).Error
	if err != nil {
		return nil, err
	}
	return &character, nil
}

// FindByUser retrieves all characters on a user's roster
func (r *CharacterRepository) FindByUser(ctx context.Context, userID string) ([]*model.Character, error) {
	var characters []*model.Character
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

// UpdateClearingScore overwrites the cached clearing score for a character.
// The score itself is computed by the ranking job outside this service.
func (r *CharacterRepository) UpdateClearingScore(ctx context.Context, id string, score int) error {
	return r.db.WithContext(ctx).
		Model(&model.Character{}).
		Where("id = ?", id).
		Update("clearing_score", score).Error
}
