package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/daevanion/legionboard/internal/model"
)

// IQuestDefinitionRepository defines the interface for static quest data
type IQuestDefinitionRepository interface {
	Seed(ctx context.Context, definitions []model.QuestDefinition) error
	FindByID(ctx context.Context, id int) (*model.QuestDefinition, error)
	ListByZone(ctx context.Context, zone string) ([]*model.QuestDefinition, error)
	ListByTier(ctx context.Context, tier model.QuestTier) ([]*model.QuestDefinition, error)
}

// QuestDefinitionRepository implements IQuestDefinitionRepository interface
type QuestDefinitionRepository struct {
	db *gorm.DB
}

// NewQuestDefinitionRepository creates a new IQuestDefinitionRepository instance
func NewQuestDefinitionRepository(db *gorm.DB) IQuestDefinitionRepository {
	return &QuestDefinitionRepository{db: db}
}

// Seed inserts the static quest definitions, skipping ids that already
// exist. Safe to run on every startup.
func (r *QuestDefinitionRepository) Seed(ctx context.Context, definitions []model.QuestDefinition) error {
	if len(definitions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&definitions).Error
}

// FindByID finds a quest definition by its game id
func (r *QuestDefinitionRepository) FindByID(ctx context.Context, id int) (*model.QuestDefinition, error) {
	var def model.QuestDefinition
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&def).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// ListByZone retrieves all quest definitions for a zone
func (r *QuestDefinitionRepository) ListByZone(ctx context.Context, zone string) ([]*model.QuestDefinition, error) {
	var defs []*model.QuestDefinition
	err := r.db.WithContext(ctx).
		Where("zone = ?", zone).
		Order("id").
		Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// ListByTier retrieves all quest definitions of one tier
func (r *QuestDefinitionRepository) ListByTier(ctx context.Context, tier model.QuestTier) ([]*model.QuestDefinition, error) {
	var defs []*model.QuestDefinition
	err := r.db.WithContext(ctx).
		Where("tier = ?", tier).
		Order("id").
		Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}
