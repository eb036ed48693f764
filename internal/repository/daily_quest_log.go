package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
)

// IDailyQuestLogRepository defines the interface for daily quest log operations
type IDailyQuestLogRepository interface {
	Create(ctx context.Context, log *model.DailyQuestLog) error
	FindByID(ctx context.Context, id string) (*model.DailyQuestLog, error)
	FindByCharacterAndDate(ctx context.Context, characterID, date string) (*model.DailyQuestLog, error)
	MarkCompleted(ctx context.Context, id string) error
	ListByCharacter(ctx context.Context, characterID string) ([]*model.DailyQuestLog, error)
}

// DailyQuestLogRepository implements IDailyQuestLogRepository interface
type DailyQuestLogRepository struct {
	db *gorm.DB
}

// NewDailyQuestLogRepository creates a new IDailyQuestLogRepository instance
func NewDailyQuestLogRepository(db *gorm.DB) IDailyQuestLogRepository {
	return &DailyQuestLogRepository{db: db}
}

// Create creates a new daily quest log in the database
func (r *DailyQuestLogRepository) Create(ctx context.Context, log *model.DailyQuestLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// FindByID finds a daily quest log by ID
func (r *DailyQuestLogRepository) FindByID(ctx context.Context, id string) (*model.DailyQuestLog, error) {
	var log model.DailyQuestLog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindByCharacterAndDate finds the log a character submitted for one
// calendar day. The schema does not make (character, date) unique, so this
// returns the first match; callers that want one-log-per-day semantics
// check here before inserting.
func (r *DailyQuestLogRepository) FindByCharacterAndDate(ctx context.Context, characterID, date string) (*model.DailyQuestLog, error) {
	var log model.DailyQuestLog
	err := r.db.WithContext(ctx).
		Where("character_id = ? AND date = ?", characterID, date).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// MarkCompleted flips the completion flag on a log
func (r *DailyQuestLogRepository) MarkCompleted(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.DailyQuestLog{}).
		Where("id = ?", id).
		Update("is_completed", true).Error
}

// ListByCharacter retrieves all logs for a character, newest day first
func (r *DailyQuestLogRepository) ListByCharacter(ctx context.Context, characterID string) ([]*model.DailyQuestLog, error) {
	var logs []*model.DailyQuestLog
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
