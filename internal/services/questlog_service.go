package services

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/repository"
	"github.com/daevanion/legionboard/internal/validation"
)

var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrLogNotFound       = errors.New("daily quest log not found")
)

type QuestLogService struct {
	LogRepo       repository.IDailyQuestLogRepository
	CharacterRepo repository.ICharacterRepository
}

func NewQuestLogService(logRepo repository.IDailyQuestLogRepository, characterRepo repository.ICharacterRepository) *QuestLogService {
	return &QuestLogService{
		LogRepo:       logRepo,
		CharacterRepo: characterRepo,
	}
}

// SubmitDailyLog validates a raw daily-log payload and records it. A new
// log always starts incomplete; the payload cannot carry id or isCompleted
// at all (the validator rejects unknown keys).
func (s *QuestLogService) SubmitDailyLog(ctx context.Context, raw []byte) (*model.DailyQuestLog, error) {
	in, err := validation.ValidateDailyLogInsert(raw)
	if err != nil {
		return nil, err
	}

	if _, err := s.CharacterRepo.FindByID(ctx, in.CharacterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}

	log := &model.DailyQuestLog{
		CharacterID: in.CharacterID,
		Date:        in.Date,
		QuestIDs:    pq.Int64Array(in.QuestIDs),
		IsCompleted: false,
		Notes:       in.Notes,
	}

	if err := s.LogRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// CompleteLog marks an existing log as completed.
func (s *QuestLogService) CompleteLog(ctx context.Context, id string) error {
	if _, err := s.LogRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	return s.LogRepo.MarkCompleted(ctx, id)
}

// LogForDay returns the log a character submitted for one calendar day.
// The schema does not make (character, date) unique; callers that want
// one-log-per-day semantics check here before submitting.
func (s *QuestLogService) LogForDay(ctx context.Context, characterID, date string) (*model.DailyQuestLog, error) {
	log, err := s.LogRepo.FindByCharacterAndDate(ctx, characterID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return log, nil
}

// History lists a character's logs, newest day first.
func (s *QuestLogService) History(ctx context.Context, characterID string) ([]*model.DailyQuestLog, error) {
	return s.LogRepo.ListByCharacter(ctx, characterID)
}
