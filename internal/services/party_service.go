package services

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/repository"
)

var (
	ErrPartyNotFound      = errors.New("party not found")
	ErrPartyDisbanded     = errors.New("party has been disbanded")
	ErrNoSharedQuests     = errors.New("party must share at least one quest")
	ErrCharacterNotOwned  = errors.New("character does not belong to the joining user")
	ErrAlreadyPartyMember = errors.New("user already joined this party")
	ErrInviteNotFound     = errors.New("invite not found")
	ErrInviteResolved     = errors.New("invite has already been responded to")
	ErrInviteExpired      = errors.New("invite has expired")
	ErrInviteNoExpiry     = errors.New("invite requires an expiry time")
)

type PartyService struct {
	PartyRepo     repository.IPartyRepository
	InviteRepo    repository.IPartyInviteRepository
	CharacterRepo repository.ICharacterRepository

	// now is swappable so invite expiry is testable.
	now func() time.Time
}

func NewPartyService(partyRepo repository.IPartyRepository, inviteRepo repository.IPartyInviteRepository, characterRepo repository.ICharacterRepository) *PartyService {
	return &PartyService{
		PartyRepo:     partyRepo,
		InviteRepo:    inviteRepo,
		CharacterRepo: characterRepo,
		now:           time.Now,
	}
}

type CreatePartyRequest struct {
	CreatedBy          string    `json:"createdBy"`
	SharedQuestIDs     []int64   `json:"sharedQuestIds"`
	ScheduledStart     time.Time `json:"scheduledStart"`
	ScheduledEnd       time.Time `json:"scheduledEnd"`
	EstimatedClearTime *int      `json:"estimatedClearTime"`
}

// CreateParty schedules a new group session. CreatedBy is recorded for
// audit only; the creator holds no special role afterwards.
func (s *PartyService) CreateParty(ctx context.Context, req *CreatePartyRequest) (*model.Party, error) {
	if len(req.SharedQuestIDs) == 0 {
		return nil, ErrNoSharedQuests
	}

	party := &model.Party{
		CreatedBy:          req.CreatedBy,
		SharedQuestIDs:     pq.Int64Array(req.SharedQuestIDs),
		ScheduledStart:     req.ScheduledStart,
		ScheduledEnd:       req.ScheduledEnd,
		EstimatedClearTime: req.EstimatedClearTime,
	}
	if err := s.PartyRepo.Create(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

// JoinParty adds a user to an active party with exactly one character, which
// must be on that user's own roster.
func (s *PartyService) JoinParty(ctx context.Context, partyID, userID, characterID string) error {
	party, err := s.PartyRepo.FindByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartyNotFound
		}
		return err
	}
	if !party.Active() {
		return ErrPartyDisbanded
	}

	character, err := s.CharacterRepo.FindByID(ctx, characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCharacterNotFound
		}
		return err
	}
	if character.UserID != userID {
		return ErrCharacterNotOwned
	}

	isMember, err := s.PartyRepo.IsMember(ctx, partyID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return ErrAlreadyPartyMember
	}

	member := &model.PartyMember{
		PartyID:     partyID,
		UserID:      userID,
		CharacterID: characterID,
	}
	return s.PartyRepo.AddMember(ctx, member)
}

// Disband soft-deletes a party. The transition is one-way: disbanding an
// already disbanded party reports ErrPartyDisbanded and changes nothing.
func (s *PartyService) Disband(ctx context.Context, partyID string) error {
	ok, err := s.PartyRepo.Disband(ctx, partyID, s.now())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	// Nothing changed: either the party never existed or it was already
	// disbanded.
	if _, err := s.PartyRepo.FindByID(ctx, partyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartyNotFound
		}
		return err
	}
	return ErrPartyDisbanded
}

// SendInvite creates a pending invite for a party. Every invite must carry
// an expiry.
func (s *PartyService) SendInvite(ctx context.Context, partyID, senderID, recipientID string, expiresAt time.Time) (*model.PartyInvite, error) {
	if expiresAt.IsZero() {
		return nil, ErrInviteNoExpiry
	}

	party, err := s.PartyRepo.FindByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartyNotFound
		}
		return nil, err
	}
	if !party.Active() {
		return nil, ErrPartyDisbanded
	}

	invite := &model.PartyInvite{
		PartyID:     partyID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      model.InviteStatusPending,
		SentAt:      s.now(),
		ExpiresAt:   expiresAt,
	}
	if err := s.InviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// RespondToInvite resolves a pending invite. Only pending -> accepted and
// pending -> declined are legal; anything else is rejected, and an invite
// past its expiry cannot be responded to at all.
func (s *PartyService) RespondToInvite(ctx context.Context, inviteID string, accept bool) error {
	invite, err := s.InviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if invite.Status != model.InviteStatusPending {
		return ErrInviteResolved
	}
	now := s.now()
	if invite.Expired(now) {
		return ErrInviteExpired
	}

	status := model.InviteStatusDeclined
	if accept {
		status = model.InviteStatusAccepted
	}

	ok, err := s.InviteRepo.Respond(ctx, inviteID, status, now)
	if err != nil {
		return err
	}
	if !ok {
		// Lost a race with another responder.
		return ErrInviteResolved
	}
	return nil
}

// ListActiveParties lists parties that have not been disbanded.
func (s *PartyService) ListActiveParties(ctx context.Context) ([]*model.Party, error) {
	return s.PartyRepo.ListActive(ctx)
}
