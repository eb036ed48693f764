package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
)

// In-memory fakes standing in for the gorm repositories. They reproduce the
// two storage guards the service relies on: not-found lookups return
// gorm.ErrRecordNotFound, and Disband/Respond only touch rows still in
// their starting state.

type fakePartyRepo struct {
	parties map[string]*model.Party
	members []*model.PartyMember
	nextID  int
}

func newFakePartyRepo() *fakePartyRepo {
	return &fakePartyRepo{parties: make(map[string]*model.Party)}
}

func (r *fakePartyRepo) Create(_ context.Context, party *model.Party) error {
	if party.ID == "" {
		r.nextID++
		party.ID = fmt.Sprintf("party-%d", r.nextID)
	}
	r.parties[party.ID] = party
	return nil
}

func (r *fakePartyRepo) FindByID(_ context.Context, id string) (*model.Party, error) {
	party, ok := r.parties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return party, nil
}

func (r *fakePartyRepo) ListActive(_ context.Context) ([]*model.Party, error) {
	var out []*model.Party
	for _, p := range r.parties {
		if p.Active() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePartyRepo) Disband(_ context.Context, id string, at time.Time) (bool, error) {
	party, ok := r.parties[id]
	if !ok || party.DisbandedAt != nil {
		return false, nil
	}
	party.DisbandedAt = &at
	return true, nil
}

func (r *fakePartyRepo) AddMember(_ context.Context, member *model.PartyMember) error {
	r.members = append(r.members, member)
	return nil
}

func (r *fakePartyRepo) GetMembers(_ context.Context, partyID string) ([]*model.PartyMember, error) {
	var out []*model.PartyMember
	for _, m := range r.members {
		if m.PartyID == partyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakePartyRepo) IsMember(_ context.Context, partyID, userID string) (bool, error) {
	for _, m := range r.members {
		if m.PartyID == partyID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeInviteRepo struct {
	invites map[string]*model.PartyInvite
	nextID  int
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: make(map[string]*model.PartyInvite)}
}

func (r *fakeInviteRepo) Create(_ context.Context, invite *model.PartyInvite) error {
	if invite.ID == "" {
		r.nextID++
		invite.ID = fmt.Sprintf("invite-%d", r.nextID)
	}
	r.invites[invite.ID] = invite
	return nil
}

func (r *fakeInviteRepo) FindByID(_ context.Context, id string) (*model.PartyInvite, error) {
	invite, ok := r.invites[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return invite, nil
}

func (r *fakeInviteRepo) ListPendingForUser(_ context.Context, recipientID string) ([]*model.PartyInvite, error) {
	var out []*model.PartyInvite
	for _, i := range r.invites {
		if i.RecipientID == recipientID && i.Status == model.InviteStatusPending {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) Respond(_ context.Context, id string, status model.InviteStatus, at time.Time) (bool, error) {
	invite, ok := r.invites[id]
	if !ok || invite.Status != model.InviteStatusPending {
		return false, nil
	}
	invite.Status = status
	invite.RespondedAt = &at
	return true, nil
}

type fakeCharacterRepo struct {
	characters map[string]*model.Character
}

func newFakeCharacterRepo() *fakeCharacterRepo {
	return &fakeCharacterRepo{characters: make(map[string]*model.Character)}
}

func (r *fakeCharacterRepo) Create(_ context.Context, character *model.Character) error {
	r.characters[character.ID] = character
	return nil
}

func (r *fakeCharacterRepo) FindByID(_ context.Context, id string) (*model.Character, error) {
	character, ok := r.characters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return character, nil
}

func (r *fakeCharacterRepo) FindByUser(_ context.Context, userID string) ([]*model.Character, error) {
	var out []*model.Character
	for _, c := range r.characters {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCharacterRepo) UpdateClearingScore(_ context.Context, id string, score int) error {
	if c, ok := r.characters[id]; ok {
		c.ClearingScore = score
	}
	return nil
}

func newTestPartyService() (*PartyService, *fakePartyRepo, *fakeInviteRepo, *fakeCharacterRepo) {
	partyRepo := newFakePartyRepo()
	inviteRepo := newFakeInviteRepo()
	characterRepo := newFakeCharacterRepo()
	return NewPartyService(partyRepo, inviteRepo, characterRepo), partyRepo, inviteRepo, characterRepo
}

func seedParty(t *testing.T, svc *PartyService) *model.Party {
	t.Helper()
	party, err := svc.CreateParty(context.Background(), &CreatePartyRequest{
		CreatedBy:      "user-owner",
		SharedQuestIDs: []int64{41701, 41711},
		ScheduledStart: time.Now().Add(time.Hour),
		ScheduledEnd:   time.Now().Add(3 * time.Hour),
	})
	require.NoError(t, err)
	return party
}

func TestCreatePartyRequiresSharedQuests(t *testing.T) {
	svc, _, _, _ := newTestPartyService()

	_, err := svc.CreateParty(context.Background(), &CreatePartyRequest{
		CreatedBy:      "user-owner",
		SharedQuestIDs: []int64{},
	})
	assert.ErrorIs(t, err, ErrNoSharedQuests)
}

func TestJoinParty(t *testing.T) {
	ctx := context.Background()
	svc, partyRepo, _, characterRepo := newTestPartyService()
	party := seedParty(t, svc)

	characterRepo.characters["char-1"] = &model.Character{ID: "char-1", UserID: "user-a", Name: "Kaelen", Class: model.ClassSorcerer}

	require.NoError(t, svc.JoinParty(ctx, party.ID, "user-a", "char-1"))

	members, err := partyRepo.GetMembers(ctx, party.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "user-a", members[0].UserID)
	assert.Equal(t, "char-1", members[0].CharacterID)
}

func TestJoinPartyRejectsBorrowedCharacter(t *testing.T) {
	ctx := context.Background()
	svc, _, _, characterRepo := newTestPartyService()
	party := seedParty(t, svc)

	characterRepo.characters["char-1"] = &model.Character{ID: "char-1", UserID: "user-a"}

	err := svc.JoinParty(ctx, party.ID, "user-b", "char-1")
	assert.ErrorIs(t, err, ErrCharacterNotOwned)
}

func TestJoinPartyRejectsSecondJoin(t *testing.T) {
	ctx := context.Background()
	svc, _, _, characterRepo := newTestPartyService()
	party := seedParty(t, svc)

	characterRepo.characters["char-1"] = &model.Character{ID: "char-1", UserID: "user-a"}
	characterRepo.characters["char-2"] = &model.Character{ID: "char-2", UserID: "user-a"}

	require.NoError(t, svc.JoinParty(ctx, party.ID, "user-a", "char-1"))

	// Same user again, even with a different character.
	err := svc.JoinParty(ctx, party.ID, "user-a", "char-2")
	assert.ErrorIs(t, err, ErrAlreadyPartyMember)
}

func TestDisbandIsOneWay(t *testing.T) {
	ctx := context.Background()
	svc, partyRepo, _, _ := newTestPartyService()
	party := seedParty(t, svc)

	require.NoError(t, svc.Disband(ctx, party.ID))
	require.NotNil(t, partyRepo.parties[party.ID].DisbandedAt)
	firstStamp := *partyRepo.parties[party.ID].DisbandedAt

	err := svc.Disband(ctx, party.ID)
	assert.ErrorIs(t, err, ErrPartyDisbanded)
	assert.Equal(t, firstStamp, *partyRepo.parties[party.ID].DisbandedAt, "disbandedAt must never move once set")

	err = svc.Disband(ctx, "no-such-party")
	assert.ErrorIs(t, err, ErrPartyNotFound)
}

func TestDisbandedPartiesLeaveActiveList(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestPartyService()
	keep := seedParty(t, svc)
	drop := seedParty(t, svc)

	require.NoError(t, svc.Disband(ctx, drop.ID))

	active, err := svc.ListActiveParties(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)
}

func TestDisbandedPartyRefusesJoinAndInvite(t *testing.T) {
	ctx := context.Background()
	svc, _, _, characterRepo := newTestPartyService()
	party := seedParty(t, svc)
	characterRepo.characters["char-1"] = &model.Character{ID: "char-1", UserID: "user-a"}

	require.NoError(t, svc.Disband(ctx, party.ID))

	assert.ErrorIs(t, svc.JoinParty(ctx, party.ID, "user-a", "char-1"), ErrPartyDisbanded)

	_, err := svc.SendInvite(ctx, party.ID, "user-owner", "user-a", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrPartyDisbanded)
}

func TestSendInviteRequiresExpiry(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestPartyService()
	party := seedParty(t, svc)

	_, err := svc.SendInvite(ctx, party.ID, "user-owner", "user-a", time.Time{})
	assert.ErrorIs(t, err, ErrInviteNoExpiry)
}

func TestRespondToInviteTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _, inviteRepo, _ := newTestPartyService()
	party := seedParty(t, svc)

	invite, err := svc.SendInvite(ctx, party.ID, "user-owner", "user-a", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, model.InviteStatusPending, invite.Status)
	require.Nil(t, invite.RespondedAt)

	require.NoError(t, svc.RespondToInvite(ctx, invite.ID, true))

	stored := inviteRepo.invites[invite.ID]
	assert.Equal(t, model.InviteStatusAccepted, stored.Status)
	assert.NotNil(t, stored.RespondedAt, "respondedAt is set exactly on the pending transition")

	// Resolved invites never transition again.
	assert.ErrorIs(t, svc.RespondToInvite(ctx, invite.ID, false), ErrInviteResolved)
	assert.Equal(t, model.InviteStatusAccepted, stored.Status)
}

func TestRespondToInviteDecline(t *testing.T) {
	ctx := context.Background()
	svc, _, inviteRepo, _ := newTestPartyService()
	party := seedParty(t, svc)

	invite, err := svc.SendInvite(ctx, party.ID, "user-owner", "user-a", time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.RespondToInvite(ctx, invite.ID, false))
	assert.Equal(t, model.InviteStatusDeclined, inviteRepo.invites[invite.ID].Status)
}

func TestRespondToInviteExpired(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestPartyService()
	party := seedParty(t, svc)

	invite, err := svc.SendInvite(ctx, party.ID, "user-owner", "user-a", time.Now().Add(time.Minute))
	require.NoError(t, err)

	// Move the service clock past the expiry.
	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	assert.ErrorIs(t, svc.RespondToInvite(ctx, invite.ID, true), ErrInviteExpired)
}

func TestRespondToInviteNotFound(t *testing.T) {
	svc, _, _, _ := newTestPartyService()
	assert.ErrorIs(t, svc.RespondToInvite(context.Background(), "no-such-invite", true), ErrInviteNotFound)
}
