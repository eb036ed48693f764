package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/daevanion/legionboard/internal/model"
	"github.com/daevanion/legionboard/internal/validation"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByDiscordID(_ context.Context, discordID string) (*model.User, error) {
	for _, user := range r.users {
		if user.DiscordID == discordID {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.Register(ctx, []byte(`{"discordId":"190283740918273","username":"Sylvara"}`))
	require.NoError(t, err)

	assert.Equal(t, "190283740918273", user.DiscordID)
	assert.Equal(t, model.VisibilityLegion, user.Visibility, "visibility defaults to legion")
}

func TestRegisterDuplicateDiscordID(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(ctx, []byte(`{"discordId":"190283740918273","username":"Sylvara"}`))
	require.NoError(t, err)

	_, err = svc.Register(ctx, []byte(`{"discordId":"190283740918273","username":"Sylvarb"}`))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterInvalidPayload(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), []byte(`{"discordId":"1","username":"ab","visibility":"everyone"}`))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("username"))
	assert.True(t, verrs.Has("visibility"))
}

func TestCreateCharacter(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	userRepo.users[testCharacterID] = &model.User{ID: testCharacterID, DiscordID: "1", Username: "Sylvara"}
	svc := NewCharacterService(newFakeCharacterRepo(), userRepo)

	payload := fmt.Sprintf(`{"userId":%q,"name":"Kaelen","class":"sorcerer"}`, testCharacterID)
	character, err := svc.CreateCharacter(ctx, []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, model.ClassSorcerer, character.Class)
	assert.Equal(t, model.GearTierMid, character.GearTier, "gear tier defaults to mid")
	assert.Zero(t, character.ClearingScore)
}

func TestCreateCharacterUnknownOwner(t *testing.T) {
	svc := NewCharacterService(newFakeCharacterRepo(), newFakeUserRepo())

	payload := `{"userId":"9f8a11aa-0000-4000-8000-aaaaaaaaaaaa","name":"Kaelen","class":"sorcerer"}`
	_, err := svc.CreateCharacter(context.Background(), []byte(payload))
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}
