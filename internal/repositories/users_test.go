package repositories

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/store"
)

func Test_UsersRepository_SeedsTestAccountsOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepository(ctx, store.NewMemory())

	users := repo.GetAllUsers(ctx)
	require.Len(t, users, 2)

	worker := repo.GetUserByID(ctx, "test-worker-1")
	require.NotNil(t, worker)
	assert.Equal(t, "worker@test.com", worker.Email)
	assert.Equal(t, entities.RoleWorker, worker.Role)
	assert.Equal(t, 4.5, worker.Rating)
	assert.Equal(t, 25, worker.TotalJobs)

	employer := repo.GetUserByID(ctx, "test-employer-1")
	require.NotNil(t, employer)
	assert.Equal(t, "ABC Construction", employer.OrganizationName)
}

func Test_UsersRepository_RegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepository(ctx, store.NewMemory())

	reg := entities.Registration{
		Name:     "Alice",
		Email:    "alice@test.com",
		Phone:    "+1111111111",
		Password: "secret",
		Role:     entities.RoleWorker,
	}

	created, err := repo.Register(ctx, reg)
	require.NoError(t, err)
	assert.Regexp(t, `^user_\d+_[0-9a-z]{9}$`, created.ID)
	assert.NotEmpty(t, created.MemberSince)

	_, err = repo.Register(ctx, reg)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.GetAllUsers(ctx), 3)
}

func Test_UsersRepository_LoginIgnoresPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepository(ctx, store.NewMemory())

	withPassword := repo.Login(ctx, "worker@test.com", "anything")
	require.NotNil(t, withPassword)
	assert.Equal(t, "test-worker-1", withPassword.ID)

	withGarbage := repo.Login(ctx, "worker@test.com", "totally-wrong")
	require.NotNil(t, withGarbage)
	assert.Equal(t, withPassword.ID, withGarbage.ID)

	assert.Nil(t, repo.Login(ctx, "stranger@test.com", "anything"))
}

func Test_UsersRepository_UpdateByID(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepository(ctx, store.NewMemory())

	ok := repo.UpdateUserProfile(ctx, "test-worker-1", entities.UserPatch{
		Name:     lo.ToPtr("John W."),
		Location: lo.ToPtr("Boston"),
	})
	assert.True(t, ok)

	user := repo.GetUserByID(ctx, "test-worker-1")
	require.NotNil(t, user)
	assert.Equal(t, "John W.", user.Name)
	assert.Equal(t, "Boston", user.Location)
	assert.Equal(t, "worker@test.com", user.Email)
}

func Test_UsersRepository_UpdateFallsBackToEmailLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepository(ctx, store.NewMemory())

	ok := repo.UpdateUserProfile(ctx, "employer@test.com", entities.UserPatch{
		OrganizationName: lo.ToPtr("ABC Builders"),
	})
	assert.True(t, ok)

	user := repo.GetUserByID(ctx, "test-employer-1")
	require.NotNil(t, user)
	assert.Equal(t, "ABC Builders", user.OrganizationName)
}

func Test_UsersRepository_UpdateSynthesizesMissingUser(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepository(ctx, store.NewMemory())

	ok := repo.UpdateUserProfile(ctx, "ghost-1", entities.UserPatch{
		Location: lo.ToPtr("Chicago"),
	})
	assert.True(t, ok)

	user := repo.GetUserByID(ctx, "ghost-1")
	require.NotNil(t, user)
	assert.Equal(t, "Unknown User", user.Name)
	assert.Equal(t, entities.RoleWorker, user.Role)
	assert.Equal(t, "Chicago", user.Location)
	assert.NotEmpty(t, user.MemberSince)
}

func Test_UsersRepository_SyncUserDataUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepository(ctx, store.NewMemory())

	existing := *repo.GetUserByID(ctx, "test-worker-1")
	existing.Name = "Renamed Worker"
	assert.True(t, repo.SyncUserData(ctx, existing))
	assert.Equal(t, "Renamed Worker", repo.GetUserByID(ctx, "test-worker-1").Name)

	fresh := entities.User{ID: "user_1_abc", Name: "New User", Role: entities.RoleEmployer}
	assert.True(t, repo.SyncUserData(ctx, fresh))
	assert.Len(t, repo.GetAllUsers(ctx), 3)
}

func Test_UsersRepository_ClearAllUsers(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := NewUsersRepository(ctx, kv)

	repo.ClearAllUsers(ctx)
	assert.Empty(t, repo.GetAllUsers(ctx))

	data, err := kv.Get(ctx, store.KeyUsers)
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func Test_UsersRepository_StateSurvivesRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	first := NewUsersRepository(ctx, kv)
	created, err := first.Register(ctx, entities.Registration{
		Name:     "Alice",
		Email:    "alice@test.com",
		Phone:    "+1111111111",
		Password: "secret",
		Role:     entities.RoleEmployer,
	})
	require.NoError(t, err)

	second := NewUsersRepository(ctx, kv)
	assert.Equal(t, created, second.GetUserByID(ctx, created.ID))
	assert.Len(t, second.GetAllUsers(ctx), 3)
}
