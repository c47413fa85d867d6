package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/logger"
	"github.com/workconnect/workconnect-core/internal/store"
)

var ErrEmailTaken = errors.New("user with this email already exists")

type userStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Users owns the in-memory account collection persisted under the
// fallback_users key. Login resolves identity by email alone; no credential
// is stored or verified. That is the implemented authentication model, kept
// as-is for compatibility with existing persisted data and call sites.
type Users struct {
	mu    sync.RWMutex
	store userStore
	users []entities.User
}

func NewUsersRepository(ctx context.Context, kv userStore) *Users {
	repo := &Users{store: kv}
	repo.load(ctx)
	repo.seed(ctx)
	return repo
}

func (repo *Users) load(ctx context.Context) {
	data, err := repo.store.Get(ctx, store.KeyUsers)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to load users: %v", err)
		return
	}
	if data == nil {
		return
	}
	if err = json.Unmarshal(data, &repo.users); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to parse users: %v", err)
		repo.users = nil
		return
	}
	log.Infof("auth repository: loaded %v users", len(repo.users))
}

func (repo *Users) seed(ctx context.Context) {
	if len(repo.users) > 0 {
		return
	}

	now := nowISO()
	repo.users = []entities.User{
		{
			ID:            "test-worker-1",
			Name:          "John Worker",
			Email:         "worker@test.com",
			Phone:         "+1234567890",
			Role:          entities.RoleWorker,
			SkillType:     "Construction",
			Experience:    "5 years",
			Location:      "New York",
			WorkType:      "full-time",
			Rating:        4.5,
			TotalJobs:     25,
			TotalEarnings: 15000,
			MemberSince:   now,
		},
		{
			ID:               "test-employer-1",
			Name:             "Jane Employer",
			Email:            "employer@test.com",
			Phone:            "+1234567891",
			Role:             entities.RoleEmployer,
			Location:         "Los Angeles",
			OrganizationName: "ABC Construction",
			MemberSince:      now,
		},
	}
	repo.save(ctx)
	log.Infof("auth repository: initialized with test users: %v",
		lo.Map(repo.users, func(u entities.User, _ int) string {
			return u.Email + " (" + string(u.Role) + ")"
		}))
}

func (repo *Users) save(ctx context.Context) {
	data, err := json.Marshal(repo.users)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to serialize users: %v", err)
		return
	}
	if err = repo.store.Set(ctx, store.KeyUsers, data); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to save users: %v", err)
	}
}

// Register creates a new account. It fails only on a duplicate email; every
// other field check belongs to the session layer above.
func (repo *Users) Register(ctx context.Context, reg entities.Registration) (*entities.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if lo.SomeBy(repo.users, func(u entities.User) bool { return u.Email == reg.Email }) {
		return nil, ErrEmailTaken
	}

	user := entities.User{
		ID:               userID(),
		Name:             reg.Name,
		Email:            reg.Email,
		Phone:            reg.Phone,
		Role:             reg.Role,
		ProfileImage:     reg.ProfileImage,
		SkillType:        reg.SkillType,
		Experience:       reg.Experience,
		Location:         reg.Location,
		OrganizationName: reg.OrganizationName,
		WorkType:         reg.WorkType,
		MemberSince:      nowISO(),
	}

	repo.users = append(repo.users, user)
	repo.save(ctx)
	log.Infof("auth repository: registered %v", user.Email)
	return &user, nil
}

// Login returns the account whose email matches, or nil. The password
// argument is accepted and ignored — the historical contract this layer
// reproduces.
func (repo *Users) Login(ctx context.Context, email string, password string) *entities.User {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if user.Email == email {
			found := user
			return &found
		}
	}
	log.Infof("auth repository: no user with email %v", email)
	return nil
}

// UpdateUserProfile resolves the account by id, then by email, then by any
// matching identity field, and as a last resort synthesizes a new record
// from the patch — the tolerant upsert the call sites rely on. It reports
// success in every case.
func (repo *Users) UpdateUserProfile(ctx context.Context, idOrEmail string, patch entities.UserPatch) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	index := lo.IndexOf(lo.Map(repo.users, func(u entities.User, _ int) string { return u.ID }), idOrEmail)

	if index == -1 {
		index = lo.IndexOf(lo.Map(repo.users, func(u entities.User, _ int) string { return u.Email }), idOrEmail)
	}

	if index == -1 {
		_, i, found := lo.FindIndexOf(repo.users, func(u entities.User) bool {
			return u.ID == idOrEmail || u.Email == idOrEmail ||
				(patch.Email != nil && u.Email == *patch.Email)
		})
		if found {
			index = i
		}
	}

	if index != -1 {
		patch.Apply(&repo.users[index])
		repo.save(ctx)
		return true
	}

	log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
		Errorf("profile update: no user matching %v, synthesizing a record", idOrEmail)

	user := entities.User{
		ID:          idOrEmail,
		Name:        "Unknown User",
		Role:        entities.RoleWorker,
		MemberSince: nowISO(),
	}
	patch.Apply(&user)

	repo.users = append(repo.users, user)
	repo.save(ctx)
	return true
}

func (repo *Users) GetUserByID(ctx context.Context, id string) *entities.User {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if user.ID == id {
			found := user
			return &found
		}
	}
	return nil
}

func (repo *Users) GetAllUsers(ctx context.Context) []entities.User {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return append([]entities.User{}, repo.users...)
}

// ClearAllUsers wipes the whole collection. Debug affordance only.
func (repo *Users) ClearAllUsers(ctx context.Context) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.users = nil
	if err := repo.store.Delete(ctx, store.KeyUsers); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to clear users: %v", err)
	}
}

// SyncUserData upserts the given record by id: the session pushes its copy
// of the signed-in user here to keep the two stores aligned.
func (repo *Users) SyncUserData(ctx context.Context, user entities.User) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.users {
		if repo.users[i].ID == user.ID {
			repo.users[i] = user
			repo.save(ctx)
			return true
		}
	}

	repo.users = append(repo.users, user)
	repo.save(ctx)
	return true
}
