package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/events"
	"github.com/workconnect/workconnect-core/internal/logger"
	"github.com/workconnect/workconnect-core/internal/metrics"
	"github.com/workconnect/workconnect-core/internal/store"
	"golang.org/x/time/rate"
)

// authToken is a fixed placeholder, not a credential: its presence marks a
// signed-in session, nothing more.
const authToken = "auth-token"

type State int

const (
	StateBootstrapping State = iota
	StateAnonymous
	StateAuthenticated
)

type usersRepository interface {
	Register(ctx context.Context, reg entities.Registration) (*entities.User, error)
	Login(ctx context.Context, email string, password string) *entities.User
	UpdateUserProfile(ctx context.Context, idOrEmail string, patch entities.UserPatch) bool
	SyncUserData(ctx context.Context, user entities.User) bool
}

type sessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Alerter is the seam for the modal dialogs the app shows on failure. The
// session never lets an error escape to a caller: every failure path raises
// an alert and resolves false.
type Alerter interface {
	Alert(title string, message string)
}

type logAlerter struct{}

func (logAlerter) Alert(title string, message string) {
	log.Warnf("alert: %v: %v", title, message)
}

// Session holds the signed-in user for the whole process. It keeps its own
// denormalized copy of the user under the userData key and pushes the same
// record into the auth repository at the documented synchronization points:
// after bootstrap, login and register.
type Session struct {
	mu          sync.RWMutex
	store       sessionStore
	users       usersRepository
	bus         EventBus.Bus
	alerter     Alerter
	validate    *validator.Validate
	limiter     *rate.Limiter
	onSignedOut func()
	state       State
	user        *entities.User
}

func NewSession(kv sessionStore, users usersRepository, bus EventBus.Bus) *Session {
	return &Session{
		store:    kv,
		users:    users,
		bus:      bus,
		alerter:  logAlerter{},
		validate: validator.New(),
		state:    StateBootstrapping,
	}
}

func (s *Session) WithAlerter(alerter Alerter) *Session {
	s.alerter = alerter
	return s
}

// WithSignOutHook registers the navigation callback invoked after logout.
func (s *Session) WithSignOutHook(hook func()) *Session {
	s.onSignedOut = hook
	return s
}

// WithLoginRateLimit throttles login attempts. Zero or negative disables the
// limiter, which is the default.
func (s *Session) WithLoginRateLimit(perMinute int) *Session {
	if perMinute > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	}
	return s
}

// Bootstrap restores a persisted session, exactly once, at process start.
// A missing or unreadable userData blob means starting anonymous; a present
// one signs the user in and re-syncs the record into the auth repository.
func (s *Session) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateBootstrapping {
		return
	}
	s.state = StateAnonymous

	data, err := s.store.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
			Errorf("failed to load session user: %v", err)
		return
	}
	if data == nil {
		return
	}

	var user entities.User
	if err = json.Unmarshal(data, &user); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
			Errorf("failed to parse session user: %v", err)
		return
	}

	s.user = &user
	s.state = StateAuthenticated
	s.users.SyncUserData(ctx, user)
	log.Infof("session: restored user %v", user.ID)
}

func (s *Session) Login(ctx context.Context, email string, password string) bool {
	if s.limiter != nil && !s.limiter.Allow() {
		s.alerter.Alert("Login Failed", "Too many login attempts. Please wait and try again.")
		return false
	}

	user := s.users.Login(ctx, email, password)
	if user == nil {
		s.alerter.Alert("Login Failed",
			"Invalid email or password. Please check your credentials or try registering a new account.")
		return false
	}

	s.mu.Lock()
	s.user = user
	s.state = StateAuthenticated
	s.mu.Unlock()

	if !s.persistSession(ctx, *user) {
		s.alerter.Alert("Login Error", "An error occurred during login. Please try again.")
		return false
	}

	s.users.SyncUserData(ctx, *user)
	metrics.LoginsCounter.Inc()
	log.Infof("session: login successful for %v", user.ID)
	return true
}

func (s *Session) Register(ctx context.Context, reg entities.Registration) bool {
	if err := s.validate.Struct(reg); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
			Errorf("registration rejected: %v", err)
		s.alerter.Alert("Error", "Missing required fields. Please check your input.")
		return false
	}

	user, err := s.users.Register(ctx, reg)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
			Errorf("registration failed: %v", err)
		s.alerter.Alert("Registration Error", "An error occurred during registration. Please try again.")
		return false
	}

	s.mu.Lock()
	s.user = user
	s.state = StateAuthenticated
	s.mu.Unlock()

	if !s.persistSession(ctx, *user) {
		s.alerter.Alert("Registration Error", "An error occurred during registration. Please try again.")
		return false
	}

	s.users.SyncUserData(ctx, *user)
	metrics.RegistrationsCounter.Inc()
	if s.bus != nil {
		s.bus.Publish(events.UserRegisteredTopic, events.UserRegistered{User: *user})
	}
	log.Infof("session: registration successful for %v", user.ID)
	return true
}

func (s *Session) persistSession(ctx context.Context, user entities.User) bool {
	if err := s.store.Set(ctx, store.KeyAuthToken, []byte(authToken)); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to persist auth token: %v", err)
		return false
	}

	data, err := json.Marshal(user)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to serialize session user: %v", err)
		return false
	}
	if err = s.store.Set(ctx, store.KeyCurrentUser, data); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to persist session user: %v", err)
		return false
	}
	return true
}

func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.state = StateAnonymous
	s.mu.Unlock()

	if err := s.store.Delete(ctx, store.KeyAuthToken); err != nil {
		s.alerter.Alert("Logout Error", "An error occurred during logout")
		return
	}
	if err := s.store.Delete(ctx, store.KeyCurrentUser); err != nil {
		s.alerter.Alert("Logout Error", "An error occurred during logout")
		return
	}

	log.Info("session: logout successful")
	if s.onSignedOut != nil {
		s.onSignedOut()
	}
}

// UpdateProfile applies the patch through the auth repository, retrying by
// email when the id lookup reports failure, and then unconditionally merges
// the patch into its own copy and re-persists it. The local copy can
// therefore run ahead of the repository — the dual-write behavior callers
// observe today.
func (s *Session) UpdateProfile(ctx context.Context, patch entities.UserPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
			Error("profile update with no signed-in user")
		return false
	}

	ok := s.users.UpdateUserProfile(ctx, s.user.ID, patch)
	if !ok && s.user.Email != "" {
		ok = s.users.UpdateUserProfile(ctx, s.user.Email, patch)
	}
	if !ok {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
			Errorf("profile update failed in repository for %v, keeping local copy", s.user.ID)
	}

	updated := *s.user
	patch.Apply(&updated)
	s.user = &updated

	data, err := json.Marshal(updated)
	if err == nil {
		if err = s.store.Set(ctx, store.KeyCurrentUser, data); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
				Errorf("failed to persist updated session user: %v", err)
		}
	}

	return true
}

// UploadProfileImage stores the image reference on the profile. An empty
// string removes the photo.
func (s *Session) UploadProfileImage(ctx context.Context, uri string) bool {
	if s.User() == nil {
		return false
	}
	return s.UpdateProfile(ctx, entities.UserPatch{ProfileImage: &uri})
}

func (s *Session) User() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}
