package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/justintdct/CineVault/cinevault-go/internal/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserStore keeps registered accounts in memory. Passwords are stored as
// bcrypt hashes only.
type UserStore struct {
	mu     sync.RWMutex
	byID   map[string]*model.User
	byName map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:   make(map[string]*model.User),
		byName: make(map[string]string),
	}
}

// Create registers a new user with a generated id.
func (s *UserStore) Create(username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[username]; taken {
		return nil, ErrUsernameTaken
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.byID[user.ID] = user
	s.byName[username] = user.ID
	return user, nil
}

// Get returns the user with the given id.
func (s *UserStore) Get(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByUsername returns the user with the given username.
func (s *UserStore) GetByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.byID[id], nil
}

// VerifyPassword checks a candidate password against the stored hash.
func (s *UserStore) VerifyPassword(username, password string) bool {
	user, err := s.GetByUsername(username)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
