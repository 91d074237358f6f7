package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrNotFound reports a lookup for a user that does not exist
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken reports a registration against an existing username
	ErrUsernameTaken = errors.New("username already exists")
)

// User is a registered player. The password is stored only as a bcrypt hash.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:60;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store interface defines methods for user persistence
type Store interface {
	Create(ctx context.Context, username, passwordHash string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}

// MySqlStore handles user persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new user store with GORM connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate tables
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate users table: %w", err)
	}

	return &MySqlStore{db: db}, nil
}

// Create inserts a new user, rejecting duplicate usernames
func (s *MySqlStore) Create(ctx context.Context, username, passwordHash string) (User, error) {
	// Check for an existing username first for a clean error; the unique
	// index still backstops races
	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return User{}, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return User{}, ErrUsernameTaken
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByUsername retrieves a user by their unique username
func (s *MySqlStore) FindByUsername(ctx context.Context, username string) (User, error) {
	var user User
	result := s.db.WithContext(ctx).First(&user, "username = ?", username)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", result.Error)
	}

	return user, nil
}

// FindByID retrieves a user by ID
func (s *MySqlStore) FindByID(ctx context.Context, id string) (User, error) {
	var user User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", result.Error)
	}

	return user, nil
}

// InMemoryStore is an in-memory user store for tests and one-off runs
type InMemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]User
	byNames map[string]string // username -> id
}

// NewInMemoryStore creates an empty in-memory user store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:    make(map[string]User),
		byNames: make(map[string]string),
	}
}

// Create inserts a new user, rejecting duplicate usernames
func (s *InMemoryStore) Create(ctx context.Context, username, passwordHash string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byNames[username]; exists {
		return User{}, ErrUsernameTaken
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	s.byID[user.ID] = user
	s.byNames[username] = user.ID

	return user, nil
}

// FindByUsername retrieves a user by their unique username
func (s *InMemoryStore) FindByUsername(ctx context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byNames[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return s.byID[id], nil
}

// FindByID retrieves a user by ID
func (s *InMemoryStore) FindByID(ctx context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}
