package images

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound reports an empty images table or an unknown image ID
var ErrNotFound = errors.New("image not found")

// Image is one entry in the image-guessing pool
type Image struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	ImageURL      string `gorm:"size:512;not null" json:"image_url"`
	CorrectAnswer string `gorm:"size:255;not null" json:"correct_answer"`
}

// TableName keeps the legacy table name
func (Image) TableName() string {
	return "images"
}

// Store interface defines methods for the image pool
type Store interface {
	Random(ctx context.Context) (Image, error)
	FindByID(ctx context.Context, id string) (Image, error)
}

// MySqlStore handles image persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new image store with GORM connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate tables
	if err := db.AutoMigrate(&Image{}); err != nil {
		return nil, fmt.Errorf("failed to migrate images table: %w", err)
	}

	return &MySqlStore{db: db}, nil
}

// Random picks one image uniformly from the pool
func (s *MySqlStore) Random(ctx context.Context) (Image, error) {
	var image Image
	result := s.db.WithContext(ctx).Order("RAND()").First(&image)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Image{}, ErrNotFound
		}
		return Image{}, fmt.Errorf("failed to get random image: %w", result.Error)
	}

	return image, nil
}

// FindByID retrieves an image by ID
func (s *MySqlStore) FindByID(ctx context.Context, id string) (Image, error) {
	var image Image
	result := s.db.WithContext(ctx).First(&image, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Image{}, ErrNotFound
		}
		return Image{}, fmt.Errorf("failed to get image: %w", result.Error)
	}

	return image, nil
}

// InMemoryStore is an in-memory image pool for tests and one-off runs
type InMemoryStore struct {
	mu     sync.RWMutex
	images []Image
}

// NewInMemoryStore creates an empty in-memory image pool
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Add inserts an image into the pool, assigning an ID if absent
func (s *InMemoryStore) Add(image Image) Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	s.images = append(s.images, image)

	return image
}

// Random picks one image uniformly from the pool
func (s *InMemoryStore) Random(ctx context.Context) (Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.images) == 0 {
		return Image{}, ErrNotFound
	}

	return s.images[rand.IntN(len(s.images))], nil
}

// FindByID retrieves an image by ID
func (s *InMemoryStore) FindByID(ctx context.Context, id string) (Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, image := range s.images {
		if image.ID == id {
			return image, nil
		}
	}

	return Image{}, ErrNotFound
}
