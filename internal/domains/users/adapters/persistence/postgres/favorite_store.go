package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	userports "github.com/lemono/storefront-api/internal/domains/users/ports"
)

var _ userports.FavoriteStore = (*FavoriteStore)(nil)

// FavoriteStore persists the favorites relation in PostgreSQL.
type FavoriteStore struct {
	db *gorm.DB
}

func NewFavoriteStore(db *gorm.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

type favoriteRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    string    `gorm:"column:user_id;type:varchar(64);uniqueIndex:idx_favorites_user_product"`
	ProductID string    `gorm:"column:product_id;type:varchar(64);uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteRecord) TableName() string { return "favorites" }

// Add inserts the pair; a duplicate surfaces as ports.ErrAlreadyFavorite.
func (s *FavoriteStore) Add(ctx context.Context, userID, productID string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	rec := favoriteRecord{UserID: userID, ProductID: productID}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return userports.ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

// Remove deletes the pair; removing an absent favorite is not an error.
func (s *FavoriteStore) Remove(ctx context.Context, userID, productID string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Delete(&favoriteRecord{}, "user_id = ? AND product_id = ?", userID, productID).Error
}

// ListProductIDs returns the product ids the user favorited, newest first.
func (s *FavoriteStore) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var ids []string
	err := s.db.WithContext(ctx).Model(&favoriteRecord{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *FavoriteStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres favorite store not configured")
	}
	return nil
}
