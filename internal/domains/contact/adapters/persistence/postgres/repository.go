package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lemono/storefront-api/internal/domains/contact/domain"
	"github.com/lemono/storefront-api/internal/domains/contact/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists contact messages and newsletter subscriptions in
// PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type contactMessageRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;index"`
	Body      string    `gorm:"column:body;type:text"`
	Read      bool      `gorm:"column:read;index"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (contactMessageRecord) TableName() string { return "contact_messages" }

func (r contactMessageRecord) toDomain() *domain.Message {
	return &domain.Message{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Body:      r.Body,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
}

type newsletterSubscriptionRecord struct {
	Email     string    `gorm:"primaryKey;column:email"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (newsletterSubscriptionRecord) TableName() string { return "newsletter_subscriptions" }

// SaveMessage stores a contact-form entry.
func (r *Repository) SaveMessage(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := contactMessageRecord{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// ListMessages returns a page of contact messages, newest first.
func (r *Repository) ListMessages(ctx context.Context, filter ports.MessageFilter, page ports.Page) ([]*domain.Message, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	query := r.db.WithContext(ctx).Model(&contactMessageRecord{})
	if filter.Read != nil {
		query = query.Where("read = ?", *filter.Read)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}
	if page.Offset > 0 {
		query = query.Offset(page.Offset)
	}

	var records []contactMessageRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	messages := make([]*domain.Message, 0, len(records))
	for i := range records {
		messages = append(messages, records[i].toDomain())
	}
	return messages, total, nil
}

// MarkMessageRead flags a message as seen and returns the updated row.
func (r *Repository) MarkMessageRead(ctx context.Context, id string) (*domain.Message, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&contactMessageRecord{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrMessageNotFound
	}
	var record contactMessageRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// GetSubscription returns nil when the email never subscribed.
func (r *Repository) GetSubscription(ctx context.Context, email string) (*domain.Subscription, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record newsletterSubscriptionRecord
	if err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Subscription{Email: record.Email, Active: record.Active}, nil
}

// SaveSubscription inserts or reactivates a newsletter signup.
func (r *Repository) SaveSubscription(ctx context.Context, subscription *domain.Subscription) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	record := newsletterSubscriptionRecord{
		Email:  subscription.Email,
		Active: subscription.Active,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]any{
				"active":     record.Active,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres contact repository not configured")
	}
	return nil
}
