package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&shippingAddressRecord{},
		&userRecord{},
		&sessionRecord{},
		&favoriteRecord{},
		&contactMessageRecord{},
		&newsletterSubscriptionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID          string         `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name        string         `gorm:"column:name"`
	Description string         `gorm:"column:description;type:text"`
	Price       int64          `gorm:"column:price"`
	Color       string         `gorm:"column:color;index:idx_products_category_color"`
	Sizes       pq.StringArray `gorm:"column:sizes;type:text[]"`
	Images      pq.StringArray `gorm:"column:images;type:text[]"`
	Category    string         `gorm:"column:category;index:idx_products_category_color"`
	InStock     bool           `gorm:"column:in_stock;index"`
	CreatedAt   time.Time      `gorm:"column:created_at;index"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	OrderNumber  string    `gorm:"column:order_number;uniqueIndex"`
	UserID       string    `gorm:"column:user_id;index"`
	GuestEmail   string    `gorm:"column:guest_email"`
	GuestPhone   string    `gorm:"column:guest_phone"`
	Subtotal     int64     `gorm:"column:subtotal"`
	ShippingCost int64     `gorm:"column:shipping_cost"`
	Total        int64     `gorm:"column:total"`
	Status       string    `gorm:"column:status;type:varchar(32);index"`
	CreatedAt    time.Time `gorm:"column:created_at;index"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID     string `gorm:"column:order_id;type:varchar(64);index"`
	ProductID   string `gorm:"column:product_id;type:varchar(64);index"`
	ProductName string `gorm:"column:product_name"`
	Quantity    int    `gorm:"column:quantity"`
	Size        string `gorm:"column:size;type:varchar(16)"`
	Price       int64  `gorm:"column:price"`
}

func (orderItemRecord) TableName() string { return "order_items" }

type shippingAddressRecord struct {
	ID      int64  `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID string `gorm:"column:order_id;type:varchar(64);uniqueIndex"`
	Name    string `gorm:"column:name"`
	Phone   string `gorm:"column:phone"`
	Line1   string `gorm:"column:line1"`
	Line2   string `gorm:"column:line2"`
	City    string `gorm:"column:city"`
	State   string `gorm:"column:state"`
	Pincode string `gorm:"column:pincode;type:varchar(16)"`
}

func (shippingAddressRecord) TableName() string { return "shipping_addresses" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Phone        string    `gorm:"column:phone"`
	Provider     string    `gorm:"column:provider;type:varchar(16)"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	UserID    string     `gorm:"column:user_id;type:varchar(64);index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }

type favoriteRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    string    `gorm:"column:user_id;type:varchar(64);uniqueIndex:idx_favorites_user_product"`
	ProductID string    `gorm:"column:product_id;type:varchar(64);uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteRecord) TableName() string { return "favorites" }

// Contact schema mirrors the contact Postgres adapter.
type contactMessageRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;index"`
	Body      string    `gorm:"column:body;type:text"`
	Read      bool      `gorm:"column:read;index"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (contactMessageRecord) TableName() string { return "contact_messages" }

type newsletterSubscriptionRecord struct {
	Email     string    `gorm:"primaryKey;column:email"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (newsletterSubscriptionRecord) TableName() string { return "newsletter_subscriptions" }
