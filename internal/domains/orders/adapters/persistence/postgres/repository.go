package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
	"github.com/lemono/storefront-api/internal/domains/orders/ports"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

var _ ports.Repository = (*Repository)(nil)

// Repository persists order aggregates in PostgreSQL using GORM. The
// order row, its shipping address, and its line items are written in
// one transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

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

// Create writes the order, address, and items atomically. A duplicate
// order number surfaces as ports.ErrDuplicateOrderNumber so the caller
// can regenerate and retry.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toOrderRecord(order)
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		address := toAddressRecord(record.ID, order.ShippingAddress)
		if err := tx.Create(&address).Error; err != nil {
			return err
		}
		items := toItemRecords(record.ID, order.Items)
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ports.ErrDuplicateOrderNumber
		}
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID loads the full aggregate by internal identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return r.hydrate(ctx, record)
}

// GetByNumber loads the full aggregate by the human-facing order number.
func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return r.hydrate(ctx, record)
}

// UpdateStatus overwrites the status column. Transition legality is the
// application layer's concern.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&orderRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": gorm.Expr("NOW()")})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// List returns a page of aggregates newest first plus the total count.
func (r *Repository) List(ctx context.Context, filter ports.ListFilter, page ports.Page) ([]*domain.Order, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	query := r.db.WithContext(ctx).Model(&orderRecord{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
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

	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for _, record := range records {
		order, err := r.hydrate(ctx, record)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, nil
}

func (r *Repository) hydrate(ctx context.Context, record orderRecord) (*domain.Order, error) {
	var address shippingAddressRecord
	if err := r.db.WithContext(ctx).First(&address, "order_id = ?", record.ID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	var items []orderItemRecord
	if err := r.db.WithContext(ctx).Where("order_id = ?", record.ID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return toDomainOrder(record, address, items), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

func toOrderRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		UserID:       order.UserID,
		GuestEmail:   order.GuestEmail,
		GuestPhone:   order.GuestPhone,
		Subtotal:     order.Subtotal,
		ShippingCost: order.ShippingCost,
		Total:        order.Total,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
}

func toAddressRecord(orderID string, address domain.ShippingAddress) shippingAddressRecord {
	return shippingAddressRecord{
		OrderID: orderID,
		Name:    address.Name,
		Phone:   address.Phone,
		Line1:   address.Line1,
		Line2:   address.Line2,
		City:    address.City,
		State:   address.State,
		Pincode: address.Pincode,
	}
}

func toItemRecords(orderID string, items []domain.LineItem) []orderItemRecord {
	records := make([]orderItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, orderItemRecord{
			OrderID:     orderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Price:       item.Price,
		})
	}
	return records
}

func toDomainOrder(record orderRecord, address shippingAddressRecord, items []orderItemRecord) *domain.Order {
	lineItems := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, domain.LineItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Price:       item.Price,
		})
	}
	return &domain.Order{
		ID:           record.ID,
		OrderNumber:  record.OrderNumber,
		UserID:       record.UserID,
		GuestEmail:   record.GuestEmail,
		GuestPhone:   record.GuestPhone,
		Subtotal:     record.Subtotal,
		ShippingCost: record.ShippingCost,
		Total:        record.Total,
		Status:       domain.Status(record.Status),
		ShippingAddress: domain.ShippingAddress{
			Name:    address.Name,
			Phone:   address.Phone,
			Line1:   address.Line1,
			Line2:   address.Line2,
			City:    address.City,
			State:   address.State,
			Pincode: address.Pincode,
		},
		Items:     lineItems,
		CreatedAt: record.CreatedAt,
	}
}
