package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"doener-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

// OrderFilter restricts listing to CreatedAt in [From, To). Nil bounds are open.
type OrderFilter struct {
	From *time.Time
	To   *time.Time
}

func (f OrderFilter) Match(t time.Time) bool {
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.To != nil && !t.Before(*f.To) {
		return false
	}
	return true
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.OrderRecord) error
	List(ctx context.Context, filter OrderFilter) ([]models.OrderRecord, error)
	Delete(ctx context.Context, id string) error
}

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(ctx context.Context, order *models.OrderRecord) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	address, err := json.Marshal(order.Address)
	if err != nil {
		return fmt.Errorf("failed to encode address: %w", err)
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	metadata, err := json.Marshal(order.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	query := `
		INSERT INTO orders (
			id, customer_name, phone, order_type, address, zone_key, zone_label,
			time_mode, time_at, items, subtotal, delivery_fee, total, note, metadata, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = r.db.Exec(ctx, query,
		order.ID, order.CustomerName, order.Phone, string(order.OrderType), address,
		order.ZoneKey, order.ZoneLabel, order.Time.Mode, order.Time.At, items,
		int64(order.Subtotal), int64(order.DeliveryFee), int64(order.Total),
		order.Note, metadata, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *PostgresOrderRepository) List(ctx context.Context, filter OrderFilter) ([]models.OrderRecord, error) {
	query := `
		SELECT id, customer_name, phone, order_type, address, zone_key, zone_label,
		       time_mode, time_at, items, subtotal, delivery_fee, total, note, metadata, created_at
		FROM orders
	`

	conditions := []string{}
	args := []interface{}{}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.OrderRecord{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (models.OrderRecord, error) {
	var (
		o                        models.OrderRecord
		orderType                string
		address, items, metadata []byte
		subtotal, fee, total     int64
	)

	err := row.Scan(
		&o.ID, &o.CustomerName, &o.Phone, &orderType, &address, &o.ZoneKey, &o.ZoneLabel,
		&o.Time.Mode, &o.Time.At, &items, &subtotal, &fee, &total, &o.Note, &metadata, &o.CreatedAt,
	)
	if err != nil {
		return o, fmt.Errorf("failed to scan order: %w", err)
	}

	o.OrderType = models.OrderType(orderType)
	o.Subtotal = models.Cents(subtotal)
	o.DeliveryFee = models.Cents(fee)
	o.Total = models.Cents(total)

	if len(address) > 0 && string(address) != "null" {
		o.Address = &models.Address{}
		if err := json.Unmarshal(address, o.Address); err != nil {
			return o, fmt.Errorf("failed to decode address: %w", err)
		}
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return o, fmt.Errorf("failed to decode items: %w", err)
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &o.Metadata); err != nil {
			return o, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}
	return o, nil
}

func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
