package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a mock pool through it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type pushTokenRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) PushTokens() repository.PushTokenRepository {
	return &pushTokenRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            mobile TEXT,
            name TEXT,
            role TEXT NOT NULL DEFAULT 'admin',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            order_number TEXT UNIQUE NOT NULL,
            customer_email TEXT NOT NULL DEFAULT '',
            customer_name TEXT NOT NULL DEFAULT '',
            customer_phone TEXT NOT NULL DEFAULT '',
            shipping_address JSONB NOT NULL DEFAULT '{}',
            items JSONB NOT NULL DEFAULT '[]',
            subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
            tax DOUBLE PRECISION NOT NULL DEFAULT 0,
            shipping_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
            total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            payment_id TEXT NOT NULL DEFAULT '',
            payment_gateway TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL DEFAULT '',
            order_notes TEXT NOT NULL DEFAULT '',
            selected_courier JSONB,
            shipment JSONB,
            cancellation_reason TEXT NOT NULL DEFAULT '',
            cancelled_at TEXT NOT NULL DEFAULT '',
            cancelled_by TEXT NOT NULL DEFAULT '',
            notified BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS push_tokens (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            token TEXT UNIQUE NOT NULL,
            device_info JSONB NOT NULL DEFAULT '{}',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_notified ON orders(notified) WHERE NOT notified`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (id, email, mobile, name, role, is_active, password_hash)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.Mobile, user.Name, user.Role, user.IsActive, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

const userColumns = `id, email, mobile, name, role, is_active, password_hash, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Mobile, &u.Name, &u.Role, &u.IsActive, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1 OR mobile=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, identifier))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

// --- OrderRepository implementation ---

const orderColumns = `id, order_number, customer_email, customer_name, customer_phone,
                      shipping_address, items, subtotal, tax, shipping_cost, total_amount,
                      status, payment_id, payment_gateway, payment_method, order_notes,
                      selected_courier, shipment, cancellation_reason, cancelled_at, cancelled_by,
                      created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		o           model.Order
		addressJSON []byte
		itemsJSON   []byte
		courierJSON []byte
		shipJSON    []byte
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerEmail, &o.CustomerName, &o.CustomerPhone,
		&addressJSON, &itemsJSON, &o.Subtotal, &o.Tax, &o.ShippingCost, &o.TotalAmount,
		&o.Status, &o.PaymentID, &o.PaymentGateway, &o.PaymentMethod, &o.OrderNotes,
		&courierJSON, &shipJSON, &o.CancellationReason, &o.CancelledAt, &o.CancelledBy,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
			return nil, fmt.Errorf("decode shipping address: %w", err)
		}
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	if len(courierJSON) > 0 {
		if err := json.Unmarshal(courierJSON, &o.SelectedCourier); err != nil {
			return nil, fmt.Errorf("decode courier: %w", err)
		}
	}
	if len(shipJSON) > 0 {
		if err := json.Unmarshal(shipJSON, &o.Shipment); err != nil {
			return nil, fmt.Errorf("decode shipment: %w", err)
		}
	}

	return &o, nil
}

func encodeOrderDocuments(order *model.Order) (address, items, courier, shipment []byte, err error) {
	if address, err = json.Marshal(order.ShippingAddress); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode shipping address: %w", err)
	}
	orderItems := order.Items
	if orderItems == nil {
		orderItems = []model.OrderItem{}
	}
	if items, err = json.Marshal(orderItems); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode items: %w", err)
	}
	if order.SelectedCourier != nil {
		if courier, err = json.Marshal(order.SelectedCourier); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("encode courier: %w", err)
		}
	}
	if order.Shipment != nil {
		if shipment, err = json.Marshal(order.Shipment); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("encode shipment: %w", err)
		}
	}
	return address, items, courier, shipment, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	address, items, courier, shipment, err := encodeOrderDocuments(order)
	if err != nil {
		return nil, err
	}

	const query = `INSERT INTO orders (
                       id, order_number, customer_email, customer_name, customer_phone,
                       shipping_address, items, subtotal, tax, shipping_cost, total_amount,
                       status, payment_id, payment_gateway, payment_method, order_notes,
                       selected_courier, shipment
                   ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
                   RETURNING created_at, updated_at`
	err = r.storage.pool.QueryRow(ctx, query,
		order.ID, order.OrderNumber, order.CustomerEmail, order.CustomerName, order.CustomerPhone,
		address, items, order.Subtotal, order.Tax, order.ShippingCost, order.TotalAmount,
		order.Status, order.PaymentID, order.PaymentGateway, order.PaymentMethod, order.OrderNotes,
		courier, shipment,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) List(ctx context.Context, filter repository.ListFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		query += fmt.Sprintf(" WHERE status = ANY($%d)", len(args))
	}
	if filter.Search != "" {
		clause := " WHERE "
		if len(args) > 0 {
			clause = " AND "
		}
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(
			"%s(order_number ILIKE $%d OR customer_name ILIKE $%d OR customer_phone ILIKE $%d OR customer_email ILIKE $%d)",
			clause, n, n, n, n,
		)
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Stats(ctx context.Context) (*model.OrderStats, error) {
	const query = `SELECT
                       COUNT(*),
                       COUNT(*) FILTER (WHERE status IN ('pending', 'payment_pending')),
                       COUNT(*) FILTER (WHERE status = 'paid'),
                       COUNT(*) FILTER (WHERE status = 'shipped'),
                       COUNT(*) FILTER (WHERE status = 'delivered'),
                       COUNT(*) FILTER (WHERE status = 'cancelled'),
                       COUNT(*) FILTER (WHERE created_at >= $1)
                   FROM orders`

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	var stats model.OrderStats
	err := r.storage.pool.QueryRow(ctx, query, midnight).Scan(
		&stats.TotalOrders, &stats.PendingOrders, &stats.PaidOrders,
		&stats.ShippedOrders, &stats.DeliveredOrders, &stats.CancelledOrders,
		&stats.TodayOrders,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Cancel(ctx context.Context, id string, record repository.CancelRecord) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT shipment FROM orders WHERE id=$1 FOR UPDATE`
		var shipJSON []byte
		if err := tx.QueryRow(ctx, selectQuery, id).Scan(&shipJSON); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		cancelledAt := time.Now().UTC().Format(time.RFC3339)

		// A booked shipment is cancelled alongside the order.
		if len(shipJSON) > 0 {
			var shipment model.Shipment
			if err := json.Unmarshal(shipJSON, &shipment); err != nil {
				return fmt.Errorf("decode shipment: %w", err)
			}
			shipment.Status = "cancelled"
			shipment.CancelledAt = cancelledAt
			updated, err := json.Marshal(shipment)
			if err != nil {
				return fmt.Errorf("encode shipment: %w", err)
			}
			shipJSON = updated
		}

		const updateQuery = `UPDATE orders
                             SET status='cancelled',
                                 cancellation_reason=$1,
                                 cancelled_at=$2,
                                 cancelled_by=$3,
                                 shipment=$4,
                                 updated_at=NOW()
                             WHERE id=$5`
		if _, err := tx.Exec(ctx, updateQuery, record.Reason, cancelledAt, record.CancelledBy, shipJSON, id); err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepository) SelectUnnotified(ctx context.Context, limit int) ([]model.Order, error) {
	const selectQuery = `SELECT ` + orderColumns + `
                         FROM orders
                         WHERE NOT notified
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE orders SET notified=TRUE, updated_at=NOW() WHERE id=$1`, o.ID); err != nil {
				return err
			}
			orders = append(orders, *o)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// --- PushTokenRepository implementation ---

func (r *pushTokenRepository) Upsert(ctx context.Context, token *model.PushToken) error {
	info := token.DeviceInfo
	if info == nil {
		info = map[string]string{}
	}
	infoJSON, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode device info: %w", err)
	}

	const query = `INSERT INTO push_tokens (id, user_id, token, device_info)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (token) DO UPDATE
                   SET user_id = EXCLUDED.user_id,
                       device_info = EXCLUDED.device_info,
                       updated_at = NOW()`
	if _, err := r.storage.pool.Exec(ctx, query, token.ID, token.UserID, token.Token, infoJSON); err != nil {
		return err
	}
	return nil
}

func (r *pushTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	const query = `DELETE FROM push_tokens WHERE token=$1`
	if _, err := r.storage.pool.Exec(ctx, query, token); err != nil {
		return err
	}
	return nil
}

func (r *pushTokenRepository) ListAll(ctx context.Context) ([]model.PushToken, error) {
	const query = `SELECT id, user_id, token, device_info, created_at, updated_at FROM push_tokens ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PushToken
	for rows.Next() {
		var (
			t        model.PushToken
			infoJSON []byte
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Token, &infoJSON, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if len(infoJSON) > 0 {
			if err := json.Unmarshal(infoJSON, &t.DeviceInfo); err != nil {
				return nil, fmt.Errorf("decode device info: %w", err)
			}
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
