package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const orderColumns = `id, user_name, total_price,
	first_name, last_name, email_address, address_line, country, state, zip_code,
	card_name, card_number, expiration, cvv, payment_method,
	created_by, created_at, last_modified_by, last_modified_at`

type PostgresRepository struct {
	db *sql.DB

	// actor is stamped into the audit columns on every write.
	// TODO: derive the actor from propagated caller identity once the
	// checkout event carries one.
	actor string
}

func NewPostgresRepository(cred *Credentials, actor string) (*PostgresRepository, error) {
	psqlconn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cred.Host,
		cred.Port,
		cred.User,
		cred.Password,
		cred.DBName)

	db, err := sql.Open("postgres", psqlconn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if e2 := db.Ping(); e2 != nil {
		return nil, fmt.Errorf("failed to ping database: %w", e2)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	return &PostgresRepository{db: db, actor: actor}, nil
}

func (r *PostgresRepository) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(r.db, &postgres.Config{
		MigrationsTable: "ordering_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cred.MigrationsDirPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if e2 := m.Up(); e2 != nil && !errors.Is(e2, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", e2)
	}

	return nil
}

// CreateOrder inserts the order and returns the assigned identifier. There is
// no uniqueness across deliveries of the same checkout event, so a redelivered
// event produces a second order row.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) (int, error) {
	now := time.Now().UTC()
	order.CreatedBy = r.actor
	order.CreatedAt = now
	order.LastModifiedBy = r.actor
	order.LastModifiedAt = now

	query := `INSERT INTO orders (user_name, total_price,
		first_name, last_name, email_address, address_line, country, state, zip_code,
		card_name, card_number, expiration, cvv, payment_method,
		created_by, created_at, last_modified_by, last_modified_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	          RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		order.UserName,
		order.TotalPrice,
		order.FirstName,
		order.LastName,
		order.EmailAddress,
		order.AddressLine,
		order.Country,
		order.State,
		order.ZipCode,
		order.CardName,
		order.CardNumber,
		order.Expiration,
		order.CVV,
		order.PaymentMethod,
		order.CreatedBy,
		order.CreatedAt,
		order.LastModifiedBy,
		order.LastModifiedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: insert order: %v", ErrPersistence, err)
	}

	order.ID = id
	return id, nil
}

func (r *PostgresRepository) GetOrderByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order by id: %w", err)
	}
	return order, nil
}

func (r *PostgresRepository) ListOrdersByUserName(ctx context.Context, userName string) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_name = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("query orders by user name: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.UserName,
		&order.TotalPrice,
		&order.FirstName,
		&order.LastName,
		&order.EmailAddress,
		&order.AddressLine,
		&order.Country,
		&order.State,
		&order.ZipCode,
		&order.CardName,
		&order.CardNumber,
		&order.Expiration,
		&order.CVV,
		&order.PaymentMethod,
		&order.CreatedBy,
		&order.CreatedAt,
		&order.LastModifiedBy,
		&order.LastModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
