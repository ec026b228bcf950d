package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deb240485/Ecommerce-Microservices/internal/discount/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(cred *Credentials) (*PostgresRepository, error) {
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

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(r.db, &postgres.Config{
		MigrationsTable: "discount_schema_migrations",
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

// GetDiscount returns the coupon for the product, or the no-discount sentinel
// (amount zero) when the product has none. Callers never see a not-found
// error from a missing coupon.
func (r *PostgresRepository) GetDiscount(ctx context.Context, productName string) (*domain.Coupon, error) {
	query := `SELECT id, product_name, description, amount FROM coupon WHERE product_name = $1`

	var coupon domain.Coupon
	err := r.db.QueryRowContext(ctx, query, productName).Scan(
		&coupon.ID,
		&coupon.ProductName,
		&coupon.Description,
		&coupon.Amount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Coupon{
			ProductName: "No Discount",
			Description: "No Discount Available",
			Amount:      0,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query coupon for %s: %w", productName, err)
	}

	return &coupon, nil
}

func (r *PostgresRepository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	query := `INSERT INTO coupon (product_name, description, amount) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, coupon.ProductName, coupon.Description, coupon.Amount); err != nil {
		return fmt.Errorf("insert coupon for %s: %w", coupon.ProductName, err)
	}
	return nil
}

func (r *PostgresRepository) UpdateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	query := `UPDATE coupon SET description = $1, amount = $2 WHERE product_name = $3`

	if _, err := r.db.ExecContext(ctx, query, coupon.Description, coupon.Amount, coupon.ProductName); err != nil {
		return fmt.Errorf("update coupon for %s: %w", coupon.ProductName, err)
	}
	return nil
}

func (r *PostgresRepository) DeleteCoupon(ctx context.Context, productName string) error {
	query := `DELETE FROM coupon WHERE product_name = $1`

	if _, err := r.db.ExecContext(ctx, query, productName); err != nil {
		return fmt.Errorf("delete coupon for %s: %w", productName, err)
	}
	return nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
