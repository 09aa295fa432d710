package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vansh1703/cars/internal/domain"
)

type carRepository struct {
	db *DB
}

func NewCarRepository(db *DB) *carRepository {
	return &carRepository{db: db}
}

const carColumns = `
	id, created_at, title, brand, model, year, price, purchase_price,
	km_driven, fuel_type, transmission, color, description, images,
	is_sold, is_featured, ownership, location,
	sold_to_name, sold_to_phone, sold_to_address, sold_to_notes,
	final_sell_price, sold_at, deleted_at
`

func (r *carRepository) List(ctx context.Context, onlyAvailable bool) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE deleted_at IS NULL`
	if onlyAvailable {
		query += ` AND is_sold = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	cars := []domain.Car{}
	if err := r.db.SelectContext(ctx, &cars, query); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	var car domain.Car
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &car, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get car %s: %w", id, err)
	}
	return &car, nil
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO cars (
			title, brand, model, year, price, purchase_price, km_driven,
			fuel_type, transmission, color, description, images,
			is_featured, ownership, location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		car.Title, car.Brand, car.Model, car.Year, car.Price, car.PurchasePrice,
		car.KmDriven, car.FuelType, car.Transmission, car.Color, car.Description,
		car.Images, car.IsFeatured, car.Ownership, car.Location,
	).Scan(&car.ID, &car.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert car: %w", err)
	}
	return nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `
		UPDATE cars SET
			title = $2, brand = $3, model = $4, year = $5, price = $6,
			purchase_price = $7, km_driven = $8, fuel_type = $9,
			transmission = $10, color = $11, description = $12, images = $13,
			is_featured = $14, ownership = $15, location = $16
		WHERE id = $1 AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query,
		car.ID, car.Title, car.Brand, car.Model, car.Year, car.Price,
		car.PurchasePrice, car.KmDriven, car.FuelType, car.Transmission,
		car.Color, car.Description, car.Images, car.IsFeatured,
		car.Ownership, car.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update car %s: %w", car.ID, err)
	}
	return requireRow(res, car.ID)
}

func (r *carRepository) MarkSold(ctx context.Context, id string, sale *domain.CarSaleDetails) error {
	query := `
		UPDATE cars SET
			is_sold = TRUE,
			final_sell_price = $2,
			sold_to_name = $3, sold_to_phone = $4,
			sold_to_address = $5, sold_to_notes = $6,
			sold_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query,
		id, sale.FinalSellPrice, sale.SoldToName, sale.SoldToPhone,
		sale.SoldToAddress, sale.SoldToNotes, sale.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("failed to mark car %s sold: %w", id, err)
	}
	return requireRow(res, id)
}

func (r *carRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cars SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete car %s: %w", id, err)
	}
	return requireRow(res, id)
}

func (r *carRepository) Counts(ctx context.Context) (int, int, error) {
	var counts struct {
		Total int `db:"total"`
		Sold  int `db:"sold"`
	}
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_sold) AS sold
		FROM cars
		WHERE deleted_at IS NULL
	`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return 0, 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return counts.Total, counts.Sold, nil
}

func (r *carRepository) ListSold(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + `
		FROM cars
		WHERE deleted_at IS NULL AND is_sold = TRUE
		ORDER BY sold_at DESC NULLS LAST`

	cars := []domain.Car{}
	if err := r.db.SelectContext(ctx, &cars, query); err != nil {
		return nil, fmt.Errorf("failed to list sold cars: %w", err)
	}
	return cars, nil
}

func (r *carRepository) ListSoldBetween(ctx context.Context, from, to time.Time) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + `
		FROM cars
		WHERE deleted_at IS NULL
		  AND is_sold = TRUE
		  AND sold_at >= $1 AND sold_at < $2
		ORDER BY sold_at`

	cars := []domain.Car{}
	if err := r.db.SelectContext(ctx, &cars, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to list sold cars between %s and %s: %w",
			from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}
	return cars, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("car %s: %w", id, sql.ErrNoRows)
	}
	return nil
}
