package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vansh1703/cars/internal/domain"
)

type manualSaleRepository struct {
	db *DB
}

func NewManualSaleRepository(db *DB) *manualSaleRepository {
	return &manualSaleRepository{db: db}
}

const manualSaleColumns = `
	id, created_at, car_title, brand, model, year, sell_price, purchase_price,
	buyer_name, buyer_phone, buyer_address, notes, sold_at
`

const insertManualSaleQuery = `
	INSERT INTO manual_sales (
		car_title, brand, model, year, sell_price, purchase_price,
		buyer_name, buyer_phone, buyer_address, notes, sold_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id, created_at
`

func (r *manualSaleRepository) Create(ctx context.Context, sale *domain.ManualSale) error {
	err := r.db.QueryRowContext(ctx, insertManualSaleQuery,
		sale.CarTitle, sale.Brand, sale.Model, sale.Year, sale.SellPrice,
		sale.PurchasePrice, sale.BuyerName, sale.BuyerPhone, sale.BuyerAddress,
		sale.Notes, sale.SoldAt,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert manual sale: %w", err)
	}
	return nil
}

// CreateBatch inserts a whole register import in one transaction, so a write
// failure partway through a file leaves no half-imported rows behind.
func (r *manualSaleRepository) CreateBatch(ctx context.Context, sales []*domain.ManualSale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, sale := range sales {
			err := tx.QueryRowContext(ctx, insertManualSaleQuery,
				sale.CarTitle, sale.Brand, sale.Model, sale.Year, sale.SellPrice,
				sale.PurchasePrice, sale.BuyerName, sale.BuyerPhone, sale.BuyerAddress,
				sale.Notes, sale.SoldAt,
			).Scan(&sale.ID, &sale.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert manual sale %q: %w", sale.CarTitle, err)
			}
		}
		return nil
	})
}

func (r *manualSaleRepository) List(ctx context.Context) ([]domain.ManualSale, error) {
	query := `SELECT ` + manualSaleColumns + `
		FROM manual_sales
		ORDER BY sold_at DESC NULLS LAST`

	sales := []domain.ManualSale{}
	if err := r.db.SelectContext(ctx, &sales, query); err != nil {
		return nil, fmt.Errorf("failed to list manual sales: %w", err)
	}
	return sales, nil
}

func (r *manualSaleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.ManualSale, error) {
	query := `SELECT ` + manualSaleColumns + `
		FROM manual_sales
		WHERE sold_at >= $1 AND sold_at < $2
		ORDER BY sold_at`

	sales := []domain.ManualSale{}
	if err := r.db.SelectContext(ctx, &sales, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to list manual sales between %s and %s: %w",
			from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}
	return sales, nil
}
