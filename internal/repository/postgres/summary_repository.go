package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vansh1703/cars/internal/domain"
)

type summaryRepository struct {
	db *DB
}

func NewSummaryRepository(db *DB) *summaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) FindByYear(ctx context.Context, year int) (*domain.YearlySummary, error) {
	var summary domain.YearlySummary
	query := `
		SELECT year, total_revenue, total_profit, total_cars_sold
		FROM yearly_summaries
		WHERE year = $1
	`
	if err := r.db.GetContext(ctx, &summary, query, year); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find summary for %d: %w", year, err)
	}
	return &summary, nil
}

// Upsert is keyed by year so duplicate archival triggers converge on one row.
func (r *summaryRepository) Upsert(ctx context.Context, summary *domain.YearlySummary) error {
	query := `
		INSERT INTO yearly_summaries (year, total_revenue, total_profit, total_cars_sold)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year) DO UPDATE SET
			total_revenue = EXCLUDED.total_revenue,
			total_profit = EXCLUDED.total_profit,
			total_cars_sold = EXCLUDED.total_cars_sold
	`
	_, err := r.db.ExecContext(ctx, query,
		summary.Year, summary.TotalRevenue, summary.TotalProfit, summary.TotalCarsSold)
	if err != nil {
		return fmt.Errorf("failed to upsert summary for %d: %w", summary.Year, err)
	}
	return nil
}

func (r *summaryRepository) List(ctx context.Context) ([]domain.YearlySummary, error) {
	query := `
		SELECT year, total_revenue, total_profit, total_cars_sold
		FROM yearly_summaries
		ORDER BY year DESC
	`
	summaries := []domain.YearlySummary{}
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("failed to list yearly summaries: %w", err)
	}
	return summaries, nil
}
