package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vansh1703/cars/internal/domain"
)

type enquiryRepository struct {
	db *DB
}

func NewEnquiryRepository(db *DB) *enquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	query := `
		INSERT INTO enquiries (car_id, car_title, name, email, phone, message, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		enquiry.CarID, enquiry.CarTitle, enquiry.Name, enquiry.Email,
		enquiry.Phone, enquiry.Message,
	).Scan(&enquiry.ID, &enquiry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert enquiry: %w", err)
	}
	return nil
}

func (r *enquiryRepository) List(ctx context.Context) ([]domain.Enquiry, error) {
	query := `
		SELECT id, created_at, car_id, car_title, name, email, phone, message, is_read
		FROM enquiries
		ORDER BY created_at DESC
	`
	enquiries := []domain.Enquiry{}
	if err := r.db.SelectContext(ctx, &enquiries, query); err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	return enquiries, nil
}

func (r *enquiryRepository) SetRead(ctx context.Context, id string, read bool) (*domain.Enquiry, error) {
	var enquiry domain.Enquiry
	query := `
		UPDATE enquiries SET is_read = $2
		WHERE id = $1
		RETURNING id, created_at, car_id, car_title, name, email, phone, message, is_read
	`
	if err := r.db.GetContext(ctx, &enquiry, query, id, read); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update enquiry %s: %w", id, err)
	}
	return &enquiry, nil
}
