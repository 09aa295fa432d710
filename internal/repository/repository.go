package repository

import (
	"context"
	"time"

	"github.com/vansh1703/cars/internal/domain"
)

type CarRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	MarkSold(ctx context.Context, id string, sale *domain.CarSaleDetails) error
	SoftDelete(ctx context.Context, id string) error

	// Counts returns (total non-deleted, sold) listing counts.
	Counts(ctx context.Context) (total int, sold int, err error)
	ListSold(ctx context.Context) ([]domain.Car, error)
	ListSoldBetween(ctx context.Context, from, to time.Time) ([]domain.Car, error)
}

type ManualSaleRepository interface {
	Create(ctx context.Context, sale *domain.ManualSale) error
	// CreateBatch saves all sales or none, for register imports.
	CreateBatch(ctx context.Context, sales []*domain.ManualSale) error
	List(ctx context.Context) ([]domain.ManualSale, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.ManualSale, error)
}

// SummaryRepository stores one archived row per closed year. FindByYear
// returns (nil, nil) when the year has not been archived; that is a normal
// state, not an error.
type SummaryRepository interface {
	FindByYear(ctx context.Context, year int) (*domain.YearlySummary, error)
	Upsert(ctx context.Context, summary *domain.YearlySummary) error
	List(ctx context.Context) ([]domain.YearlySummary, error)
}

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) error
	List(ctx context.Context) ([]domain.Enquiry, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.Enquiry, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.Message, error)
}
