package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/repository"
)

// CarService manages the catalog. Sale-affecting mutations notify the
// dashboard so its cached aggregates are dropped.
type CarService struct {
	repo      repository.CarRepository
	dashboard *DashboardService
	loc       *time.Location
}

func NewCarService(repo repository.CarRepository, dashboard *DashboardService, loc *time.Location) *CarService {
	if loc == nil {
		loc = time.UTC
	}
	return &CarService{repo: repo, dashboard: dashboard, loc: loc}
}

func (s *CarService) List(ctx context.Context, onlyAvailable bool) ([]domain.Car, error) {
	return s.repo.List(ctx, onlyAvailable)
}

func (s *CarService) Get(ctx context.Context, id string) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService) Create(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	return s.repo.Create(ctx, car)
}

func (s *CarService) Update(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, car); err != nil {
		return err
	}
	// Price or cost edits can shift already-aggregated figures.
	s.dashboard.Invalidate(ctx)
	return nil
}

// MarkSold closes a listing. SoldAt defaults to now in the business zone so
// the sale buckets into the month the dealership closed it, not whatever
// zone the admin's browser was in.
func (s *CarService) MarkSold(ctx context.Context, id string, sale *domain.CarSaleDetails) error {
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now().In(s.loc)
	}
	if err := s.repo.MarkSold(ctx, id, sale); err != nil {
		return err
	}
	s.dashboard.Invalidate(ctx)
	return nil
}

func (s *CarService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.dashboard.Invalidate(ctx)
	return nil
}

// ListSold returns the sales history for the admin history page.
func (s *CarService) ListSold(ctx context.Context) ([]domain.Car, error) {
	return s.repo.ListSold(ctx)
}

// validateCar checks the listing form fields. Fuel type and transmission are
// optional, but when present they must be one of the accepted values.
func validateCar(car *domain.Car) error {
	if car.Title == "" {
		return fmt.Errorf("car title is required")
	}
	if car.Price <= 0 {
		return fmt.Errorf("car price must be positive")
	}
	if car.FuelType != "" && !slices.Contains(domain.FuelTypes, car.FuelType) {
		return fmt.Errorf("fuel type must be one of: %s", strings.Join(domain.FuelTypes, ", "))
	}
	if car.Transmission != "" && !slices.Contains(domain.Transmissions, car.Transmission) {
		return fmt.Errorf("transmission must be one of: %s", strings.Join(domain.Transmissions, ", "))
	}
	return nil
}
