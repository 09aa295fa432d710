package drive

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh1703/cars/internal/domain"
)

type recordingManualSaleRepo struct {
	created  []domain.ManualSale
	batchErr error
}

func (r *recordingManualSaleRepo) Create(ctx context.Context, sale *domain.ManualSale) error {
	r.created = append(r.created, *sale)
	return nil
}
func (r *recordingManualSaleRepo) CreateBatch(ctx context.Context, sales []*domain.ManualSale) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	for _, sale := range sales {
		r.created = append(r.created, *sale)
	}
	return nil
}
func (r *recordingManualSaleRepo) List(ctx context.Context) ([]domain.ManualSale, error) {
	return r.created, nil
}
func (r *recordingManualSaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.ManualSale, error) {
	return nil, nil
}

func TestIngestReaderImportsRegisterRows(t *testing.T) {
	csvData := strings.Join([]string{
		"car_title,brand,model,year,sell_price,purchase_price,buyer_name,sold_at",
		"Swift VXI 2018,Maruti Suzuki,Swift,2018,420000,370000,Ravi,2024-03-15",
		"Alto LXI 2016,Maruti Suzuki,Alto,2016,210000,,Sunita,15/04/2024",
	}, "\n")

	repo := &recordingManualSaleRepo{}
	ingest := NewIngestService(nil, repo, time.UTC)

	n, err := ingest.IngestReader(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, repo.created, 2)

	first := repo.created[0]
	assert.Equal(t, "Swift VXI 2018", first.CarTitle)
	assert.Equal(t, int64(420000), first.SellPrice)
	require.NotNil(t, first.PurchasePrice)
	assert.Equal(t, int64(370000), *first.PurchasePrice)
	require.NotNil(t, first.Year)
	assert.Equal(t, 2018, *first.Year)
	require.NotNil(t, first.SoldAt)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *first.SoldAt)

	second := repo.created[1]
	assert.Nil(t, second.PurchasePrice, "empty cost stays unknown rather than zero")
	require.NotNil(t, second.SoldAt)
	assert.Equal(t, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), *second.SoldAt)
}

func TestIngestReaderSkipsUnusableRows(t *testing.T) {
	csvData := strings.Join([]string{
		"car_title,sell_price,sold_at",
		",300000,2024-01-10",
		"No price car,,2024-01-11",
		"Bad date car,250000,someday",
		"Good car,250000,2024-01-12",
	}, "\n")

	repo := &recordingManualSaleRepo{}
	ingest := NewIngestService(nil, repo, time.UTC)

	n, err := ingest.IngestReader(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Good car", repo.created[0].CarTitle)
}

func TestIngestReaderSavesNothingWhenBatchWriteFails(t *testing.T) {
	csvData := strings.Join([]string{
		"car_title,sell_price,sold_at",
		"Car one,300000,2024-01-10",
		"Car two,250000,2024-01-12",
	}, "\n")

	repo := &recordingManualSaleRepo{batchErr: errors.New("connection reset")}
	ingest := NewIngestService(nil, repo, time.UTC)

	n, err := ingest.IngestReader(context.Background(), strings.NewReader(csvData))
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Empty(t, repo.created, "a failed import must not leave partial rows")
}

func TestIngestReaderRejectsRegisterWithoutRequiredColumns(t *testing.T) {
	csvData := "title,price\nSwift,400000\n"

	ingest := NewIngestService(nil, &recordingManualSaleRepo{}, time.UTC)

	_, err := ingest.IngestReader(context.Background(), strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "car_title")
}
