package drive

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vansh1703/cars/internal/domain"
	"github.com/vansh1703/cars/internal/repository"
)

// IngestService imports the staff offline sales register (a CSV or Google
// Sheet kept in Drive) into the manual sales table. Rows without a title or
// a positive sell price are skipped rather than failing the whole file.
type IngestService struct {
	driveService *Service
	repo         repository.ManualSaleRepository
	loc          *time.Location
}

func NewIngestService(driveService *Service, repo repository.ManualSaleRepository, loc *time.Location) *IngestService {
	if loc == nil {
		loc = time.UTC
	}
	return &IngestService{driveService: driveService, repo: repo, loc: loc}
}

// IngestFolder imports every register file in the given Drive folder.
func (s *IngestService) IngestFolder(ctx context.Context, folderID string) (int, error) {
	files, err := s.driveService.ListFiles(folderID)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, file := range files {
		n, err := s.IngestFile(ctx, file)
		if err != nil {
			return imported, fmt.Errorf("failed to ingest %s: %w", file.Name, err)
		}
		imported += n
	}
	return imported, nil
}

// IngestFile imports one register file and returns the number of rows saved.
func (s *IngestService) IngestFile(ctx context.Context, file *File) (int, error) {
	pr, pw := io.Pipe()
	go func() {
		err := s.driveService.DownloadFile(file, pw)
		pw.CloseWithError(err)
	}()

	return s.ingestCSV(ctx, csv.NewReader(pr))
}

// IngestReader imports register rows from an already-open CSV stream. The
// seed CLI uses it for local files.
func (s *IngestService) IngestReader(ctx context.Context, r io.Reader) (int, error) {
	return s.ingestCSV(ctx, csv.NewReader(r))
}

func (s *IngestService) ingestCSV(ctx context.Context, reader *csv.Reader) (int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read register header: %w", err)
	}

	colMap := make(map[string]int)
	for i, col := range header {
		colMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"car_title", "sell_price", "sold_at"} {
		if _, ok := colMap[col]; !ok {
			return 0, fmt.Errorf("register missing required column: %s", col)
		}
	}

	var sales []*domain.ManualSale
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read register row: %w", err)
		}

		sale, ok := s.parseRow(record, colMap)
		if !ok {
			continue
		}
		sales = append(sales, sale)
	}

	// One transaction per file: a write failure leaves nothing half-imported.
	if err := s.repo.CreateBatch(ctx, sales); err != nil {
		return 0, fmt.Errorf("failed to save register rows: %w", err)
	}

	return len(sales), nil
}

func (s *IngestService) parseRow(record []string, colMap map[string]int) (*domain.ManualSale, bool) {
	getValue := func(colName string) string {
		if idx, ok := colMap[colName]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	getInt64 := func(colName string) *int64 {
		val := getValue(colName)
		if val == "" {
			return nil
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil || n <= 0 {
			return nil
		}
		return &n
	}

	title := getValue("car_title")
	sellPrice := getInt64("sell_price")
	if title == "" || sellPrice == nil {
		log.Warn().Strs("row", record).Msg("sales register: skipping row without title or sell price")
		return nil, false
	}

	soldAt, ok := s.parseDate(getValue("sold_at"))
	if !ok {
		log.Warn().Str("car_title", title).Msg("sales register: skipping row with unreadable sold date")
		return nil, false
	}

	sale := &domain.ManualSale{
		CarTitle:      title,
		Brand:         getValue("brand"),
		Model:         getValue("model"),
		SellPrice:     *sellPrice,
		PurchasePrice: getInt64("purchase_price"),
		BuyerName:     getValue("buyer_name"),
		BuyerPhone:    getValue("buyer_phone"),
		BuyerAddress:  getValue("buyer_address"),
		Notes:         getValue("notes"),
		SoldAt:        &soldAt,
	}

	if yearStr := getValue("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			sale.Year = &year
		}
	}

	return sale, true
}

func (s *IngestService) parseDate(val string) (time.Time, bool) {
	if val == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly, "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, val, s.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
