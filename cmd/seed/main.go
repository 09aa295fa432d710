package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/vansh1703/cars/internal/config"
	"github.com/vansh1703/cars/internal/drive"
	"github.com/vansh1703/cars/internal/repository/postgres"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Manage the dealership database schema and seed data",
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Create or update the database tables",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runSchema,
			},
			{
				Name:   "demo-cars",
				Usage:  "Insert a small demo inventory for local development",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runDemoCars,
			},
			{
				Name:  "import-sales",
				Usage: "Import the offline sales register from a local CSV or a Drive folder",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "Path to a local register CSV",
					},
					&cli.StringFlag{
						Name:    "folder-id",
						Usage:   "Drive folder holding register files",
						EnvVars: []string{"GOOGLE_DRIVE_SALES_FOLDER_ID"},
					},
				},
				Action: runImportSales,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB(c *cli.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func runSchema(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	log.Println("Applying schema...")
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	log.Println("Schema applied successfully!")
	return nil
}

func runDemoCars(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	log.Println("Seeding demo cars...")
	const query = `
		INSERT INTO cars (title, brand, model, year, price, purchase_price, km_driven, fuel_type, transmission, color, ownership, location, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	for _, car := range demoCars {
		if _, err := tx.ExecContext(ctx, query,
			car.title, car.brand, car.model, car.year, car.price, car.purchasePrice,
			car.kmDriven, car.fuelType, car.transmission, car.color, car.ownership, car.location, car.description,
		); err != nil {
			return fmt.Errorf("failed to insert demo car %q: %w", car.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Printf("Seeded %d demo cars\n", len(demoCars))
	return nil
}

func runImportSales(c *cli.Context) error {
	cfg := config.Load()

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := postgres.NewManualSaleRepository(db)
	loc := cfg.Business.Location()
	ctx := context.Background()

	if path := c.String("file"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open register file: %w", err)
		}
		defer file.Close()

		ingest := drive.NewIngestService(nil, repo, loc)
		n, err := ingest.IngestReader(ctx, file)
		if err != nil {
			return err
		}
		log.Printf("Imported %d register rows from %s\n", n, path)
		return nil
	}

	folderID := c.String("folder-id")
	if folderID == "" {
		return fmt.Errorf("either --file or --folder-id is required")
	}

	driveService, err := drive.NewService(cfg.Drive.CredentialsJSON)
	if err != nil {
		return fmt.Errorf("failed to initialize Drive client: %w", err)
	}

	ingest := drive.NewIngestService(driveService, repo, loc)
	n, err := ingest.IngestFolder(ctx, folderID)
	if err != nil {
		return err
	}
	log.Printf("Imported %d register rows from Drive folder %s\n", n, folderID)
	return nil
}
