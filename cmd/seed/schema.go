package main

// schemaStatements creates every table the backend reads and writes. The
// statements are idempotent so the command can run against an existing
// database.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS cars (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		title TEXT NOT NULL,
		brand TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		year INT NOT NULL DEFAULT 0,
		price BIGINT NOT NULL,
		purchase_price BIGINT,
		km_driven INT NOT NULL DEFAULT 0,
		fuel_type TEXT NOT NULL DEFAULT '',
		transmission TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		images TEXT[] NOT NULL DEFAULT '{}',
		is_sold BOOLEAN NOT NULL DEFAULT FALSE,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		ownership INT NOT NULL DEFAULT 1,
		location TEXT NOT NULL DEFAULT '',
		sold_to_name TEXT,
		sold_to_phone TEXT,
		sold_to_address TEXT,
		sold_to_notes TEXT,
		final_sell_price BIGINT,
		sold_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cars_sold_at ON cars (sold_at) WHERE is_sold`,

	`CREATE TABLE IF NOT EXISTS manual_sales (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		car_title TEXT NOT NULL,
		brand TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		year INT,
		sell_price BIGINT NOT NULL,
		purchase_price BIGINT,
		buyer_name TEXT NOT NULL DEFAULT '',
		buyer_phone TEXT NOT NULL DEFAULT '',
		buyer_address TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		sold_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_manual_sales_sold_at ON manual_sales (sold_at)`,

	`CREATE TABLE IF NOT EXISTS yearly_summaries (
		year INT PRIMARY KEY,
		total_revenue BIGINT NOT NULL DEFAULT 0,
		total_profit BIGINT NOT NULL DEFAULT 0,
		total_cars_sold INT NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS enquiries (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		car_id UUID NOT NULL,
		car_title TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		is_read BOOLEAN NOT NULL DEFAULT FALSE
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		is_read BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}
