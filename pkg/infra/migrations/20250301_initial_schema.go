package migrations

import (
	"github.com/playdeck/tabletally/pkg/infra/database"
	"gorm.io/gorm"
)

// Core tables: customers, games, cafe_tables, promotions, sessions,
// payments, activity_log.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250301_initial_schema",
		Name: "Create core tables",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS customers (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name        TEXT NOT NULL,
					phone       TEXT NOT NULL DEFAULT '',
					email       TEXT NOT NULL DEFAULT '',
					notes       TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_customers_name ON customers (name);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS games (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title       TEXT NOT NULL,
					min_players INT NOT NULL DEFAULT 0,
					max_players INT NOT NULL DEFAULT 0,
					shelf       TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_games_title ON games (title);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS cafe_tables (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					label       TEXT NOT NULL UNIQUE,
					seats       INT NOT NULL,
					status      TEXT NOT NULL DEFAULT 'free',
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS promotions (
					id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name             TEXT NOT NULL,
					description      TEXT NOT NULL DEFAULT '',
					first_hour_price NUMERIC(10,2) NOT NULL,
					extra_hour_price NUMERIC(10,2) NOT NULL,
					is_active        BOOLEAN NOT NULL DEFAULT TRUE,
					start_date       TIMESTAMPTZ,
					end_date         TIMESTAMPTZ,
					created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS sessions (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					table_id    UUID NOT NULL REFERENCES cafe_tables(id),
					customer_id UUID,
					capacity    INT NOT NULL,
					promo_id    UUID REFERENCES promotions(id),
					status      TEXT NOT NULL DEFAULT 'active',
					started_at  TIMESTAMPTZ NOT NULL,
					ended_at    TIMESTAMPTZ,
					total_cost  NUMERIC(10,2) NOT NULL DEFAULT 0,
					hours       NUMERIC(10,2) NOT NULL DEFAULT 0,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions (status);
				CREATE INDEX IF NOT EXISTS idx_sessions_table_id ON sessions (table_id);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS payments (
					id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					session_id      UUID NOT NULL UNIQUE REFERENCES sessions(id),
					cash_amount     NUMERIC(10,2) NOT NULL DEFAULT 0,
					card_amount     NUMERIC(10,2) NOT NULL DEFAULT 0,
					online_amount   NUMERIC(10,2) NOT NULL DEFAULT 0,
					total_amount    NUMERIC(10,2) NOT NULL,
					computed_amount NUMERIC(10,2) NOT NULL,
					override_note   TEXT NOT NULL DEFAULT '',
					created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE TABLE IF NOT EXISTS activity_log (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					actor       TEXT NOT NULL DEFAULT '',
					action      TEXT NOT NULL,
					entity_type TEXT NOT NULL DEFAULT '',
					entity_id   UUID,
					detail      TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_activity_log_action ON activity_log (action);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`
				DROP TABLE IF EXISTS activity_log;
				DROP TABLE IF EXISTS payments;
				DROP TABLE IF EXISTS sessions;
				DROP TABLE IF EXISTS promotions;
				DROP TABLE IF EXISTS cafe_tables;
				DROP TABLE IF EXISTS games;
				DROP TABLE IF EXISTS customers;
			`).Error
		},
	})
}
