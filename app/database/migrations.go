package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL,
			student_name TEXT NOT NULL,
			admission_no TEXT NOT NULL,
			class_id UUID NOT NULL,
			section_id UUID,
			is_active BOOLEAN NOT NULL DEFAULT true,
			transport_route_id UUID,
			transport_slab_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_class ON enrollments (class_id) WHERE deleted_at IS NULL`,

		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL,
			class_id UUID NOT NULL,
			period_id UUID NOT NULL,
			book_fee NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (book_fee >= 0),
			tuition_fee NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (tuition_fee >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (branch_id, class_id, period_id)
		)`,

		`CREATE TABLE IF NOT EXISTS transport_fee_slabs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			route_id UUID NOT NULL,
			slab_id UUID NOT NULL,
			amount NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (route_id, slab_id)
		)`,

		`CREATE TABLE IF NOT EXISTS tuition_balances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL,
			enrollment_id UUID NOT NULL,
			period_id UUID NOT NULL,
			book_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			book_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			book_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			actual_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			concession_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_fee NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (total_fee >= 0),
			term1_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			term1_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			term1_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			term1_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			term2_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			term2_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			term2_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			term2_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			term3_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			term3_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			term3_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			term3_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			overall_balance_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			version INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (enrollment_id, period_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tuition_balances_branch ON tuition_balances (branch_id)`,

		`CREATE TABLE IF NOT EXISTS transport_balances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL,
			enrollment_id UUID NOT NULL,
			period_id UUID NOT NULL,
			actual_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			concession_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_fee NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (total_fee >= 0),
			term1_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			term1_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			term1_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			term1_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			term2_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			term2_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			term2_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			term2_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			overall_balance_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			version INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (enrollment_id, period_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transport_balances_branch ON transport_balances (branch_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
