package infra

import (
	"fmt"

	"insygth/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (sequences, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies AutoMigrate plus the SQL patches. Shared with the
// integration test harness so both paths produce the same schema.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.RawMaterial{},
		&model.Product{},
		&model.Recipe{},
		&model.RecipeItem{},
		&model.ProductionPlan{},
		&model.SaleInvoice{},
		&model.Receivable{},
		&model.Expense{},
		&model.StaffRequest{},
		&model.Notification{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// gen_random_uuid() defaults on the models need pgcrypto on PG < 13.
		{"enable pgcrypto", `CREATE EXTENSION IF NOT EXISTS pgcrypto`},

		// Invoice numbers come from a dedicated sequence so concurrent invoice
		// creation never produces duplicates or gaps from failed retries.
		{"create invoice number sequence",
			`CREATE SEQUENCE IF NOT EXISTS invoice_number_seq START 1`},

		// Partial index backing the notification retry cron scan.
		{"create pending delivery index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_notifications_pending_delivery') THEN
    CREATE INDEX idx_notifications_pending_delivery
        ON notifications (next_retry_at)
        WHERE delivery_status = 'queued' AND next_retry_at IS NOT NULL;
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("schema patch %q: %w", p.descr, err)
		}
	}
	return nil
}
