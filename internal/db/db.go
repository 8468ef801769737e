package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/appointment-desk/internal/config"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.Service{},
		&models.Appointment{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := ensureOverlapGuard(db); err != nil {
		log.Fatalf("failed to install overlap constraint: %v", err)
	}

	return db
}

// ensureOverlapGuard installs the safety net behind the row-locked
// conflict check: an exclusion constraint that makes the database itself
// reject two active appointments occupying overlapping intervals for the
// same staff member, closing the race between concurrent creates on
// separate connections. start_time/end_time are timestamptz columns, so
// the range must be tstzrange.
func ensureOverlapGuard(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
            ) THEN
                ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_overlap
                EXCLUDE USING gist (
                    staff_id WITH =,
                    tstzrange(start_time, end_time) WITH &&
                )
                WHERE (staff_id IS NOT NULL AND status IN ('Scheduled', 'Waiting'));
            END IF;
        END
        $$
    `).Error
}
