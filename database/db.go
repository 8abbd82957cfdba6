package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/config"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// ConnectDB opens the Postgres connection and brings the schema up to date.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if !cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("connected to the database")
	return db, nil
}

func runMigrations(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Category{},
		&models.Borrow{},
		&models.BookRequest{},
		&models.SndlDemand{},
		&models.Contact{},
		&models.Idea{},
		&models.RefreshToken{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Indexes gorm tags cannot express. The partial unique index makes "at
	// most one open borrow per book" a database guarantee, so two racing
	// creates can never both commit.
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_borrows_one_open_per_book
			ON borrows (book_id) WHERE returned_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_borrows_open_user_book
			ON borrows (user_id, book_id) WHERE returned_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sndl_demands_one_open_per_user
			ON sndl_demands (user_id) WHERE status IN ('PENDING', 'APPROVED')`,
		`CREATE INDEX IF NOT EXISTS idx_books_search
			ON books USING GIN ((
				setweight(to_tsvector('english', coalesce(title, '')), 'A') ||
				setweight(to_tsvector('english', coalesce(author, '')), 'B')
			))`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	logger.Info("database migrations applied")
	return nil
}
