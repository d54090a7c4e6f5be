package postgres

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"grampanchayat/internal/config"
)

type Store struct {
	DB *gorm.DB
}

func NewStore(cfg config.Config) (*Store, error) {
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Store{DB: gdb}, nil
}

// Migrate creates or updates the portal tables.
func (s *Store) Migrate() error {
	return s.DB.AutoMigrate(
		&UserModel{},
		&SchemeModel{},
		&AnnouncementModel{},
		&ApplicationModel{},
		&GrievanceModel{},
	)
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
