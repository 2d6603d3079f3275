package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
)

// Open connects to postgres and migrates the schema. TranslateError is
// required: the vote and poll-voter dedup paths depend on duplicate-key
// violations surfacing as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = conn.AutoMigrate(
		&models.Shop{},
		&models.Category{},
		&models.Thread{},
		&models.Comment{},
		&models.Vote{},
		&models.Report{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollVoter{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return conn, nil
}
