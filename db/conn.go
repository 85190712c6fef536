// Package db opens the relational store, migrates the schema and seeds the
// administrator row.
package db

import (
	"fmt"

	"github.com/Tanz2024/Portfolio/auth"
	"github.com/Tanz2024/Portfolio/model"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// adminUserID is the row the public profile endpoints read from.
const adminUserID = 1

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch driver := viper.GetString("db.driver"); driver {
	case "postgres":
		dial = postgres.Open(viper.GetString("db.dsn"))
	case "sqlite", "":
		dsn := viper.GetString("db.dsn")
		if dsn == "" {
			dsn = "database.db"
		}
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Blog{},
		&model.Project{},
		&model.Achievement{},
		&model.Testimonial{},
		&model.Contact{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	admin := model.User{
		ID:       adminUserID,
		Username: viper.GetString("admin.username"),
		Role:     auth.RoleAdmin,
	}
	err = db.Where("id = ?", adminUserID).FirstOrCreate(&admin).Error
	if err != nil {
		return nil, fmt.Errorf("failed to seed admin user, %w", err)
	}

	return db, nil
}
