package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Opens a gorm handle from a connection URL: sqlite:// paths (directory
// created if needed) or postgres:// DSNs.
func setupDatabase(dburl string, maxConnections int) (*gorm.DB, error) {
	var dial gorm.Dialector

	openConns := maxConnections
	if strings.HasPrefix(dburl, "sqlite://") {
		sqlitePath := dburl[len("sqlite://"):]
		if !strings.Contains(sqlitePath, ":?") {
			os.MkdirAll(filepath.Dir(sqlitePath), os.ModePerm)
		}
		dial = sqlite.Open(sqlitePath)
		openConns = 1
	} else if strings.HasPrefix(dburl, "postgresql://") || strings.HasPrefix(dburl, "postgres://") {
		dial = postgres.Open(dburl)
	} else {
		return nil, fmt.Errorf("unsupported or unrecognized DATABASE_URL value: %s", dburl)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: slogGorm.New(),
	})
	if err != nil {
		return nil, err
	}

	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(openConns)
	sqldb.SetMaxIdleConns(openConns)
	return db, nil
}
