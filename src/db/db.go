package db

import (
	"cafe/src/config"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	_db, err := Open(config.GetDriver())
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	db = _db
	return _db
}

func Open(driver string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DRIVER_SQLITE:
		dialector = sqlite.Open(config.GetSQLitePath() + "?_foreign_keys=on&_busy_timeout=5000")
	default:
		dialector = postgres.Open(config.GetDSN())
	}
	_db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := _db.DB()
	if err != nil {
		log.Printf("Error establishing connection to database: %s\n", err.Error())
		return nil, err
	}
	if driver == config.DRIVER_SQLITE {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	return _db, nil
}

// OpenMemory opens a private in-memory sqlite database. Used by tests and throwaway runs.
func OpenMemory() (*gorm.DB, error) {
	_db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := _db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return _db, nil
}

func NewDB(newdb *gorm.DB) {
	db = newdb
}
