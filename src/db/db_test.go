package db

import (
	"errors"
	"log"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

type role struct {
	ID   uint
	Name string
}

func TestGetDbReturnsInstalledConnection(t *testing.T) {
	gormDB, mock := NewMockDB()
	NewDB(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE "roles"."id" = $1 ORDER BY "roles"."id" LIMIT $2`)).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "admin"))

	var r role
	require.NoError(t, GetDb().First(&r, 1).Error)
	assert.Equal(t, "admin", r.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDbNotFound(t *testing.T) {
	gormDB, mock := NewMockDB()
	NewDB(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	var r role
	err := GetDb().First(&r, 99).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenMemory(t *testing.T) {
	gormDB, err := OpenMemory()
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&role{}))
	require.NoError(t, gormDB.Create(&role{Name: "user"}).Error)

	var count int64
	require.NoError(t, gormDB.Model(&role{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var fk int
	require.NoError(t, gormDB.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}
