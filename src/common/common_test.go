package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/types"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	db.NewDB(gdb)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func seedRole(t *testing.T, gdb *gorm.DB, name types.RoleName) *models.Role {
	t.Helper()
	role := models.Role{Name: name}
	require.NoError(t, gdb.Where("name = ?", name).FirstOrCreate(&role).Error)
	return &role
}

func seedUser(t *testing.T, gdb *gorm.DB, email string, role types.RoleName) *models.User {
	t.Helper()
	r := seedRole(t, gdb, role)
	user := models.User{Name: "Test " + email, Email: email, Password: "x", RoleID: r.ID}
	require.NoError(t, gdb.Create(&user).Error)
	return &user
}

func seedTable(t *testing.T, gdb *gorm.DB, name string, status types.TableStatus) *models.DiningTable {
	t.Helper()
	table := models.DiningTable{Name: name, Status: status}
	require.NoError(t, gdb.Create(&table).Error)
	return &table
}

func seedItem(t *testing.T, gdb *gorm.DB, name string, price string) *models.Item {
	t.Helper()
	var category models.Category
	require.NoError(t, gdb.Where(models.Category{Name: "Drinks"}).Attrs(models.Category{Slug: "drinks"}).FirstOrCreate(&category).Error)
	item := models.Item{Name: name, Price: decimal.RequireFromString(price), Available: true, CategoryID: category.ID}
	require.NoError(t, gdb.Create(&item).Error)
	return &item
}

func tableStatus(t *testing.T, gdb *gorm.DB, id uint) types.TableStatus {
	t.Helper()
	var table models.DiningTable
	require.NoError(t, gdb.First(&table, id).Error)
	return table.Status
}

func ptr[T any](v T) *T {
	return &v
}
