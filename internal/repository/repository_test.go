package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dujiao-next/estore/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dialector, err := models.NewDialector("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.MigrateWith(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, slug, price string) *models.Product {
	t.Helper()
	var category models.Category
	if err := db.Where("slug = ?", "general").First(&category).Error; err != nil {
		category = models.Category{Title: "General", Slug: "general", IsActive: true}
		require.NoError(t, db.Create(&category).Error)
	}
	product := &models.Product{
		CategoryID: category.ID,
		Title:      strings.ToUpper(slug),
		Slug:       slug,
		SKU:        "SKU-" + slug,
		Price:      models.MustMoney(price),
		IsActive:   true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
