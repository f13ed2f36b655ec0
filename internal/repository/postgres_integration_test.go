//go:build integration

package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 优先使用 TEST_POSTGRES_DSN，否则启动临时容器
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("estore"),
			postgres.WithUsername("estore"),
			postgres.WithPassword("estore"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			t.Skipf("skip postgres integration test: %v", err)
		}
		t.Cleanup(func() {
			_ = testcontainers.TerminateContainer(container)
		})
		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	all := models.AllModels()
	reversed := make([]interface{}, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		reversed = append(reversed, all[i])
	}
	_ = db.Migrator().DropTable(reversed...)
	require.NoError(t, models.MigrateWith(db))

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(reversed...)
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresKeywordSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "linen-shirt", "40.00")

	list, total, err := repo.List(ProductListFilter{Keyword: "linen", OnlyActive: true, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "40.00", list[0].Price.String())
}

func TestPostgresCascadeOnUserDelete(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	user := seedUser(t, db, "ivan")
	product := seedProduct(t, db, "chair", "45.00")
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: user.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price, Status: constants.OrderStatusPending}).Error)

	// 直接删除用户行，验证数据库层外键级联
	require.NoError(t, db.Exec("DELETE FROM users WHERE id = ?", user.ID).Error)

	var carts, orders int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&carts).Error)
	require.NoError(t, db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orders).Error)
	assert.Zero(t, carts)
	assert.Zero(t, orders)
}
