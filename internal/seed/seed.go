package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dujiao-next/estore/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Result 种子写入统计
type Result struct {
	Created int
	Skipped int
}

type demoProduct struct {
	Title string
	SKU   string
	Price string
	Short string
}

type demoCategory struct {
	Title    string
	Slug     string
	Featured bool
	Products []demoProduct
}

var demoCatalog = []demoCategory{
	{
		Title:    "Electronics",
		Slug:     "electronics",
		Featured: true,
		Products: []demoProduct{
			{Title: "Wireless Earbuds", SKU: "EL-1001", Price: "49.90", Short: "Bluetooth 5.3, 24h battery"},
			{Title: "USB-C Charger 65W", SKU: "EL-1002", Price: "29.00", Short: "GaN fast charger"},
		},
	},
	{
		Title:    "Lifestyle",
		Slug:     "lifestyle",
		Featured: true,
		Products: []demoProduct{
			{Title: "Ceramic Mug", SKU: "LS-2001", Price: "12.50", Short: "350ml, dishwasher safe"},
			{Title: "Linen Tote Bag", SKU: "LS-2002", Price: "18.00", Short: "Reusable shopping bag"},
		},
	},
	{
		Title: "Accessories",
		Slug:  "accessories",
		Products: []demoProduct{
			{Title: "Phone Stand", SKU: "AC-3001", Price: "9.99", Short: "Aluminium, adjustable"},
		},
	},
}

// Catalog 写入演示分类与商品，按 slug 幂等
func Catalog(db *gorm.DB) (Result, error) {
	var result Result
	if db == nil {
		return result, errors.New("database not initialized")
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, dc := range demoCatalog {
			category := models.Category{
				Title:      dc.Title,
				Slug:       dc.Slug,
				IsActive:   true,
				IsFeatured: dc.Featured,
			}
			created, err := firstOrCreate(tx, &category, "slug = ?", dc.Slug)
			if err != nil {
				return fmt.Errorf("seed category %s: %w", dc.Slug, err)
			}
			result.count(created)

			for i, dp := range dc.Products {
				product := models.Product{
					CategoryID:       category.ID,
					Title:            dp.Title,
					Slug:             slugify(dp.Title),
					SKU:              dp.SKU,
					ShortDescription: dp.Short,
					Price:            models.MustMoney(dp.Price),
					IsActive:         true,
					IsFeatured:       i == 0,
				}
				created, err := firstOrCreate(tx, &product, "sku = ?", dp.SKU)
				if err != nil {
					return fmt.Errorf("seed product %s: %w", dp.SKU, err)
				}
				result.count(created)
			}
		}
		return nil
	})
	return result, err
}

// Admin 创建管理员，用户名已存在时跳过
func Admin(db *gorm.DB, username, password string, super bool) (bool, error) {
	if db == nil {
		return false, errors.New("database not initialized")
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, errors.New("username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		IsSuper:      super,
	}
	return firstOrCreate(db, &admin, "username = ?", username)
}

func firstOrCreate(db *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	res := db.Where(query, args...).Limit(1).Find(dest)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	if err := db.Create(dest).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *Result) count(created bool) {
	if created {
		r.Created++
		return
	}
	r.Skipped++
}

func slugify(title string) string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
