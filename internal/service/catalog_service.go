package service

import (
	"context"
	"strings"
	"time"

	"github.com/dujiao-next/estore/internal/cache"
	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/logger"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// HomePage 首页数据
type HomePage struct {
	Categories []models.Category `json:"categories"`
	Products   []models.Product  `json:"products"`
}

// ProductDetail 商品详情与相关推荐
type ProductDetail struct {
	Product *models.Product  `json:"product"`
	Related []models.Product `json:"related"`
}

// CatalogProductQuery 前台商品列表查询
type CatalogProductQuery struct {
	Page       int
	PageSize   int
	CategoryID uint
	Keyword    string
}

// CatalogService 前台商品目录服务，读多写少，可走 Redis 缓存
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	shop         config.ShopConfig
	group        singleflight.Group
}

// NewCatalogService 创建目录服务
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, shop config.ShopConfig) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		shop:         shop,
	}
}

// Home 首页：推荐分类与推荐商品并发加载
func (s *CatalogService) Home(ctx context.Context) (*HomePage, error) {
	return cachedLoad(ctx, s, constants.CacheKeyHome, func() (*HomePage, error) {
		result := &HomePage{}
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			categories, _, err := s.categoryRepo.List(repository.CategoryListFilter{
				Limit:        positive(s.shop.HomeCategoryLimit, 3),
				OnlyActive:   true,
				OnlyFeatured: true,
			})
			result.Categories = categories
			return err
		})
		g.Go(func() error {
			products, _, err := s.productRepo.List(repository.ProductListFilter{
				Limit:        positive(s.shop.HomeProductLimit, 8),
				OnlyActive:   true,
				OnlyFeatured: true,
				WithCategory: true,
			})
			result.Products = products
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return result, nil
	})
}

// Categories 全部上架分类
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return cachedLoad(ctx, s, constants.CacheKeyCategories, func() ([]models.Category, error) {
		list, _, err := s.categoryRepo.List(repository.CategoryListFilter{OnlyActive: true})
		return list, err
	})
}

// CategoryProducts 分类下上架商品，分类不存在或未上架时返回 NotFound
func (s *CatalogService) CategoryProducts(slug string, page, pageSize int) (*models.Category, []models.Product, int64, error) {
	category, err := s.categoryRepo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, nil, 0, err
	}
	if category == nil {
		return nil, nil, 0, ErrCategoryNotFound
	}
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: category.ID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, nil, 0, err
	}
	return category, products, total, nil
}

// Products 前台商品列表
func (s *CatalogService) Products(query CatalogProductQuery) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         query.Page,
		PageSize:     query.PageSize,
		CategoryID:   query.CategoryID,
		Keyword:      strings.TrimSpace(query.Keyword),
		OnlyActive:   true,
		WithCategory: true,
	})
}

// ProductDetail 商品详情与同分类相关商品
func (s *CatalogService) ProductDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrProductNotFound
	}
	return cachedLoad(ctx, s, constants.CacheKeyProductPrefix+slug, func() (*ProductDetail, error) {
		product, err := s.productRepo.GetBySlug(slug, true)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		related, _, err := s.productRepo.List(repository.ProductListFilter{
			Limit:      positive(s.shop.RelatedProductLimit, 4),
			CategoryID: product.CategoryID,
			ExcludeID:  product.ID,
			OnlyActive: true,
		})
		if err != nil {
			return nil, err
		}
		return &ProductDetail{Product: product, Related: related}, nil
	})
}

// InvalidateCatalog 清理目录缓存，后台修改分类或商品后调用
func InvalidateCatalog(ctx context.Context) {
	if !cache.Enabled() {
		return
	}
	if err := cache.DelPrefix(ctx, constants.CacheKeyCatalogPrefix); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "error", err)
	}
}

// cachedLoad 先读缓存，未命中时合并并发加载并回写
func cachedLoad[T any](ctx context.Context, s *CatalogService, key string, load func() (T, error)) (T, error) {
	var cachedValue T
	hit, err := cache.GetJSON(ctx, key, &cachedValue)
	if err != nil {
		logger.Warnw("catalog_cache_read_failed", "key", key, "error", err)
	} else if hit {
		return cachedValue, nil
	}

	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		loaded, err := load()
		if err != nil {
			return nil, err
		}
		ttl := time.Duration(positive(s.shop.CatalogCacheTTLSeconds, 60)) * time.Second
		if err := cache.SetJSON(ctx, key, loaded, ttl); err != nil {
			logger.Warnw("catalog_cache_write_failed", "key", key, "error", err)
		}
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}

func positive(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
