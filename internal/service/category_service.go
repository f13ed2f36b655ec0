package service

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugReplacer = regexp.MustCompile(`[^a-z0-9]+`)
)

// CategoryService 分类后台服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Title       string
	Slug        string
	Description string
	Image       string
	IsActive    bool
	IsFeatured  bool
}

// CategoryListQuery 后台分类列表查询
type CategoryListQuery struct {
	Page     int
	PageSize int
	Keyword  string
}

// List 分类列表
func (s *CategoryService) List(query CategoryListQuery) ([]models.Category, int64, error) {
	return s.repo.List(repository.CategoryListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Keyword:  strings.TrimSpace(query.Keyword),
	})
}

// Get 获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	category := &models.Category{}
	if err := s.apply(category, input, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	InvalidateCatalog(ctx)
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(category, input, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	InvalidateCatalog(ctx)
	return category, nil
}

// Delete 删除分类，仍有商品引用时拒绝
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	InvalidateCatalog(ctx)
	return nil
}

func (s *CategoryService) apply(category *models.Category, input CategoryInput, excludeID uint) error {
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > 50 {
		return ErrCategoryInvalid
	}
	slug, err := normalizeSlug(input.Slug, title)
	if err != nil {
		return err
	}
	count, err := s.repo.CountBySlug(slug, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}

	category.Title = title
	category.Slug = slug
	category.Description = strings.TrimSpace(input.Description)
	category.Image = strings.TrimSpace(input.Image)
	category.IsActive = input.IsActive
	category.IsFeatured = input.IsFeatured
	return nil
}

// normalizeSlug 规范化 slug，为空时由标题生成
func normalizeSlug(slug, title string) (string, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		slug = strings.Trim(slugReplacer.ReplaceAllString(strings.ToLower(title), "-"), "-")
	}
	if len(slug) > 100 || !slugPattern.MatchString(slug) {
		return "", ErrCategoryInvalid
	}
	return slug, nil
}
