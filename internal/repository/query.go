package repository

import (
	"errors"

	"gorm.io/gorm"
)

// 分页边界，MaxPage 保证偏移量不溢出
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 100000
)

// NormalizePage 页码限制在 [1, MaxPage]，每页条数缺省 DefaultPageSize、上限 MaxPageSize
func NormalizePage(page, pageSize int) (int, int) {
	switch {
	case page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// applyPagination 应用分页参数，pageSize <= 0 时不分页
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	switch {
	case page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}

// applyLimit 仅限制条数，limit <= 0 时不限制
func applyLimit(query *gorm.DB, limit int) *gorm.DB {
	if query == nil || limit <= 0 {
		return query
	}
	return query.Limit(limit)
}

// findFirst 取第一条记录，未找到返回 nil, nil
func findFirst[T any](query *gorm.DB) (*T, error) {
	row := new(T)
	err := query.First(row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return row, nil
}
