package repository

import "gorm.io/gorm"

// applyPagination 应用 skip/limit 分页参数，统一处理非法偏移量。
func applyPagination(query *gorm.DB, page Page) *gorm.DB {
	if query == nil {
		return query
	}
	if page.Skip > 0 {
		query = query.Offset(page.Skip)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}
	return query
}
