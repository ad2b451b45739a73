package service

import (
	"time"

	"github.com/superman-store/internal/constants"
	"github.com/superman-store/internal/repository"
)

// normalizePage 兜底分页参数：负偏移归零，limit 缺省或越界时取默认/上限
func normalizePage(page repository.Page) repository.Page {
	if page.Skip < 0 {
		page.Skip = 0
	}
	if page.Limit <= 0 {
		page.Limit = constants.DefaultListLimit
	}
	if page.Limit > constants.MaxListLimit {
		page.Limit = constants.MaxListLimit
	}
	return page
}

// nowUTC 服务层统一时间来源
func nowUTC() time.Time {
	return time.Now().UTC()
}
