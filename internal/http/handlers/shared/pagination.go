package shared

import (
	"strconv"
	"strings"

	"github.com/superman-store/internal/repository"
	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// PageLimits 列表分页上下限
type PageLimits struct {
	DefaultLimit int
	MaxLimit     int
}

// ParsePage 解析 skip/limit 查询参数。
// skip 缺省为 0，limit 缺省取默认值，超过上限时截断；非整数、负数或 limit=0 返回校验错误。
func ParsePage(c *gin.Context, limits PageLimits) (repository.Page, error) {
	page := repository.Page{Skip: 0, Limit: limits.DefaultLimit}
	verr := &service.ValidationError{}

	if raw, ok := c.GetQuery("skip"); ok {
		skip, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil:
			verr.Add("skip", "must be an integer")
		case skip < 0:
			verr.Add("skip", "must be greater than or equal to 0")
		default:
			page.Skip = skip
		}
	}
	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil:
			verr.Add("limit", "must be an integer")
		case limit <= 0:
			verr.Add("limit", "must be greater than 0")
		default:
			page.Limit = limit
		}
	}
	if err := verr.Err(); err != nil {
		return repository.Page{}, err
	}
	if limits.MaxLimit > 0 && page.Limit > limits.MaxLimit {
		page.Limit = limits.MaxLimit
	}
	return page, nil
}
