package public

import (
	"github.com/superman-store/internal/constants"
	handlershared "github.com/superman-store/internal/http/handlers/shared"
	"github.com/superman-store/internal/provider"
	"github.com/superman-store/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler 商店公开接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func (h *Handler) pageLimits() handlershared.PageLimits {
	if h.Container == nil || h.Config == nil {
		return handlershared.PageLimits{DefaultLimit: constants.DefaultListLimit, MaxLimit: constants.MaxListLimit}
	}
	return handlershared.PageLimits{
		DefaultLimit: h.Config.Pagination.DefaultLimit,
		MaxLimit:     h.Config.Pagination.MaxLimit,
	}
}

// parsePage 解析分页参数，失败时已写出响应
func (h *Handler) parsePage(c *gin.Context) (repository.Page, bool) {
	page, err := handlershared.ParsePage(c, h.pageLimits())
	if err != nil {
		respondServiceError(c, err, "")
		return repository.Page{}, false
	}
	return page, true
}

// parseID 解析路径 ID，失败时已写出响应
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := handlershared.ParseID(c, name)
	if err != nil {
		respondServiceError(c, err, "")
		return 0, false
	}
	return id, true
}

// bindJSON 解码请求体，失败时已写出响应
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := handlershared.BindJSON(c, target); err != nil {
		respondServiceError(c, err, "")
		return false
	}
	return true
}
