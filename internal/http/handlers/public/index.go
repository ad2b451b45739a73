package public

import (
	handlershared "github.com/superman-store/internal/http/handlers/shared"
	"github.com/superman-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Index 根路径欢迎信息
func (h *Handler) Index(c *gin.Context) {
	response.Message(c, "Welcome to Superman Store API")
}

// Health 数据库与 Redis 连通性检查
func (h *Handler) Health(c *gin.Context) {
	if h.DB == nil {
		response.Error(c, response.CodeServiceUnavailable, "database unavailable")
		return
	}
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		handlershared.RequestLog(c).Warnw("health_check_failed", "error", err)
		response.Error(c, response.CodeServiceUnavailable, "database unavailable")
		return
	}
	body := gin.H{"status": "ok"}
	if h.Redis != nil {
		// Redis 仅用于限流，不可用时服务降级但仍可用
		body["redis"] = "ok"
		if err := h.Redis.Ping(c.Request.Context()); err != nil {
			handlershared.RequestLog(c).Warnw("health_check_redis_failed", "error", err)
			body["redis"] = "unavailable"
		}
	}
	response.Success(c, body)
}

// NotFound 未匹配路由
func (h *Handler) NotFound(c *gin.Context) {
	response.NotFound(c, "Not found")
}
