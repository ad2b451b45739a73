package public

import (
	handlershared "github.com/superman-store/internal/http/handlers/shared"
	"github.com/superman-store/internal/http/response"
	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListDeliveries 配送列表
func (h *Handler) ListDeliveries(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	deliveries, err := h.DeliveryService.List(page)
	if err != nil {
		respondServiceError(c, err, "Delivery")
		return
	}
	response.Success(c, deliveries)
}

// GetDelivery 配送详情（含关联购买记录）
func (h *Handler) GetDelivery(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	delivery, err := h.DeliveryService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Delivery")
		return
	}
	response.Success(c, delivery)
}

// CreateDelivery 创建配送记录
func (h *Handler) CreateDelivery(c *gin.Context) {
	var req service.DeliveryInput
	if !bindJSON(c, &req) {
		return
	}
	delivery, err := h.DeliveryService.Create(req)
	if err != nil {
		respondServiceError(c, err, "Delivery")
		return
	}
	response.Success(c, delivery)
}

// UpdateDeliveryStatus 推进配送状态
func (h *Handler) UpdateDeliveryStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.DeliveryTransitionInput
	if !bindJSON(c, &req) {
		return
	}
	delivery, err := h.DeliveryService.Transition(id, req)
	if err != nil {
		respondServiceError(c, err, "Delivery")
		return
	}
	handlershared.RequestLog(c).Infow("delivery_status_changed",
		"delivery_id", delivery.ID,
		"status", delivery.Status,
	)
	response.Success(c, delivery)
}
