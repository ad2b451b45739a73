package public

import (
	"github.com/superman-store/internal/http/response"
	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListPurchases 购买记录列表
func (h *Handler) ListPurchases(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	purchases, err := h.PurchaseService.List(page)
	if err != nil {
		respondServiceError(c, err, "Purchase")
		return
	}
	response.Success(c, purchases)
}

// ListCustomerPurchases 某顾客的购买记录
func (h *Handler) ListCustomerPurchases(c *gin.Context) {
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return
	}
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	purchases, err := h.PurchaseService.ListByCustomer(customerID, page)
	if err != nil {
		respondServiceError(c, err, "Purchase")
		return
	}
	response.Success(c, purchases)
}

// GetPurchase 购买记录详情
func (h *Handler) GetPurchase(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	purchase, err := h.PurchaseService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Purchase")
		return
	}
	response.Success(c, purchase)
}

// CreatePurchase 创建购买记录
func (h *Handler) CreatePurchase(c *gin.Context) {
	var req service.PurchaseInput
	if !bindJSON(c, &req) {
		return
	}
	purchase, err := h.PurchaseService.Create(req)
	if err != nil {
		respondServiceError(c, err, "Purchase")
		return
	}
	response.Success(c, purchase)
}
