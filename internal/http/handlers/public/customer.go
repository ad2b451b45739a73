package public

import (
	"github.com/superman-store/internal/http/response"
	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCustomers 顾客列表
func (h *Handler) ListCustomers(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	customers, err := h.CustomerService.List(page)
	if err != nil {
		respondServiceError(c, err, "Customer")
		return
	}
	response.Success(c, customers)
}

// GetCustomer 顾客详情
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, err := h.CustomerService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Customer")
		return
	}
	response.Success(c, customer)
}

// CreateCustomer 创建顾客
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req service.CustomerInput
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.CustomerService.Create(req)
	if err != nil {
		respondServiceError(c, err, "Customer")
		return
	}
	response.Success(c, customer)
}

// UpdateCustomer 整体更新顾客
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.CustomerInput
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.CustomerService.Update(id, req)
	if err != nil {
		respondServiceError(c, err, "Customer")
		return
	}
	response.Success(c, customer)
}

// DeleteCustomer 删除顾客（级联删除评论、评分、购买记录）
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.CustomerService.Delete(id); err != nil {
		respondServiceError(c, err, "Customer")
		return
	}
	response.Message(c, "Customer successfully deleted")
}
