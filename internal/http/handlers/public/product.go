package public

import (
	"github.com/superman-store/internal/http/response"
	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	products, err := h.ProductService.List(page)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	response.Success(c, products)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Create(req)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	response.Success(c, product)
}

// UpdateProduct 整体更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.ProductInput
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Update(id, req)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	response.Message(c, "Product successfully deleted")
}
