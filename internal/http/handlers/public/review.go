package public

import (
	"github.com/superman-store/internal/http/response"
	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListComments 评论列表
func (h *Handler) ListComments(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	comments, err := h.CommentService.List(page)
	if err != nil {
		respondServiceError(c, err, "Comment")
		return
	}
	response.Success(c, comments)
}

// ListProductComments 某商品的评论
func (h *Handler) ListProductComments(c *gin.Context) {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	comments, err := h.CommentService.ListByProduct(productID, page)
	if err != nil {
		respondServiceError(c, err, "Comment")
		return
	}
	response.Success(c, comments)
}

// ListCustomerComments 某顾客的评论
func (h *Handler) ListCustomerComments(c *gin.Context) {
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return
	}
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	comments, err := h.CommentService.ListByCustomer(customerID, page)
	if err != nil {
		respondServiceError(c, err, "Comment")
		return
	}
	response.Success(c, comments)
}

// GetComment 评论详情
func (h *Handler) GetComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	comment, err := h.CommentService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Comment")
		return
	}
	response.Success(c, comment)
}

// CreateComment 发表评论
func (h *Handler) CreateComment(c *gin.Context) {
	var req service.CommentInput
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.CommentService.Create(req)
	if err != nil {
		respondServiceError(c, err, "Comment")
		return
	}
	response.Success(c, comment)
}

// ListRatings 评分列表
func (h *Handler) ListRatings(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	ratings, err := h.RatingService.List(page)
	if err != nil {
		respondServiceError(c, err, "Rating")
		return
	}
	response.Success(c, ratings)
}

// ListProductRatings 某商品的评分
func (h *Handler) ListProductRatings(c *gin.Context) {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	ratings, err := h.RatingService.ListByProduct(productID, page)
	if err != nil {
		respondServiceError(c, err, "Rating")
		return
	}
	response.Success(c, ratings)
}

// ListCustomerRatings 某顾客的评分
func (h *Handler) ListCustomerRatings(c *gin.Context) {
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return
	}
	page, ok := h.parsePage(c)
	if !ok {
		return
	}
	ratings, err := h.RatingService.ListByCustomer(customerID, page)
	if err != nil {
		respondServiceError(c, err, "Rating")
		return
	}
	response.Success(c, ratings)
}

// GetRating 评分详情
func (h *Handler) GetRating(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rating, err := h.RatingService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Rating")
		return
	}
	response.Success(c, rating)
}

// CreateRating 提交评分
func (h *Handler) CreateRating(c *gin.Context) {
	var req service.RatingInput
	if !bindJSON(c, &req) {
		return
	}
	rating, err := h.RatingService.Create(req)
	if err != nil {
		respondServiceError(c, err, "Rating")
		return
	}
	response.Success(c, rating)
}
