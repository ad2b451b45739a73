package repository

import (
	"errors"

	"github.com/superman-store/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	List(page Page) ([]models.Comment, error)
	ListByProduct(productID uint, page Page) ([]models.Comment, error)
	ListByCustomer(customerID uint, page Page) ([]models.Comment, error)
	GetByID(id uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CommentRepository
}

// GormCommentRepository GORM 实现
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓库
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCommentRepository) WithTx(tx *gorm.DB) CommentRepository {
	if tx == nil {
		return r
	}
	return &GormCommentRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCommentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func (r *GormCommentRepository) withRelations() *gorm.DB {
	return r.db.Model(&models.Comment{}).Preload("Customer").Preload("Product")
}

// List 评论列表
func (r *GormCommentRepository) List(page Page) ([]models.Comment, error) {
	return r.find(r.withRelations(), page)
}

// ListByProduct 某商品下的评论
func (r *GormCommentRepository) ListByProduct(productID uint, page Page) ([]models.Comment, error) {
	return r.find(r.withRelations().Where("product_id = ?", productID), page)
}

// ListByCustomer 某顾客发表的评论
func (r *GormCommentRepository) ListByCustomer(customerID uint, page Page) ([]models.Comment, error) {
	return r.find(r.withRelations().Where("customer_id = ?", customerID), page)
}

func (r *GormCommentRepository) find(query *gorm.DB, page Page) ([]models.Comment, error) {
	var comments []models.Comment
	if err := applyPagination(query, page).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByID 根据 ID 获取评论（含顾客与商品）
func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.withRelations().First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Create 创建评论，不写入关联对象
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Omit(clause.Associations).Create(comment).Error
}
