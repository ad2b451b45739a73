package repository

import (
	"errors"

	"github.com/superman-store/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository 评分数据访问接口
type RatingRepository interface {
	List(page Page) ([]models.Rating, error)
	ListByProduct(productID uint, page Page) ([]models.Rating, error)
	ListByCustomer(customerID uint, page Page) ([]models.Rating, error)
	GetByID(id uint) (*models.Rating, error)
	GetByCustomerAndProduct(customerID, productID uint) (*models.Rating, error)
	Create(rating *models.Rating) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) RatingRepository
}

// GormRatingRepository GORM 实现
type GormRatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository 创建评分仓库
func NewRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// WithTx 绑定事务
func (r *GormRatingRepository) WithTx(tx *gorm.DB) RatingRepository {
	if tx == nil {
		return r
	}
	return &GormRatingRepository{db: tx}
}

// Transaction 执行事务
func (r *GormRatingRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func (r *GormRatingRepository) withRelations() *gorm.DB {
	return r.db.Model(&models.Rating{}).Preload("Customer").Preload("Product")
}

// List 评分列表
func (r *GormRatingRepository) List(page Page) ([]models.Rating, error) {
	return r.find(r.withRelations(), page)
}

// ListByProduct 某商品的评分
func (r *GormRatingRepository) ListByProduct(productID uint, page Page) ([]models.Rating, error) {
	return r.find(r.withRelations().Where("product_id = ?", productID), page)
}

// ListByCustomer 某顾客给出的评分
func (r *GormRatingRepository) ListByCustomer(customerID uint, page Page) ([]models.Rating, error) {
	return r.find(r.withRelations().Where("customer_id = ?", customerID), page)
}

func (r *GormRatingRepository) find(query *gorm.DB, page Page) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := applyPagination(query, page).Order("id ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByID 根据 ID 获取评分（含顾客与商品）
func (r *GormRatingRepository) GetByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.withRelations().First(&rating, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// GetByCustomerAndProduct 按顾客与商品查找评分
func (r *GormRatingRepository) GetByCustomerAndProduct(customerID, productID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// Create 创建评分，不写入关联对象
func (r *GormRatingRepository) Create(rating *models.Rating) error {
	return r.db.Omit(clause.Associations).Create(rating).Error
}
