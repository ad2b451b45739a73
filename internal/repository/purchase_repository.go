package repository

import (
	"errors"

	"github.com/superman-store/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseRepository 购买记录数据访问接口
type PurchaseRepository interface {
	List(page Page) ([]models.Purchase, error)
	ListByCustomer(customerID uint, page Page) ([]models.Purchase, error)
	ListByDelivery(deliveryID uint) ([]models.Purchase, error)
	GetByID(id uint) (*models.Purchase, error)
	Create(purchase *models.Purchase) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) PurchaseRepository
}

// GormPurchaseRepository GORM 实现
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository 创建购买记录仓库
func NewPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPurchaseRepository) WithTx(tx *gorm.DB) PurchaseRepository {
	if tx == nil {
		return r
	}
	return &GormPurchaseRepository{db: tx}
}

// Transaction 执行事务
func (r *GormPurchaseRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func (r *GormPurchaseRepository) withRelations() *gorm.DB {
	return r.db.Model(&models.Purchase{}).
		Preload("Customer").
		Preload("Product").
		Preload("Delivery")
}

// List 购买记录列表
func (r *GormPurchaseRepository) List(page Page) ([]models.Purchase, error) {
	return r.find(r.withRelations(), page)
}

// ListByCustomer 某顾客的购买记录
func (r *GormPurchaseRepository) ListByCustomer(customerID uint, page Page) ([]models.Purchase, error) {
	return r.find(r.withRelations().Where("customer_id = ?", customerID), page)
}

// ListByDelivery 某配送单关联的购买记录，不预加载配送本身
func (r *GormPurchaseRepository) ListByDelivery(deliveryID uint) ([]models.Purchase, error) {
	query := r.db.Model(&models.Purchase{}).
		Preload("Customer").
		Preload("Product").
		Where("delivery_id = ?", deliveryID)
	return r.find(query, Page{})
}

func (r *GormPurchaseRepository) find(query *gorm.DB, page Page) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := applyPagination(query, page).Order("id ASC").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// GetByID 根据 ID 获取购买记录（含顾客、商品、配送）
func (r *GormPurchaseRepository) GetByID(id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := r.withRelations().First(&purchase, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

// Create 创建购买记录，不写入关联对象
func (r *GormPurchaseRepository) Create(purchase *models.Purchase) error {
	return r.db.Omit(clause.Associations).Create(purchase).Error
}
